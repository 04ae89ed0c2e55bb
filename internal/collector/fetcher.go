package collector

import (
	"errors"

	"StockScope/internal/model"
)

// ErrNoData marks a request that resolved but returned no bars (unknown
// ticker, or a range with no trading data). Callers distinguish it from a
// hard fetch failure with errors.Is.
var ErrNoData = errors.New("no data found")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(req model.Request) ([]model.OHLCV, error)
	Name() string
}
