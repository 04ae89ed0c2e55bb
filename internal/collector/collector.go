package collector

import (
	"fmt"
	"strings"
	"time"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars  []model.OHLCV
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(req model.Request) ([]model.OHLCV, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(100, 50), nil
}

// GenerateMockBars builds a deterministic ascending bar series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Snapshot is the result of one fetch/compute cycle: the MA-augmented
// series plus the summary metrics shown in the results area.
type Snapshot struct {
	Series    model.Series
	LastClose float64
	Change    float64 // vs previous close
	ChangePct float64
	RangeHigh float64
	RangeLow  float64
	BarCount  int
	FetchedAt time.Time
}

// Collector orchestrates data fetching and moving-average computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect validates the request, fetches bars, and computes the requested
// moving averages. Validation failures return before any fetch attempt.
func (c *Collector) Collect(req model.Request) (*Snapshot, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	bars, err := c.Fetcher.FetchBars(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, req.Ticker)
	}

	series := calculator.MovingAverages(model.Series{Symbol: req.Ticker, Bars: bars}, req.Windows)

	snap := &Snapshot{
		Series:    series,
		LastClose: bars[len(bars)-1].Close,
		BarCount:  len(bars),
		FetchedAt: time.Now(),
	}
	if len(bars) > 1 {
		prev := bars[len(bars)-2].Close
		snap.Change = snap.LastClose - prev
		if prev != 0 {
			snap.ChangePct = snap.Change / prev * 100
		}
	}
	if high, low, err := calculator.Range(bars); err == nil {
		snap.RangeHigh = high
		snap.RangeLow = low
	}
	return snap, nil
}

// MASummary formats the latest defined value of each MA column, e.g.
// "MA10=187.42 MA50=181.03". Columns with no defined values are skipped.
func (s *Snapshot) MASummary() string {
	var parts []string
	for _, col := range s.Series.MAs {
		for i := len(col.Values) - 1; i >= 0; i-- {
			if model.HasValue(col.Values[i]) {
				parts = append(parts, fmt.Sprintf("%s=%.2f", col.Name, col.Values[i]))
				break
			}
		}
	}
	return strings.Join(parts, " ")
}
