package scheduler

import (
	"testing"
	"time"

	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

type captureRecorder struct {
	snaps []*recorder.TickSnapshot
}

func (c *captureRecorder) RecordTick(s *recorder.TickSnapshot) error {
	c.snaps = append(c.snaps, s)
	return nil
}
func (c *captureRecorder) Close() error { return nil }

func testRequest() model.Request {
	return model.Request{
		Ticker:   "AAPL",
		Mode:     model.FetchByPeriod,
		Period:   "1y",
		Interval: "1d",
		Windows:  []int{10},
	}
}

func TestRunNow(t *testing.T) {
	bars := make([]model.OHLCV, 20)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Open: p, High: p + 1, Low: p - 1, Close: p}
	}

	rec := &captureRecorder{}
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{Bars: bars}), rec, testRequest())
	s.RunNow()

	if len(rec.snaps) != 1 {
		t.Fatalf("expected 1 recorded snapshot, got %d", len(rec.snaps))
	}
	snap := rec.snaps[0]
	if snap.Symbol != "AAPL" || snap.Source != "scheduled" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.BarCount != 20 || snap.LastClose != 119 {
		t.Errorf("unexpected metrics: %+v", snap)
	}
}

func TestRegister_BadCron(t *testing.T) {
	s := NewScheduler(collector.NewCollector(&collector.MockFetcher{}), &captureRecorder{}, testRequest())
	if err := s.Register("not a cron expr"); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}
