package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time: base.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c,
		}
	}
	return bars
}

func testRequest(live bool) model.Request {
	return model.Request{
		Ticker:         "TEST",
		Mode:           model.FetchByPeriod,
		Period:         "1mo",
		Interval:       "1d",
		Windows:        []int{3},
		Live:           live,
		RefreshSeconds: model.MinRefreshSeconds,
	}
}

func TestLoop_SingleTickWhenNotLive(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.html")
	mock := &collector.MockFetcher{Bars: barsFromCloses([]float64{1, 2, 3, 4, 5})}
	loop := NewLoop(collector.NewCollector(mock), recorder.NewNoopRecorder(), testRequest(false), out)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls != 1 {
		t.Errorf("expected exactly 1 fetch, got %d", mock.Calls)
	}

	html, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read chart output: %v", err)
	}
	if !strings.Contains(string(html), "TEST") {
		t.Error("chart output missing the ticker")
	}
}

func TestLoop_FetchErrorTerminates(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.html")
	wantErr := errors.New("provider unavailable")
	loop := NewLoop(collector.NewCollector(&collector.MockFetcher{Err: wantErr}),
		recorder.NewNoopRecorder(), testRequest(true), out)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	select {
	case err := <-done:
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped fetch error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not terminate on fetch error")
	}
}

func TestLoop_CancelStopsBetweenTicks(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.html")
	mock := &collector.MockFetcher{Bars: barsFromCloses([]float64{1, 2, 3})}
	loop := NewLoop(collector.NewCollector(mock), recorder.NewNoopRecorder(), testRequest(true), out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	// let the first tick complete, then cancel during the sleep
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if mock.Calls != 1 {
			t.Errorf("expected 1 fetch before cancel, got %d", mock.Calls)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}
