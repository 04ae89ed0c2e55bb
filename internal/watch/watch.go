package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"StockScope/internal/chart"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

// Loop runs the live-refresh cycle: fetch, compute, render to an HTML file,
// sleep, repeat. It is a single blocking goroutine with no coordination.
type Loop struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Request   model.Request
	OutPath   string
}

// NewLoop creates a live-refresh loop writing chart HTML to outPath.
func NewLoop(col *collector.Collector, rec recorder.Recorder, req model.Request, outPath string) *Loop {
	return &Loop{Collector: col, Recorder: rec, Request: req, OutPath: outPath}
}

// Run executes ticks until the context is canceled or a fetch error occurs.
// The first failing tick terminates the loop with its error. When the
// request is not live, a single tick runs and Run returns.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.tick(); err != nil {
			log.Printf("[ERROR] watch tick: %v", err)
			return err
		}
		if !l.Request.Live {
			return nil
		}

		select {
		case <-ctx.Done():
			log.Println("[INFO] watch loop stopped")
			return ctx.Err()
		case <-time.After(time.Duration(l.Request.RefreshSeconds) * time.Second):
		}
	}
}

func (l *Loop) tick() error {
	snap, err := l.Collector.Collect(l.Request)
	if err != nil {
		return err
	}

	f, err := os.Create(l.OutPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := chart.Render(f, snap.Series, l.Request.LogScale, l.Request.Intraday()); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if err := l.Recorder.RecordTick(&recorder.TickSnapshot{
		Symbol:    l.Request.Ticker,
		Interval:  l.Request.Interval,
		Source:    "watch",
		BarCount:  snap.BarCount,
		LastClose: snap.LastClose,
		Change:    snap.Change,
		MASummary: snap.MASummary(),
	}); err != nil {
		log.Printf("[WARN] record tick: %v", err)
	}

	log.Printf("[INFO] watch tick: %s %d bars, last close %.2f", l.Request.Ticker, snap.BarCount, snap.LastClose)
	return nil
}
