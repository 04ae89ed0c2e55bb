package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

// Scheduler records periodic snapshots of the default symbol outside any
// browser session, so the snapshot history has a baseline cadence.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Request   model.Request
}

// NewScheduler creates a new Scheduler for the given default request.
func NewScheduler(col *collector.Collector, rec recorder.Recorder, req model.Request) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Request:   req,
	}
}

// Register adds the snapshot task on the given cron expression.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the snapshot task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.snapshotTask()
}

func (s *Scheduler) snapshotTask() {
	log.Printf("[INFO] running scheduled snapshot: %s", s.Request.Ticker)
	snap, err := s.Collector.Collect(s.Request)
	if err != nil {
		log.Printf("[ERROR] scheduled snapshot collect: %v", err)
		return
	}
	if err := s.Recorder.RecordTick(&recorder.TickSnapshot{
		Symbol:    s.Request.Ticker,
		Interval:  s.Request.Interval,
		Source:    "scheduled",
		BarCount:  snap.BarCount,
		LastClose: snap.LastClose,
		Change:    snap.Change,
		MASummary: snap.MASummary(),
	}); err != nil {
		log.Printf("[ERROR] record scheduled snapshot: %v", err)
	}
}
