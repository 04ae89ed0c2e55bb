package model

import (
	"fmt"
	"strings"
	"time"
)

// FetchMode selects how the time span of a request is expressed.
type FetchMode string

const (
	// FetchByPeriod uses a relative lookback token ("1mo", "1y", ...).
	FetchByPeriod FetchMode = "period"
	// FetchByRange uses an explicit start/end date pair.
	FetchByRange FetchMode = "range"
)

const (
	MinRefreshSeconds = 10
	MaxRefreshSeconds = 3600
)

// ValidPeriods are the relative lookback tokens accepted by the provider.
var ValidPeriods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

// ValidIntervals are the sampling granularities accepted by the provider.
// Intraday intervals are limited by the provider to recent history.
var ValidIntervals = map[string]bool{
	"1m": true, "2m": true, "5m": true, "15m": true, "30m": true,
	"60m": true, "90m": true, "1h": true,
	"1d": true, "5d": true, "1wk": true, "1mo": true, "3mo": true,
}

// Request describes one fetch/compute/render cycle.
type Request struct {
	Ticker         string
	Mode           FetchMode
	Period         string    // used when Mode == FetchByPeriod
	Start          time.Time // used when Mode == FetchByRange
	End            time.Time
	Interval       string
	Windows        []int // MA window sizes
	LogScale       bool
	Live           bool
	RefreshSeconds int // used when Live
}

// Validate rejects malformed requests before any fetch is attempted.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	switch r.Mode {
	case FetchByPeriod:
		if !ValidPeriods[r.Period] {
			return fmt.Errorf("invalid period %q", r.Period)
		}
	case FetchByRange:
		if r.Start.IsZero() || r.End.IsZero() {
			return fmt.Errorf("start and end dates are required")
		}
		if !r.Start.Before(r.End) {
			return fmt.Errorf("start date must be before end date")
		}
	default:
		return fmt.Errorf("invalid fetch mode %q", r.Mode)
	}
	if !ValidIntervals[r.Interval] {
		return fmt.Errorf("invalid interval %q", r.Interval)
	}
	for _, w := range r.Windows {
		if w <= 0 {
			return fmt.Errorf("MA window must be positive, got %d", w)
		}
	}
	if r.Live {
		if r.RefreshSeconds < MinRefreshSeconds || r.RefreshSeconds > MaxRefreshSeconds {
			return fmt.Errorf("refresh seconds must be in [%d, %d], got %d",
				MinRefreshSeconds, MaxRefreshSeconds, r.RefreshSeconds)
		}
	}
	return nil
}

// Intraday reports whether the request samples finer than a full day.
func (r *Request) Intraday() bool {
	switch r.Interval {
	case "1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h":
		return true
	}
	return false
}
