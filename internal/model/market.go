package model

import (
	"math"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// MAColumn is a derived moving-average column aligned with a bar series.
// Values[i] is NaN until at least Window bars exist at index i.
type MAColumn struct {
	Window int
	Name   string // e.g. "MA10"
	Values []float64
}

// Series holds a symbol's bar data plus any derived MA columns.
// Bars are ordered by strictly increasing timestamp.
type Series struct {
	Symbol string
	Bars   []OHLCV
	MAs    []MAColumn
}

// Closes extracts the close prices in bar order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Tail returns the last n bars (all bars if fewer exist).
func (s *Series) Tail(n int) []OHLCV {
	if n >= len(s.Bars) {
		return s.Bars
	}
	return s.Bars[len(s.Bars)-n:]
}

// Column looks up a derived column by name.
func (s *Series) Column(name string) (MAColumn, bool) {
	for _, c := range s.MAs {
		if c.Name == name {
			return c, true
		}
	}
	return MAColumn{}, false
}

// Clone returns a deep copy of the series so transforms never mutate
// their input.
func (s *Series) Clone() Series {
	out := Series{Symbol: s.Symbol}
	if s.Bars != nil {
		out.Bars = make([]OHLCV, len(s.Bars))
		copy(out.Bars, s.Bars)
	}
	if s.MAs != nil {
		out.MAs = make([]MAColumn, len(s.MAs))
		for i, c := range s.MAs {
			vals := make([]float64, len(c.Values))
			copy(vals, c.Values)
			out.MAs[i] = MAColumn{Window: c.Window, Name: c.Name, Values: vals}
		}
	}
	return out
}

// HasValue reports whether a derived column holds a defined value.
func HasValue(v float64) bool {
	return !math.IsNaN(v)
}
