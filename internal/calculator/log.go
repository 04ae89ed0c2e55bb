package calculator

import (
	"math"

	"StockScope/internal/model"
)

// LogScale returns a copy of the series with every OHLC price and every MA
// value replaced by its base-10 logarithm. The input is not mutated.
// Volume is left untouched; non-positive prices become NaN.
func LogScale(s model.Series) model.Series {
	out := s.Clone()
	for i := range out.Bars {
		b := &out.Bars[i]
		b.Open = log10(b.Open)
		b.High = log10(b.High)
		b.Low = log10(b.Low)
		b.Close = log10(b.Close)
	}
	for i := range out.MAs {
		for j, v := range out.MAs[i].Values {
			out.MAs[i].Values[j] = log10(v)
		}
	}
	return out
}

func log10(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}
	return math.Log10(v)
}
