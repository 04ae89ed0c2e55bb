package calculator

import (
	"fmt"
	"math"

	"StockScope/internal/model"
)

// MovingAverages returns a copy of the series with one trailing simple
// moving average column appended per window. The input is not mutated.
// MA_N is NaN for the first N-1 rows and the mean of the trailing N closes
// from row N-1 onward.
func MovingAverages(s model.Series, windows []int) model.Series {
	out := s.Clone()
	closes := out.Closes()
	for _, w := range windows {
		out.MAs = append(out.MAs, rollingMean(closes, w))
	}
	return out
}

func rollingMean(closes []float64, window int) model.MAColumn {
	col := model.MAColumn{
		Window: window,
		Name:   fmt.Sprintf("MA%d", window),
		Values: make([]float64, len(closes)),
	}
	if window <= 0 {
		for i := range col.Values {
			col.Values[i] = math.NaN()
		}
		return col
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			col.Values[i] = sum / float64(window)
		} else {
			col.Values[i] = math.NaN()
		}
	}
	return col
}
