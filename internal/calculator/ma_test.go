package calculator

import (
	"math"
	"testing"
	"time"

	"StockScope/internal/model"
)

func seriesFromCloses(closes []float64) model.Series {
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  base.AddDate(0, 0, i),
			Open:  c,
			High:  c + 1,
			Low:   c - 1,
			Close: c,
		}
	}
	return model.Series{Symbol: "TEST", Bars: bars}
}

func TestMovingAverages_Example(t *testing.T) {
	s := seriesFromCloses([]float64{1, 2, 3, 4, 5})
	out := MovingAverages(s, []int{3})

	if len(out.MAs) != 1 {
		t.Fatalf("expected 1 MA column, got %d", len(out.MAs))
	}
	col := out.MAs[0]
	if col.Name != "MA3" {
		t.Errorf("expected column name MA3, got %q", col.Name)
	}

	want := []float64{math.NaN(), math.NaN(), 2, 3, 4}
	for i, w := range want {
		got := col.Values[i]
		if math.IsNaN(w) {
			if !math.IsNaN(got) {
				t.Errorf("row %d: expected NaN, got %v", i, got)
			}
			continue
		}
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("row %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestMovingAverages_DefinedValueCount(t *testing.T) {
	tests := []struct {
		length int
		window int
		want   int
	}{
		{10, 3, 8},
		{10, 10, 1},
		{10, 11, 0},
		{0, 5, 0},
		{1, 1, 1},
		{252, 50, 203},
	}
	for _, tt := range tests {
		closes := make([]float64, tt.length)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		out := MovingAverages(seriesFromCloses(closes), []int{tt.window})
		defined := 0
		for _, v := range out.MAs[0].Values {
			if model.HasValue(v) {
				defined++
			}
		}
		if defined != tt.want {
			t.Errorf("length %d window %d: expected %d defined values, got %d",
				tt.length, tt.window, tt.want, defined)
		}
	}
}

func TestMovingAverages_MatchesNaiveMean(t *testing.T) {
	closes := []float64{3.5, 7.25, 2.0, 9.75, 4.5, 8.0, 1.25, 6.5, 5.0, 7.75}
	window := 4
	out := MovingAverages(seriesFromCloses(closes), []int{window})
	col := out.MAs[0]

	for i := window - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		want := sum / float64(window)
		if math.Abs(col.Values[i]-want) > 1e-9 {
			t.Errorf("row %d: expected %v, got %v", i, want, col.Values[i])
		}
	}
}

func TestMovingAverages_DoesNotMutateInput(t *testing.T) {
	s := seriesFromCloses([]float64{1, 2, 3, 4, 5})
	_ = MovingAverages(s, []int{2, 3})

	if len(s.MAs) != 0 {
		t.Errorf("input series gained %d MA columns", len(s.MAs))
	}
	for i, want := range []float64{1, 2, 3, 4, 5} {
		if s.Bars[i].Close != want {
			t.Errorf("bar %d close changed: got %v", i, s.Bars[i].Close)
		}
	}
}

func TestMovingAverages_MultipleWindows(t *testing.T) {
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 50 + float64(i%7)
	}
	out := MovingAverages(seriesFromCloses(closes), []int{10, 50, 100})
	if len(out.MAs) != 3 {
		t.Fatalf("expected 3 MA columns, got %d", len(out.MAs))
	}
	names := []string{"MA10", "MA50", "MA100"}
	for i, name := range names {
		if out.MAs[i].Name != name {
			t.Errorf("column %d: expected %q, got %q", i, name, out.MAs[i].Name)
		}
		if len(out.MAs[i].Values) != len(closes) {
			t.Errorf("column %s: expected %d values, got %d", name, len(closes), len(out.MAs[i].Values))
		}
	}
}
