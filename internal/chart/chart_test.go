package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
)

func testSeries(t *testing.T) model.Series {
	t.Helper()
	closes := []float64{100, 101, 103, 102, 105, 107, 106, 108}
	bars := make([]model.OHLCV, len(closes))
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time: base.AddDate(0, 0, i), Open: c - 0.5, High: c + 1, Low: c - 1, Close: c,
		}
	}
	return calculator.MovingAverages(model.Series{Symbol: "AAPL", Bars: bars}, []int{3, 5})
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testSeries(t), false, false); err != nil {
		t.Fatalf("render: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"AAPL", "MA3", "MA5", "candlestick", axisLabel} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, axisLabelLog) {
		t.Error("linear chart must not carry the log axis label")
	}
}

func TestRender_LogScale(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testSeries(t), true, false); err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(buf.String(), axisLabelLog) {
		t.Errorf("log chart missing axis label %q", axisLabelLog)
	}
}

func TestRender_LogScaleDoesNotMutateInput(t *testing.T) {
	s := testSeries(t)
	var buf bytes.Buffer
	if err := Render(&buf, s, true, false); err != nil {
		t.Fatalf("render: %v", err)
	}

	if s.Bars[0].Close != 100 {
		t.Errorf("input series mutated: close is %v", s.Bars[0].Close)
	}
}

func TestBuild_MissingMAValuesPlotAsGaps(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testSeries(t), false, false); err != nil {
		t.Fatalf("render: %v", err)
	}
	// leading NaN values in the MA5 column serialize as echarts gaps
	if !strings.Contains(buf.String(), `"-"`) {
		t.Error("expected gap markers for undefined MA values")
	}
}
