package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockScope/internal/calculator"
	"StockScope/internal/model"
)

const (
	axisLabel    = "Price"
	axisLabelLog = "log10(Price)"

	timeLayoutDaily    = "2006-01-02"
	timeLayoutIntraday = "01-02 15:04"
)

// Build assembles a candlestick chart of the series with one line overlay
// per MA column. When logScale is set, every plotted price (OHLC and MA) is
// transformed to base-10 log space before being handed to the chart, and
// the Y-axis label says so. The input series is not mutated.
func Build(s model.Series, logScale, intraday bool) *charts.Kline {
	yLabel := axisLabel
	if logScale {
		s = calculator.LogScale(s)
		yLabel = axisLabelLog
	}

	layout := timeLayoutDaily
	if intraday {
		layout = timeLayoutIntraday
	}

	x := make([]string, len(s.Bars))
	candles := make([]opts.KlineData, len(s.Bars))
	for i, b := range s.Bars {
		x[i] = b.Time.Format(layout)
		// echarts kline value order: open, close, low, high
		candles[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Symbol + " — StockScope",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s with moving averages", s.Symbol),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yLabel,
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)
	kline.SetXAxis(x).AddSeries(s.Symbol, candles)

	for _, col := range s.MAs {
		line := charts.NewLine()
		points := make([]opts.LineData, len(col.Values))
		for j, v := range col.Values {
			if !model.HasValue(v) {
				// echarts renders "-" as a gap
				points[j] = opts.LineData{Value: "-"}
				continue
			}
			points[j] = opts.LineData{Value: v}
		}
		line.SetXAxis(x).AddSeries(col.Name, points)
		kline.Overlap(line)
	}

	return kline
}

// Render writes the chart as a standalone HTML page.
func Render(w io.Writer, s model.Series, logScale, intraday bool) error {
	return Build(s, logScale, intraday).Render(w)
}
