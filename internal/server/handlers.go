package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"StockScope/internal/chart"
	"StockScope/internal/collector"
	"StockScope/internal/model"
	"StockScope/internal/recorder"
)

const dateLayout = "2006-01-02"

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Defaults  model.Request
}

// NewHandler creates a new Handler.
func NewHandler(col *collector.Collector, rec recorder.Recorder, defaults model.Request) *Handler {
	return &Handler{
		Collector: col,
		Recorder:  rec,
		Defaults:  defaults,
	}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Index handles GET / and renders the configuration form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := formData{
		Ticker:         h.Defaults.Ticker,
		Period:         h.Defaults.Period,
		Interval:       h.Defaults.Interval,
		Windows:        h.Defaults.Windows,
		RefreshSeconds: h.Defaults.RefreshSeconds,
		Periods:        periodTokens,
		Intervals:      intervalTokens,
		WindowChoices:  windowChoices,
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render index: %v", err)
	}
}

// Analyze handles GET /analyze: validates the form, runs the pipeline, and
// renders metrics, chart, and a tail-of-table preview.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.Collector.Collect(req)
	if errors.Is(err, collector.ErrNoData) {
		h.renderNoData(w, req.Ticker)
		return
	}
	if err != nil {
		log.Printf("[ERROR] analyze %s: %v", req.Ticker, err)
		h.renderError(w, http.StatusBadGateway, fmt.Sprintf("fetch failed: %v", err))
		return
	}

	if err := h.Recorder.RecordTick(&recorder.TickSnapshot{
		Symbol:    req.Ticker,
		Interval:  req.Interval,
		Source:    "analyze",
		BarCount:  snap.BarCount,
		LastClose: snap.LastClose,
		Change:    snap.Change,
		MASummary: snap.MASummary(),
	}); err != nil {
		log.Printf("[WARN] record tick: %v", err)
	}

	data := resultsData{
		Ticker:    req.Ticker,
		Interval:  req.Interval,
		LastClose: snap.LastClose,
		Change:    snap.Change,
		ChangePct: snap.ChangePct,
		RangeHigh: snap.RangeHigh,
		RangeLow:  snap.RangeLow,
		BarCount:  snap.BarCount,
		FetchedAt: snap.FetchedAt.Format("15:04:05"),
		ChartURL:  "/chart?" + r.URL.RawQuery,
		MANames:   maNames(snap.Series),
		Rows:      tailRows(snap.Series, 10, req.Intraday()),
	}
	if req.Live {
		data.Refresh = req.RefreshSeconds
	}
	if err := resultsTmpl.Execute(w, data); err != nil {
		log.Printf("[ERROR] render results: %v", err)
	}
}

// Chart handles GET /chart and renders the candlestick page alone.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.Collector.Collect(req)
	if errors.Is(err, collector.ErrNoData) {
		http.Error(w, fmt.Sprintf("no data found for %s", req.Ticker), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] chart %s: %v", req.Ticker, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	if err := chart.Render(w, snap.Series, req.LogScale, req.Intraday()); err != nil {
		log.Printf("[ERROR] render chart: %v", err)
	}
}

// parseRequest decodes the form query into a Request. Type-level parse
// failures (bad dates, bad numbers) are reported here; semantic checks live
// in Request.Validate.
func parseRequest(r *http.Request) (model.Request, error) {
	q := r.URL.Query()

	req := model.Request{
		Ticker:   strings.ToUpper(strings.TrimSpace(q.Get("ticker"))),
		Interval: q.Get("interval"),
		LogScale: q.Get("log") != "",
		Live:     q.Get("live") != "",
	}

	switch q.Get("method") {
	case "range":
		req.Mode = model.FetchByRange
		if v := q.Get("start"); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				return req, fmt.Errorf("invalid start date %q", v)
			}
			req.Start = t
		}
		if v := q.Get("end"); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				return req, fmt.Errorf("invalid end date %q", v)
			}
			req.End = t
		}
	default:
		req.Mode = model.FetchByPeriod
		req.Period = q.Get("period")
	}

	for _, v := range q["ma"] {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return req, fmt.Errorf("invalid MA window %q", part)
			}
			req.Windows = append(req.Windows, n)
		}
	}

	if v := q.Get("refresh"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid refresh seconds %q", v)
		}
		req.RefreshSeconds = n
	}

	return req, nil
}

func maNames(s model.Series) []string {
	names := make([]string, len(s.MAs))
	for i, c := range s.MAs {
		names[i] = c.Name
	}
	return names
}

// tailRows formats the last n bars plus MA values for the preview table.
func tailRows(s model.Series, n int, intraday bool) []tableRow {
	layout := "2006-01-02"
	if intraday {
		layout = "2006-01-02 15:04"
	}
	start := len(s.Bars) - n
	if start < 0 {
		start = 0
	}
	rows := make([]tableRow, 0, len(s.Bars)-start)
	for i := start; i < len(s.Bars); i++ {
		b := s.Bars[i]
		row := tableRow{
			Time:   b.Time.Format(layout),
			Open:   fmt.Sprintf("%.2f", b.Open),
			High:   fmt.Sprintf("%.2f", b.High),
			Low:    fmt.Sprintf("%.2f", b.Low),
			Close:  fmt.Sprintf("%.2f", b.Close),
			Volume: fmt.Sprintf("%.0f", b.Volume),
		}
		for _, col := range s.MAs {
			if model.HasValue(col.Values[i]) {
				row.MAs = append(row.MAs, fmt.Sprintf("%.2f", col.Values[i]))
			} else {
				row.MAs = append(row.MAs, "—")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (h *Handler) renderError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := errorTmpl.Execute(w, errorData{Message: msg}); err != nil {
		log.Printf("[ERROR] render error page: %v", err)
	}
}

func (h *Handler) renderNoData(w http.ResponseWriter, ticker string) {
	if err := errorTmpl.Execute(w, errorData{
		Message: fmt.Sprintf("no data found for %q — check the ticker symbol and date range", ticker),
		NoData:  true,
	}); err != nil {
		log.Printf("[ERROR] render no-data page: %v", err)
	}
}
