package server

import "html/template"

var periodTokens = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

var intervalTokens = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}

var windowChoices = []int{5, 10, 20, 50, 100, 200}

type formData struct {
	Ticker         string
	Period         string
	Interval       string
	Windows        []int
	RefreshSeconds int
	Periods        []string
	Intervals      []string
	WindowChoices  []int
}

type tableRow struct {
	Time   string
	Open   string
	High   string
	Low    string
	Close  string
	Volume string
	MAs    []string
}

type resultsData struct {
	Ticker    string
	Interval  string
	LastClose float64
	Change    float64
	ChangePct float64
	RangeHigh float64
	RangeLow  float64
	BarCount  int
	FetchedAt string
	ChartURL  string
	MANames   []string
	Rows      []tableRow
	Refresh   int // > 0 enables live auto-refresh
}

type errorData struct {
	Message string
	NoData  bool
}

var tmplFuncs = template.FuncMap{
	"contains": func(haystack []int, needle int) bool {
		for _, v := range haystack {
			if v == needle {
				return true
			}
		}
		return false
	},
}

var indexTmpl = template.Must(template.New("index").Funcs(tmplFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<title>StockScope</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }
fieldset { margin-bottom: 1em; }
label { display: inline-block; min-width: 10em; }
</style>
</head>
<body>
<h1>StockScope</h1>
<p>Candlestick charts with moving averages, fetched from Yahoo Finance.</p>
<form action="/analyze" method="get">
<fieldset>
<legend>Data</legend>
<p><label for="ticker">Ticker</label>
<input type="text" id="ticker" name="ticker" value="{{.Ticker}}" placeholder="AAPL"></p>
<p><label>Fetch method</label>
<input type="radio" name="method" value="period" checked> Period
<input type="radio" name="method" value="range"> Date range</p>
<p><label for="period">Period</label>
<select id="period" name="period">
{{range .Periods}}<option value="{{.}}"{{if eq . $.Period}} selected{{end}}>{{.}}</option>{{end}}
</select></p>
<p><label for="start">Start date</label> <input type="date" id="start" name="start">
<label for="end">End date</label> <input type="date" id="end" name="end"></p>
<p><label for="interval">Interval</label>
<select id="interval" name="interval">
{{range .Intervals}}<option value="{{.}}"{{if eq . $.Interval}} selected{{end}}>{{.}}</option>{{end}}
</select></p>
</fieldset>
<fieldset>
<legend>Analysis</legend>
<p><label for="ma">Moving averages</label>
<select id="ma" name="ma" multiple size="6">
{{range .WindowChoices}}<option value="{{.}}"{{if contains $.Windows .}} selected{{end}}>MA{{.}}</option>{{end}}
</select></p>
<p><label for="log">Logarithmic scale</label>
<input type="checkbox" id="log" name="log"></p>
</fieldset>
<fieldset>
<legend>Live mode</legend>
<p><label for="live">Live updates</label>
<input type="checkbox" id="live" name="live"></p>
<p><label for="refresh">Refresh seconds</label>
<input type="number" id="refresh" name="refresh" min="10" max="3600" value="{{.RefreshSeconds}}"></p>
</fieldset>
<p><button type="submit">Analyze</button></p>
</form>
</body>
</html>
`))

var resultsTmpl = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Ticker}} — StockScope</title>
{{if gt .Refresh 0}}<meta http-equiv="refresh" content="{{.Refresh}}">{{end}}
<style>
body { font-family: sans-serif; max-width: 1240px; margin: 2em auto; }
.metrics span { display: inline-block; margin-right: 2em; }
.metrics b { font-size: 1.3em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.7em; text-align: right; }
iframe { border: none; width: 1240px; height: 640px; }
</style>
</head>
<body>
<p><a href="/">&larr; back</a></p>
<h1>{{.Ticker}} ({{.Interval}})</h1>
<div class="metrics">
<span>Last close <b>{{printf "%.2f" .LastClose}}</b></span>
<span>Change <b>{{printf "%+.2f" .Change}} ({{printf "%+.2f" .ChangePct}}%)</b></span>
<span>Range high <b>{{printf "%.2f" .RangeHigh}}</b></span>
<span>Range low <b>{{printf "%.2f" .RangeLow}}</b></span>
<span>Bars <b>{{.BarCount}}</b></span>
<span>Fetched <b>{{.FetchedAt}}</b></span>
</div>
<iframe src="{{.ChartURL}}"></iframe>
<h2>Latest data</h2>
<table>
<tr><th>Time</th><th>Open</th><th>High</th><th>Low</th><th>Close</th><th>Volume</th>
{{range .MANames}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><td>{{.Time}}</td><td>{{.Open}}</td><td>{{.High}}</td><td>{{.Low}}</td><td>{{.Close}}</td><td>{{.Volume}}</td>
{{range .MAs}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
{{if gt .Refresh 0}}<p>Live mode: refreshing every {{.Refresh}}s.</p>{{end}}
</body>
</html>
`))

var errorTmpl = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head>
<title>StockScope</title>
<style>body { font-family: sans-serif; max-width: 720px; margin: 2em auto; }</style>
</head>
<body>
<p><a href="/">&larr; back</a></p>
{{if .NoData}}<h1>No data found</h1>{{else}}<h1>Error</h1>{{end}}
<p>{{.Message}}</p>
</body>
</html>
`))
