package recorder

// TickSnapshot summarizes one completed fetch/compute cycle.
type TickSnapshot struct {
	Symbol    string
	Interval  string
	Source    string // "analyze", "watch", "scheduled"
	BarCount  int
	LastClose float64
	Change    float64
	MASummary string // e.g. "MA10=187.42 MA50=181.03"
}

// Recorder persists snapshot history for later inspection.
type Recorder interface {
	RecordTick(snap *TickSnapshot) error
	Close() error
}
