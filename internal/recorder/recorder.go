package recorder

import "CryptoPulse/internal/model"

// CycleRecord holds one symbol's classified outcome for one cycle.
type CycleRecord struct {
	Symbol string
	Mode   string // classification policy in effect
	Close  float64
	Report *model.Report
}

// Recorder persists cycle outcomes for later inspection. Recording is
// observational: failures are logged by callers and never abort a cycle.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	Close() error
}
