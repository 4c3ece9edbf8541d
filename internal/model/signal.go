package model

// SignalLabel is a coarse directional signal for one indicator.
type SignalLabel string

const (
	Bullish SignalLabel = "Bullish"
	Bearish SignalLabel = "Bearish"
	Neutral SignalLabel = "Neutral"
	Strong  SignalLabel = "Strong"
	Weak    SignalLabel = "Weak"
)

// NotAvailable marks a raw-valued entry whose latest value is undefined.
const NotAvailable = "n/a"

// ReportEntry is one line of a signal report: an indicator display name
// and either a SignalLabel or a formatted raw value.
type ReportEntry struct {
	Name  string
	Value string
}

// Report is the classified summary for one symbol. Entries keep a fixed
// order and a stable key set regardless of how many indicators were
// computable.
type Report struct {
	Symbol  string
	Entries []ReportEntry
}

// Get returns the value for the named entry, or "" if absent.
func (r *Report) Get(name string) string {
	for _, e := range r.Entries {
		if e.Name == name {
			return e.Value
		}
	}
	return ""
}
