package indicator

import (
	"errors"

	"CryptoPulse/internal/model"
)

// Engine derives the configured set of indicator lines from one input
// series.
type Engine struct {
	Specs []Spec
}

// NewEngine creates an engine with the default line set.
func NewEngine() *Engine {
	return &Engine{Specs: DefaultSpecs()}
}

// ComputeAll derives every configured line, each aligned 1:1 with bars.
func (e *Engine) ComputeAll(bars model.Series) map[Kind]model.DerivedSeries {
	lines := make(map[Kind]model.DerivedSeries, len(e.Specs))
	for _, spec := range e.Specs {
		lines[spec.Kind] = spec.Compute(bars)
	}
	return lines
}

// Snapshot holds the latest value of every derived line plus the
// latest close. It is the only slice of the pipeline the classifier
// reads.
type Snapshot struct {
	Close  float64
	Values map[Kind]model.Value
}

// Value returns the latest value for the kind, or Undefined when the
// kind was never computed.
func (s *Snapshot) Value(k Kind) model.Value {
	if v, ok := s.Values[k]; ok {
		return v
	}
	return model.Undefined
}

// Snapshot computes all lines and reduces them to their latest row.
func (e *Engine) Snapshot(bars model.Series) (*Snapshot, error) {
	last, ok := bars.Last()
	if !ok {
		return nil, errors.New("empty series")
	}
	snap := &Snapshot{
		Close:  last.Close,
		Values: make(map[Kind]model.Value, len(e.Specs)),
	}
	for kind, line := range e.ComputeAll(bars) {
		snap.Values[kind] = line.Last()
	}
	return snap, nil
}
