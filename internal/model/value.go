package model

// Value is a single point of a derived series. Positions without enough
// history carry Defined=false instead of a NaN placeholder, so that
// undefined values cannot leak into arithmetic unnoticed.
type Value struct {
	Val     float64
	Defined bool
}

// Undefined is the sentinel for positions lacking history.
var Undefined = Value{}

// Defined wraps v as a defined value.
func Defined(v float64) Value { return Value{Val: v, Defined: true} }

// DerivedSeries is a float-valued sequence aligned index-for-index with
// the Series it was derived from.
type DerivedSeries []Value

// Last returns the final value, or Undefined for an empty series.
func (d DerivedSeries) Last() Value {
	if len(d) == 0 {
		return Undefined
	}
	return d[len(d)-1]
}

// NewDerived allocates a derived series of n undefined values.
func NewDerived(n int) DerivedSeries {
	return make(DerivedSeries, n)
}
