package model

import (
	"fmt"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered sequence of bars, ascending by time with no
// duplicate timestamps. Resampling produces a new Series and never
// mutates its input.
type Series []OHLCV

// Closes returns the close price of every bar in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Last returns the final bar. ok is false for an empty series.
func (s Series) Last() (bar OHLCV, ok bool) {
	if len(s) == 0 {
		return OHLCV{}, false
	}
	return s[len(s)-1], true
}

// Validate checks per-bar price/volume invariants and strict time ordering.
func (s Series) Validate() error {
	for i, b := range s {
		if b.High < b.Open || b.High < b.Close || b.High < b.Low {
			return fmt.Errorf("bar %d: high %.8f below open/close/low", i, b.High)
		}
		if b.Low > b.Open || b.Low > b.Close {
			return fmt.Errorf("bar %d: low %.8f above open/close", i, b.Low)
		}
		if b.Volume < 0 {
			return fmt.Errorf("bar %d: negative volume %.8f", i, b.Volume)
		}
		if i > 0 && !s[i-1].Time.Before(b.Time) {
			return fmt.Errorf("bar %d: timestamp %s not after previous %s", i, b.Time, s[i-1].Time)
		}
	}
	return nil
}
