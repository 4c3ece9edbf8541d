// Package classifier reduces the latest indicator values into coarse
// directional labels.
package classifier

import (
	"fmt"

	"CryptoPulse/internal/indicator"
	"CryptoPulse/internal/model"
)

// Policy selects the RSI threshold variant. The two variants are
// mutually exclusive and chosen by configuration, never merged.
type Policy string

const (
	// PolicyStandard labels RSI bullish in (50, 70) and bearish below 30.
	PolicyStandard Policy = "standard"
	// PolicyWeekly labels RSI bullish above 60 and bearish below 40. It
	// is meant for series resampled to weekly bars.
	PolicyWeekly Policy = "weekly"
)

// reportOrder fixes the report key set. Every classification produces
// exactly these entries in this order, whatever was computable.
var reportOrder = []string{"RSI", "MACD", "Stochastic", "BB", "SMA20", "EMA50", "VWAP", "ADX", "ATR", "OBV"}

// Classify maps the snapshot into a report with a stable key set.
// Any indicator whose latest value is undefined falls back to Neutral,
// or "n/a" for the raw-valued ATR and OBV entries.
func Classify(symbol string, snap *indicator.Snapshot, policy Policy) *model.Report {
	values := map[string]string{
		"RSI":        string(classifyRSI(snap.Value(indicator.KindRSI), policy)),
		"MACD":       string(classifyCross(snap.Value(indicator.KindMACD), snap.Value(indicator.KindMACDSignal))),
		"Stochastic": string(classifyCross(snap.Value(indicator.KindStochK), snap.Value(indicator.KindStochD))),
		"BB":         string(classifyBollinger(snap.Close, snap.Value(indicator.KindBBLower))),
		"SMA20":      string(classifyAboveValue(snap.Close, snap.Value(indicator.KindSMA))),
		"EMA50":      string(classifyAboveValue(snap.Close, snap.Value(indicator.KindEMA))),
		"VWAP":       string(classifyAboveValue(snap.Close, snap.Value(indicator.KindVWAP))),
		"ADX":        string(classifyADX(snap.Value(indicator.KindADX))),
		"ATR":        formatRaw(snap.Value(indicator.KindATR)),
		"OBV":        formatRaw(snap.Value(indicator.KindOBV)),
	}

	rep := &model.Report{Symbol: symbol, Entries: make([]model.ReportEntry, 0, len(reportOrder))}
	for _, name := range reportOrder {
		rep.Entries = append(rep.Entries, model.ReportEntry{Name: name, Value: values[name]})
	}
	return rep
}

func classifyRSI(v model.Value, policy Policy) model.SignalLabel {
	if !v.Defined {
		return model.Neutral
	}
	if policy == PolicyWeekly {
		switch {
		case v.Val > 60:
			return model.Bullish
		case v.Val < 40:
			return model.Bearish
		default:
			return model.Neutral
		}
	}
	switch {
	case v.Val > 50 && v.Val < 70:
		return model.Bullish
	case v.Val < 30:
		return model.Bearish
	default:
		return model.Neutral
	}
}

// classifyCross labels line-above-signal crossings (MACD, Stochastic).
func classifyCross(line, signal model.Value) model.SignalLabel {
	if !line.Defined || !signal.Defined {
		return model.Neutral
	}
	if line.Val > signal.Val {
		return model.Bullish
	}
	return model.Bearish
}

func classifyBollinger(close float64, lower model.Value) model.SignalLabel {
	if lower.Defined && close > lower.Val {
		return model.Bullish
	}
	return model.Neutral
}

func classifyAboveValue(close float64, v model.Value) model.SignalLabel {
	if !v.Defined {
		return model.Neutral
	}
	if close > v.Val {
		return model.Bullish
	}
	return model.Bearish
}

func classifyADX(v model.Value) model.SignalLabel {
	if !v.Defined {
		return model.Neutral
	}
	if v.Val > 25 {
		return model.Strong
	}
	return model.Weak
}

func formatRaw(v model.Value) string {
	if !v.Defined {
		return model.NotAvailable
	}
	return fmt.Sprintf("%.2f", v.Val)
}
