package indicator

import "CryptoPulse/internal/model"

// obvSeries computes on-balance volume as a fold over the bars: add
// volume when the close rose, subtract when it fell, hold when flat.
// The first bar is 0.
func obvSeries(bars model.Series) model.DerivedSeries {
	out := model.NewDerived(len(bars))
	if len(bars) == 0 {
		return out
	}
	obv := 0.0
	out[0] = model.Defined(0)
	for i := 1; i < len(bars); i++ {
		switch {
		case bars[i].Close > bars[i-1].Close:
			obv += bars[i].Volume
		case bars[i].Close < bars[i-1].Close:
			obv -= bars[i].Volume
		}
		out[i] = model.Defined(obv)
	}
	return out
}

// vwapSeries computes the cumulative volume-weighted average price
// from the series start (not session-reset). Positions before any
// volume has traded stay undefined.
func vwapSeries(bars model.Series) model.DerivedSeries {
	out := model.NewDerived(len(bars))
	var pv, vol float64
	for i, b := range bars {
		pv += b.Close * b.Volume
		vol += b.Volume
		if vol > 0 {
			out[i] = model.Defined(pv / vol)
		}
	}
	return out
}
