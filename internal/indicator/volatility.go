package indicator

import (
	"math"

	"CryptoPulse/internal/model"
)

// atrSeries computes the rolling mean of the true range. The true
// range needs a previous close, so position 0 carries no TR and the
// first defined value sits at index period.
func atrSeries(bars model.Series, period int) model.DerivedSeries {
	out := model.NewDerived(len(bars))
	if period <= 0 || len(bars) < period+1 {
		return out
	}
	trs := make([]float64, len(bars))
	for i := 1; i < len(bars); i++ {
		hl := bars[i].High - bars[i].Low
		hc := math.Abs(bars[i].High - bars[i-1].Close)
		lc := math.Abs(bars[i].Low - bars[i-1].Close)
		trs[i] = math.Max(hl, math.Max(hc, lc))
	}
	sum := 0.0
	for i := 1; i < len(bars); i++ {
		sum += trs[i]
		if i > period {
			sum -= trs[i-period]
		}
		if i >= period {
			out[i] = model.Defined(sum / float64(period))
		}
	}
	return out
}

// adxApprox approximates trend strength as the coefficient of
// variation of the close: rolling_stddev / rolling_mean * 100. This is
// deliberately not the canonical Wilder ADX.
func adxApprox(closes []float64, period int) model.DerivedSeries {
	mean := smaSeries(closes, period)
	std := rollingStd(closes, period)
	out := model.NewDerived(len(closes))
	for i := range closes {
		if mean[i].Defined && std[i].Defined && mean[i].Val != 0 {
			out[i] = model.Defined(std[i].Val / mean[i].Val * 100)
		}
	}
	return out
}
