package indicator

import (
	"math"

	"CryptoPulse/internal/model"
)

// stochasticK computes %K = 100*(close-lowN)/(highN-lowN) over a
// trailing window. A flat window (highN == lowN) stays undefined
// rather than dividing by zero.
func stochasticK(bars model.Series, period int) model.DerivedSeries {
	out := model.NewDerived(len(bars))
	if period <= 0 || len(bars) < period {
		return out
	}
	for i := period - 1; i < len(bars); i++ {
		hi := math.Inf(-1)
		lo := math.Inf(1)
		for j := i - period + 1; j <= i; j++ {
			if bars[j].High > hi {
				hi = bars[j].High
			}
			if bars[j].Low < lo {
				lo = bars[j].Low
			}
		}
		if hi == lo {
			continue
		}
		out[i] = model.Defined(100 * (bars[i].Close - lo) / (hi - lo))
	}
	return out
}
