package indicator

import "CryptoPulse/internal/model"

// rsiSeries computes the Wilder-smoothed RSI over the given period.
// Needs period close-to-close changes, so the first period positions
// are undefined.
func rsiSeries(closes []float64, period int) model.DerivedSeries {
	out := model.NewDerived(len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	// Initial average gain/loss over the first period changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	// Wilder smoothing for the remaining bars.
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

// rsiValue resolves the zero-loss edge cases instead of dividing by
// zero: all gains pins RSI at 100, a fully flat window is undefined.
func rsiValue(avgGain, avgLoss float64) model.Value {
	if avgLoss == 0 {
		if avgGain == 0 {
			return model.Undefined
		}
		return model.Defined(100)
	}
	rs := avgGain / avgLoss
	return model.Defined(100 - 100/(1+rs))
}
