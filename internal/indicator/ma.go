package indicator

import (
	"math"

	"CryptoPulse/internal/model"
)

// smaSeries computes the trailing simple moving average of closes.
func smaSeries(closes []float64, period int) model.DerivedSeries {
	out := model.NewDerived(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = model.Defined(sum / float64(period))
		}
	}
	return out
}

// emaSeries computes the exponential moving average with span period,
// seeded with the SMA of the first period closes.
func emaSeries(closes []float64, period int) model.DerivedSeries {
	out := model.NewDerived(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += closes[i]
	}
	ema := sum / float64(period)
	out[period-1] = model.Defined(ema)

	alpha := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(closes); i++ {
		ema = alpha*closes[i] + (1-alpha)*ema
		out[i] = model.Defined(ema)
	}
	return out
}

// smaOver applies a trailing SMA to an already-derived series. The
// output is defined only where the whole trailing window is; undefined
// holes (e.g. a flat stochastic window) propagate instead of counting
// as zero.
func smaOver(vals model.DerivedSeries, period int) model.DerivedSeries {
	out := model.NewDerived(len(vals))
	if period <= 0 {
		return out
	}
	for i := period - 1; i < len(vals); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			if !vals[j].Defined {
				ok = false
				break
			}
			sum += vals[j].Val
		}
		if ok {
			out[i] = model.Defined(sum / float64(period))
		}
	}
	return out
}

// emaOver applies an EMA to an already-derived series, seeded with the
// SMA of its first period defined values.
func emaOver(vals model.DerivedSeries, period int) model.DerivedSeries {
	out := model.NewDerived(len(vals))
	if period <= 0 {
		return out
	}
	first := firstDefined(vals)
	if first < 0 || len(vals)-first < period {
		return out
	}
	sum := 0.0
	for i := first; i < first+period; i++ {
		sum += vals[i].Val
	}
	ema := sum / float64(period)
	out[first+period-1] = model.Defined(ema)

	alpha := 2.0 / (float64(period) + 1.0)
	for i := first + period; i < len(vals); i++ {
		ema = alpha*vals[i].Val + (1-alpha)*ema
		out[i] = model.Defined(ema)
	}
	return out
}

// macdLine is EMA(fast) - EMA(slow), defined where both are.
func macdLine(closes []float64, fast, slow int) model.DerivedSeries {
	f := emaSeries(closes, fast)
	s := emaSeries(closes, slow)
	out := model.NewDerived(len(closes))
	for i := range closes {
		if f[i].Defined && s[i].Defined {
			out[i] = model.Defined(f[i].Val - s[i].Val)
		}
	}
	return out
}

// bollingerBand is SMA(period) + width*stddev(period). Negative width
// yields the lower band.
func bollingerBand(closes []float64, period int, width float64) model.DerivedSeries {
	mean := smaSeries(closes, period)
	std := rollingStd(closes, period)
	out := model.NewDerived(len(closes))
	for i := range closes {
		if mean[i].Defined && std[i].Defined {
			out[i] = model.Defined(mean[i].Val + width*std[i].Val)
		}
	}
	return out
}

// rollingStd computes the trailing-window population standard deviation.
func rollingStd(closes []float64, period int) model.DerivedSeries {
	out := model.NewDerived(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	for i := period - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += closes[j]
		}
		mean := sum / float64(period)
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mean
			variance += d * d
		}
		out[i] = model.Defined(math.Sqrt(variance / float64(period)))
	}
	return out
}

func firstDefined(vals model.DerivedSeries) int {
	for i, v := range vals {
		if v.Defined {
			return i
		}
	}
	return -1
}
