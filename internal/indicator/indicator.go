package indicator

import "CryptoPulse/internal/model"

// Kind identifies one derived line. Multi-line indicators (MACD,
// Bollinger, Stochastic) are split so every kind produces exactly one
// DerivedSeries.
type Kind int

const (
	KindRSI Kind = iota
	KindSMA
	KindEMA
	KindMACD
	KindMACDSignal
	KindBBUpper
	KindBBLower
	KindStochK
	KindStochD
	KindATR
	KindOBV
	KindADX
	KindVWAP
)

func (k Kind) String() string {
	switch k {
	case KindRSI:
		return "RSI"
	case KindSMA:
		return "SMA"
	case KindEMA:
		return "EMA"
	case KindMACD:
		return "MACD"
	case KindMACDSignal:
		return "MACDSignal"
	case KindBBUpper:
		return "BBUpper"
	case KindBBLower:
		return "BBLower"
	case KindStochK:
		return "StochK"
	case KindStochD:
		return "StochD"
	case KindATR:
		return "ATR"
	case KindOBV:
		return "OBV"
	case KindADX:
		return "ADX"
	case KindVWAP:
		return "VWAP"
	}
	return "unknown"
}

// Spec is one derived line: a kind plus its parameters. Unused
// parameters stay zero.
type Spec struct {
	Kind   Kind
	Period int     // primary lookback window
	Fast   int     // MACD fast span
	Slow   int     // MACD slow span
	Smooth int     // MACD signal span, stochastic %D smoothing
	Width  float64 // Bollinger width in standard deviations
}

// DefaultSpecs returns the standard line set: RSI(14), SMA(20),
// EMA(50), MACD(12/26/9), Bollinger(20,2), Stochastic(14/3), ATR(14),
// OBV, ADX(14) and VWAP.
func DefaultSpecs() []Spec {
	return []Spec{
		{Kind: KindRSI, Period: 14},
		{Kind: KindSMA, Period: 20},
		{Kind: KindEMA, Period: 50},
		{Kind: KindMACD, Fast: 12, Slow: 26},
		{Kind: KindMACDSignal, Fast: 12, Slow: 26, Smooth: 9},
		{Kind: KindBBUpper, Period: 20, Width: 2},
		{Kind: KindBBLower, Period: 20, Width: 2},
		{Kind: KindStochK, Period: 14},
		{Kind: KindStochD, Period: 14, Smooth: 3},
		{Kind: KindATR, Period: 14},
		{Kind: KindOBV},
		{Kind: KindADX, Period: 14},
		{Kind: KindVWAP},
	}
}

// Compute derives this line, aligned 1:1 with the input bars.
// Positions without enough history are undefined.
func (s Spec) Compute(bars model.Series) model.DerivedSeries {
	switch s.Kind {
	case KindRSI:
		return rsiSeries(bars.Closes(), s.Period)
	case KindSMA:
		return smaSeries(bars.Closes(), s.Period)
	case KindEMA:
		return emaSeries(bars.Closes(), s.Period)
	case KindMACD:
		return macdLine(bars.Closes(), s.Fast, s.Slow)
	case KindMACDSignal:
		return emaOver(macdLine(bars.Closes(), s.Fast, s.Slow), s.Smooth)
	case KindBBUpper:
		return bollingerBand(bars.Closes(), s.Period, s.Width)
	case KindBBLower:
		return bollingerBand(bars.Closes(), s.Period, -s.Width)
	case KindStochK:
		return stochasticK(bars, s.Period)
	case KindStochD:
		return smaOver(stochasticK(bars, s.Period), s.Smooth)
	case KindATR:
		return atrSeries(bars, s.Period)
	case KindOBV:
		return obvSeries(bars)
	case KindADX:
		return adxApprox(bars.Closes(), s.Period)
	case KindVWAP:
		return vwapSeries(bars)
	}
	return model.NewDerived(len(bars))
}
