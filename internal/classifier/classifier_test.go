package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CryptoPulse/internal/indicator"
	"CryptoPulse/internal/model"
)

func snapshotWith(close float64, values map[indicator.Kind]model.Value) *indicator.Snapshot {
	return &indicator.Snapshot{Close: close, Values: values}
}

func reportNames(rep *model.Report) []string {
	names := make([]string, len(rep.Entries))
	for i, e := range rep.Entries {
		names[i] = e.Name
	}
	return names
}

func TestClassify_StableKeySet(t *testing.T) {
	empty := Classify("BTCUSDT", snapshotWith(100, map[indicator.Kind]model.Value{}), PolicyStandard)
	full := Classify("BTCUSDT", snapshotWith(100, map[indicator.Kind]model.Value{
		indicator.KindRSI:        model.Defined(55),
		indicator.KindSMA:        model.Defined(90),
		indicator.KindEMA:        model.Defined(95),
		indicator.KindMACD:       model.Defined(1),
		indicator.KindMACDSignal: model.Defined(0.5),
		indicator.KindBBUpper:    model.Defined(110),
		indicator.KindBBLower:    model.Defined(90),
		indicator.KindStochK:     model.Defined(60),
		indicator.KindStochD:     model.Defined(40),
		indicator.KindATR:        model.Defined(2.5),
		indicator.KindOBV:        model.Defined(1000),
		indicator.KindADX:        model.Defined(30),
		indicator.KindVWAP:       model.Defined(98),
	}), PolicyStandard)

	want := []string{"RSI", "MACD", "Stochastic", "BB", "SMA20", "EMA50", "VWAP", "ADX", "ATR", "OBV"}
	assert.Equal(t, want, reportNames(empty))
	assert.Equal(t, want, reportNames(full))
}

func TestClassify_AllUndefinedFallsBack(t *testing.T) {
	rep := Classify("BTCUSDT", snapshotWith(100, map[indicator.Kind]model.Value{}), PolicyStandard)
	for _, name := range []string{"RSI", "MACD", "Stochastic", "BB", "SMA20", "EMA50", "VWAP", "ADX"} {
		assert.Equal(t, string(model.Neutral), rep.Get(name), name)
	}
	assert.Equal(t, model.NotAvailable, rep.Get("ATR"))
	assert.Equal(t, model.NotAvailable, rep.Get("OBV"))
}

func TestClassifyRSI_StandardPolicy(t *testing.T) {
	tests := []struct {
		rsi  float64
		want model.SignalLabel
	}{
		{55, model.Bullish},
		{69.9, model.Bullish},
		{50, model.Neutral},
		{70, model.Neutral},
		{75, model.Neutral},
		{35, model.Neutral},
		{29.9, model.Bearish},
		{10, model.Bearish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyRSI(model.Defined(tt.rsi), PolicyStandard), "RSI=%.1f", tt.rsi)
	}
}

func TestClassifyRSI_WeeklyPolicy(t *testing.T) {
	tests := []struct {
		rsi  float64
		want model.SignalLabel
	}{
		{65, model.Bullish},
		{60, model.Neutral},
		{55, model.Neutral}, // bullish under the standard policy
		{40, model.Neutral},
		{35, model.Bearish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyRSI(model.Defined(tt.rsi), PolicyWeekly), "RSI=%.1f", tt.rsi)
	}
}

func TestClassifyCross(t *testing.T) {
	assert.Equal(t, model.Bullish, classifyCross(model.Defined(1), model.Defined(0.5)))
	assert.Equal(t, model.Bearish, classifyCross(model.Defined(0.5), model.Defined(1)))
	assert.Equal(t, model.Bearish, classifyCross(model.Defined(1), model.Defined(1)))
	assert.Equal(t, model.Neutral, classifyCross(model.Undefined, model.Defined(1)))
	assert.Equal(t, model.Neutral, classifyCross(model.Defined(1), model.Undefined))
}

func TestClassifyBollinger(t *testing.T) {
	assert.Equal(t, model.Bullish, classifyBollinger(100, model.Defined(90)))
	assert.Equal(t, model.Neutral, classifyBollinger(85, model.Defined(90)))
	assert.Equal(t, model.Neutral, classifyBollinger(100, model.Undefined))
}

func TestClassifyAboveValue(t *testing.T) {
	assert.Equal(t, model.Bullish, classifyAboveValue(100, model.Defined(90)))
	assert.Equal(t, model.Bearish, classifyAboveValue(80, model.Defined(90)))
	assert.Equal(t, model.Neutral, classifyAboveValue(100, model.Undefined))
}

func TestClassifyADX(t *testing.T) {
	assert.Equal(t, model.Strong, classifyADX(model.Defined(30)))
	assert.Equal(t, model.Weak, classifyADX(model.Defined(25)))
	assert.Equal(t, model.Weak, classifyADX(model.Defined(10)))
	assert.Equal(t, model.Neutral, classifyADX(model.Undefined))
}

func TestFormatRaw(t *testing.T) {
	assert.Equal(t, "1.23", formatRaw(model.Defined(1.234)))
	assert.Equal(t, "n/a", formatRaw(model.Undefined))
}

func TestClassify_LinearUptrendScenario(t *testing.T) {
	// 30 daily bars, closes 100..129: SMA20 at the final bar is 119.5
	// and the close of 129 sits above it.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make(model.Series, 30)
	for i := range bars {
		c := 100.0 + float64(i)
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 50,
		}
	}

	snap, err := indicator.NewEngine().Snapshot(bars)
	require.NoError(t, err)
	require.True(t, snap.Value(indicator.KindSMA).Defined)
	assert.InDelta(t, 119.5, snap.Value(indicator.KindSMA).Val, 1e-9)

	rep := Classify("BTCUSDT", snap, PolicyStandard)
	assert.Equal(t, string(model.Bullish), rep.Get("SMA20"))
}

func TestClassify_InsufficientHistoryScenario(t *testing.T) {
	// 5 bars against a 14-period RSI: undefined everywhere, so the
	// label falls back to Neutral.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make(model.Series, 5)
	for i := range bars {
		c := 100.0 + float64(i)
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 50,
		}
	}

	snap, err := indicator.NewEngine().Snapshot(bars)
	require.NoError(t, err)
	assert.False(t, snap.Value(indicator.KindRSI).Defined)

	rep := Classify("BTCUSDT", snap, PolicyStandard)
	assert.Equal(t, string(model.Neutral), rep.Get("RSI"))
}
