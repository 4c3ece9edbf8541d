package collector

import (
	"context"
	"fmt"
	"time"

	"CryptoPulse/internal/indicator"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/resample"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  model.Series
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _ string, _ string, limit int) (model.Series, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, limit), nil
}

// GenerateMockBars produces a gently drifting synthetic series around
// basePrice, one hourly bar per step.
func GenerateMockBars(basePrice float64, count int) model.Series {
	bars := make(model.Series, count)
	start := time.Now().UTC().Truncate(time.Hour).Add(-time.Duration(count) * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector runs the per-symbol analysis pipeline: fetch, optional
// weekly resample, indicator computation, latest-row extraction.
type Collector struct {
	Fetcher        Fetcher
	Engine         *indicator.Engine
	Interval       string
	Lookback       int
	ResampleWeekly bool
	WeeklyAnchor   time.Weekday
}

// NewCollector creates a new Collector with the default indicator set.
func NewCollector(fetcher Fetcher, interval string, lookback int, resampleWeekly bool, anchor time.Weekday) *Collector {
	return &Collector{
		Fetcher:        fetcher,
		Engine:         indicator.NewEngine(),
		Interval:       interval,
		Lookback:       lookback,
		ResampleWeekly: resampleWeekly,
		WeeklyAnchor:   anchor,
	}
}

// Collect fetches bars for the symbol and reduces them to the latest
// indicator snapshot. An empty or malformed fetch result is an error.
// A short one is not: missing history surfaces as undefined snapshot
// values, not as a failure.
func (c *Collector) Collect(ctx context.Context, symbol string) (*indicator.Snapshot, error) {
	bars, err := c.Fetcher.FetchBars(ctx, symbol, c.Interval, c.Lookback)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("malformed series for %s: %w", symbol, err)
	}
	if c.ResampleWeekly {
		bars = resample.Weekly(bars, c.WeeklyAnchor)
	}
	snap, err := c.Engine.Snapshot(bars)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", symbol, err)
	}
	return snap, nil
}
