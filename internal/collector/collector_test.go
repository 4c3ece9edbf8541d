package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"CryptoPulse/internal/indicator"
	"CryptoPulse/internal/model"
)

func dailyBars(start time.Time, count int) model.Series {
	bars := make(model.Series, count)
	for i := 0; i < count; i++ {
		c := 100.0 + float64(i)
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i),
			Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 100,
		}
	}
	return bars
}

func TestCollect_MockFetcher(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 50000}, "1h", 100, false, time.Monday)
	snap, err := col.Collect(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Close <= 0 {
		t.Errorf("expected positive close, got %f", snap.Close)
	}
	if !snap.Value(indicator.KindSMA).Defined {
		t.Error("expected SMA defined with 100 bars of history")
	}
}

func TestCollect_FetchError(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: errors.New("boom")}, "1h", 100, false, time.Monday)
	if _, err := col.Collect(context.Background(), "BTCUSDT"); err == nil {
		t.Fatal("expected error from failing fetcher")
	}
}

func TestCollect_EmptySeries(t *testing.T) {
	col := NewCollector(&MockFetcher{Bars: model.Series{}}, "1h", 100, false, time.Monday)
	_, err := col.Collect(context.Background(), "BTCUSDT")
	if err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestCollect_MalformedSeries(t *testing.T) {
	bars := dailyBars(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5)
	bars[2].High = bars[2].Low - 1 // violates the bar invariant
	col := NewCollector(&MockFetcher{Bars: bars}, "1d", 5, false, time.Monday)
	if _, err := col.Collect(context.Background(), "BTCUSDT"); err == nil {
		t.Fatal("expected error for malformed series")
	}
}

func TestCollect_WeeklyResample(t *testing.T) {
	// 30 daily bars give a defined SMA20 raw, but only ~5 bars once
	// resampled to weekly. The weekly pipeline must see the latter.
	bars := dailyBars(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 30)

	raw := NewCollector(&MockFetcher{Bars: bars}, "1d", 30, false, time.Monday)
	snap, err := raw.Collect(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("raw collect: %v", err)
	}
	if !snap.Value(indicator.KindSMA).Defined {
		t.Error("expected SMA defined without resampling")
	}

	weekly := NewCollector(&MockFetcher{Bars: bars}, "1d", 30, true, time.Monday)
	snap, err = weekly.Collect(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("weekly collect: %v", err)
	}
	if snap.Value(indicator.KindSMA).Defined {
		t.Error("expected SMA undefined after weekly resample of 30 days")
	}
	if snap.Close != bars[len(bars)-1].Close {
		t.Errorf("weekly close should match the final input close, got %f", snap.Close)
	}
}

func TestStitchPages(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := dailyBars(start, 3)
	newer := dailyBars(start.AddDate(0, 0, 2), 3) // overlaps older's last bar

	// Pages arrive newest-first from backward pagination.
	got := stitchPages([]model.Series{newer, older}, 10)
	if err := got.Validate(); err != nil {
		t.Fatalf("stitched series invalid: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 bars after dedup, got %d", len(got))
	}

	trimmed := stitchPages([]model.Series{newer, older}, 2)
	if len(trimmed) != 2 {
		t.Fatalf("expected trim to 2 bars, got %d", len(trimmed))
	}
	if !trimmed[1].Time.Equal(newer[2].Time) {
		t.Errorf("trim must keep the most recent bars")
	}
}

func TestGenerateMockBars(t *testing.T) {
	bars := GenerateMockBars(100, 50)
	if len(bars) != 50 {
		t.Fatalf("expected 50 bars, got %d", len(bars))
	}
	if err := bars.Validate(); err != nil {
		t.Fatalf("mock bars invalid: %v", err)
	}
}
