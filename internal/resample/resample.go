// Package resample compresses a high-frequency bar series into a
// lower-frequency one using fixed period boundaries.
package resample

import (
	"time"

	"CryptoPulse/internal/model"
)

// Weekly aggregates bars into weekly buckets anchored to the given
// weekday, in UTC. Per bucket: open of the first bar, max high, min
// low, close of the last bar, summed volume. Buckets with no input
// bars are dropped, never filled. The input must be ascending and is
// not mutated.
func Weekly(bars model.Series, anchor time.Weekday) model.Series {
	if len(bars) == 0 {
		return nil
	}
	out := make(model.Series, 0, len(bars)/7+1)

	cur := weekStart(bars[0].Time, anchor)
	agg := bars[0]
	agg.Time = cur

	for _, b := range bars[1:] {
		start := weekStart(b.Time, anchor)
		if !start.Equal(cur) {
			out = append(out, agg)
			cur = start
			agg = b
			agg.Time = cur
			continue
		}
		if b.High > agg.High {
			agg.High = b.High
		}
		if b.Low < agg.Low {
			agg.Low = b.Low
		}
		agg.Close = b.Close
		agg.Volume += b.Volume
	}
	return append(out, agg)
}

// weekStart returns midnight UTC of the most recent anchor weekday at
// or before t.
func weekStart(t time.Time, anchor time.Weekday) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	back := (int(day.Weekday()) - int(anchor) + 7) % 7
	return day.AddDate(0, 0, -back)
}
