package collector

import (
	"context"

	"CryptoPulse/internal/model"
)

// Fetcher defines the interface for fetching market data.
//
// FetchBars returns up to limit bars ascending by time. A provider
// failure mid-pagination yields whatever was accumulated, possibly an
// empty series; callers must handle short results.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, interval string, limit int) (model.Series, error)
	Name() string
}
