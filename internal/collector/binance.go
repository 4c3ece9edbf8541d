package collector

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"

	"CryptoPulse/internal/model"
)

// Binance caps a single klines request at 1000 bars.
const maxPageLimit = 1000

// BinanceFetcher implements Fetcher against the Binance spot klines
// API. Requests larger than one page walk backward in time using the
// oldest open time of the previous page as the next upper bound, with
// a fixed delay between pages to respect provider rate limits.
type BinanceFetcher struct {
	Client    *binance.Client
	PageLimit int
	PageDelay time.Duration
}

// NewBinanceFetcher creates a fetcher with optional proxy support. The
// klines endpoint is public, so no API keys are needed.
func NewBinanceFetcher(proxyURL string, pageDelay time.Duration) *BinanceFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client := binance.NewClient("", "")
	client.HTTPClient = &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
	return &BinanceFetcher{
		Client:    client,
		PageLimit: maxPageLimit,
		PageDelay: pageDelay,
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

func (f *BinanceFetcher) FetchBars(ctx context.Context, symbol, interval string, limit int) (model.Series, error) {
	var pages []model.Series
	total := 0
	var endTime int64 // 0 means latest

	for total < limit {
		svc := f.Client.NewKlinesService().Symbol(symbol).Interval(interval).Limit(f.PageLimit)
		if endTime > 0 {
			svc.EndTime(endTime)
		}
		klines, err := svc.Do(ctx)
		if err != nil {
			// A failed page ends pagination; callers handle short series.
			log.Printf("[WARN] binance klines %s %s: %v", symbol, interval, err)
			break
		}
		if len(klines) == 0 {
			break
		}
		pages = append(pages, translateKlines(symbol, klines))
		total += len(klines)
		endTime = klines[0].OpenTime - 1
		if len(klines) < f.PageLimit {
			break
		}
		select {
		case <-ctx.Done():
			return stitchPages(pages, limit), ctx.Err()
		case <-time.After(f.PageDelay):
		}
	}
	return stitchPages(pages, limit), nil
}

// translateKlines converts provider klines to bars, skipping any with
// unparseable fields.
func translateKlines(symbol string, klines []*binance.Kline) model.Series {
	bars := make(model.Series, 0, len(klines))
	for _, k := range klines {
		bar, err := translateKline(k)
		if err != nil {
			log.Printf("[WARN] binance kline %s at %d: %v", symbol, k.OpenTime, err)
			continue
		}
		bars = append(bars, bar)
	}
	return bars
}

func translateKline(k *binance.Kline) (model.OHLCV, error) {
	var bar model.OHLCV
	var err error
	if bar.Open, err = strconv.ParseFloat(k.Open, 64); err != nil {
		return bar, err
	}
	if bar.High, err = strconv.ParseFloat(k.High, 64); err != nil {
		return bar, err
	}
	if bar.Low, err = strconv.ParseFloat(k.Low, 64); err != nil {
		return bar, err
	}
	if bar.Close, err = strconv.ParseFloat(k.Close, 64); err != nil {
		return bar, err
	}
	if bar.Volume, err = strconv.ParseFloat(k.Volume, 64); err != nil {
		return bar, err
	}
	bar.Time = time.UnixMilli(k.OpenTime).UTC()
	return bar, nil
}

// stitchPages joins backward-fetched pages into one ascending series,
// dropping duplicate boundary timestamps and trimming to limit.
func stitchPages(pages []model.Series, limit int) model.Series {
	var bars model.Series
	for i := len(pages) - 1; i >= 0; i-- {
		for _, b := range pages[i] {
			if n := len(bars); n > 0 && !bars[n-1].Time.Before(b.Time) {
				continue
			}
			bars = append(bars, b)
		}
	}
	if len(bars) > limit {
		bars = bars[len(bars)-limit:]
	}
	return bars
}
