package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}
	if len(cfg.Market.Symbols) != 1 || cfg.Market.Symbols[0] != "BTC" {
		t.Errorf("unexpected default symbols: %v", cfg.Market.Symbols)
	}
	if cfg.Market.Interval != "4h" {
		t.Errorf("unexpected default interval: %s", cfg.Market.Interval)
	}
	if cfg.Market.Lookback != 300 {
		t.Errorf("unexpected default lookback: %d", cfg.Market.Lookback)
	}
	if cfg.Analysis.Mode != "standard" {
		t.Errorf("unexpected default mode: %s", cfg.Analysis.Mode)
	}
	if cfg.PageDelay() != 500*time.Millisecond {
		t.Errorf("unexpected default page delay: %v", cfg.PageDelay())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CRYPTOS", "btc, eth ,SOLUSDT")
	t.Setenv("INTERVAL", "1h")
	t.Setenv("LOOKBACK", "500")
	t.Setenv("ANALYSIS_MODE", "weekly")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Market.Interval != "1h" {
		t.Errorf("INTERVAL override not applied: %s", cfg.Market.Interval)
	}
	if cfg.Market.Lookback != 500 {
		t.Errorf("LOOKBACK override not applied: %d", cfg.Market.Lookback)
	}
	if cfg.Analysis.Mode != "weekly" {
		t.Errorf("ANALYSIS_MODE override not applied: %s", cfg.Analysis.Mode)
	}

	pairs := cfg.Pairs()
	want := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %v", len(want), pairs)
	}
	for i, p := range want {
		if pairs[i] != p {
			t.Errorf("pair %d: expected %s, got %s", i, p, pairs[i])
		}
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without telegram credentials")
	}

	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "chat"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.Analysis.Mode = "hourly"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown mode")
	}

	cfg.Analysis.Mode = "weekly"
	cfg.Analysis.WeeklyAnchor = "Someday"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown weekday")
	}
}

func TestAnchorWeekday(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	day, err := cfg.AnchorWeekday()
	if err != nil {
		t.Fatalf("default anchor: %v", err)
	}
	if day != time.Monday {
		t.Errorf("expected Monday, got %v", day)
	}

	cfg.Analysis.WeeklyAnchor = "sunday"
	day, err = cfg.AnchorWeekday()
	if err != nil {
		t.Fatalf("case-insensitive anchor: %v", err)
	}
	if day != time.Sunday {
		t.Errorf("expected Sunday, got %v", day)
	}
}
