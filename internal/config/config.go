package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Market struct {
		Symbols     []string `yaml:"symbols"`
		Quote       string   `yaml:"quote"`
		Interval    string   `yaml:"interval"`
		Lookback    int      `yaml:"lookback"`
		PageDelayMS int      `yaml:"page_delay_ms"`
	} `yaml:"market"`
	Analysis struct {
		Mode         string `yaml:"mode"`          // "standard" or "weekly"
		WeeklyAnchor string `yaml:"weekly_anchor"` // weekday name, e.g. "Monday"
	} `yaml:"analysis"`
	Schedule struct {
		CycleCron string `yaml:"cycle_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRYPTOS"); v != "" {
		cfg.Market.Symbols = nil
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Market.Symbols = append(cfg.Market.Symbols, s)
			}
		}
	}
	if v := os.Getenv("QUOTE"); v != "" {
		cfg.Market.Quote = v
	}
	if v := os.Getenv("INTERVAL"); v != "" {
		cfg.Market.Interval = v
	}
	if v := os.Getenv("LOOKBACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Market.Lookback = n
		}
	}
	if v := os.Getenv("PAGE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Market.PageDelayMS = n
		}
	}
	if v := os.Getenv("ANALYSIS_MODE"); v != "" {
		cfg.Analysis.Mode = v
	}
	if v := os.Getenv("CYCLE_CRON"); v != "" {
		cfg.Schedule.CycleCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Market.Symbols) == 0 {
		cfg.Market.Symbols = []string{"BTC"}
	}
	if cfg.Market.Quote == "" {
		cfg.Market.Quote = "USDT"
	}
	if cfg.Market.Interval == "" {
		cfg.Market.Interval = "4h"
	}
	if cfg.Market.Lookback == 0 {
		cfg.Market.Lookback = 300
	}
	if cfg.Market.PageDelayMS == 0 {
		cfg.Market.PageDelayMS = 500
	}
	if cfg.Analysis.Mode == "" {
		cfg.Analysis.Mode = "standard"
	}
	if cfg.Analysis.WeeklyAnchor == "" {
		cfg.Analysis.WeeklyAnchor = "Monday"
	}
	if cfg.Schedule.CycleCron == "" {
		cfg.Schedule.CycleCron = "0 5 */4 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cryptopulse.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Analysis.Mode != "standard" && c.Analysis.Mode != "weekly" {
		return fmt.Errorf("analysis.mode must be \"standard\" or \"weekly\", got %q", c.Analysis.Mode)
	}
	if c.Market.Lookback <= 0 {
		return fmt.Errorf("market.lookback must be positive")
	}
	if _, err := c.AnchorWeekday(); err != nil {
		return err
	}
	return nil
}

// Pairs returns the full trading pairs: each symbol uppercased with
// the quote currency appended unless already suffixed.
func (c *Config) Pairs() []string {
	pairs := make([]string, 0, len(c.Market.Symbols))
	quote := strings.ToUpper(c.Market.Quote)
	for _, s := range c.Market.Symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !strings.HasSuffix(s, quote) {
			s += quote
		}
		pairs = append(pairs, s)
	}
	return pairs
}

// PageDelay returns the inter-page fetch delay.
func (c *Config) PageDelay() time.Duration {
	return time.Duration(c.Market.PageDelayMS) * time.Millisecond
}

// AnchorWeekday parses the weekly anchor weekday name.
func (c *Config) AnchorWeekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), c.Analysis.WeeklyAnchor) {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("analysis.weekly_anchor: unknown weekday %q", c.Analysis.WeeklyAnchor)
}
