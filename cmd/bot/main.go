package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CryptoPulse/internal/classifier"
	"CryptoPulse/internal/collector"
	"CryptoPulse/internal/config"
	"CryptoPulse/internal/notifier"
	"CryptoPulse/internal/recorder"
	"CryptoPulse/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CryptoPulse starting...")

	// Load .env if present, then config
	_ = godotenv.Load()
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("MOCK_DATA") == "true" {
		fetcher = &collector.MockFetcher{Price: 50000}
	} else {
		fetcher = collector.NewBinanceFetcher(cfg.Proxy, cfg.PageDelay())
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	anchor, err := cfg.AnchorWeekday()
	if err != nil {
		log.Fatalf("[FATAL] weekly anchor: %v", err)
	}
	policy := classifier.PolicyStandard
	if cfg.Analysis.Mode == "weekly" {
		policy = classifier.PolicyWeekly
	}
	col := collector.NewCollector(fetcher, cfg.Market.Interval, cfg.Market.Lookback, policy == classifier.PolicyWeekly, anchor)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, tn, rec, cfg.Pairs(), policy, cfg.Market.Interval)
	if err := sched.RegisterAll(cfg.Schedule.CycleCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing signal cycle now")
		go sched.RunCycleNow()
	}

	log.Println("[INFO] CryptoPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CryptoPulse stopped")
}
