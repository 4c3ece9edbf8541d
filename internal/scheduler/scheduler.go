package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"CryptoPulse/internal/classifier"
	"CryptoPulse/internal/collector"
	"CryptoPulse/internal/notifier"
	"CryptoPulse/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the signal cycle on a cron schedule. Each cycle walks
// the configured symbols sequentially; one symbol's failure never
// aborts the others.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Symbols   []string
	Policy    classifier.Policy
	Interval  string
	Ctx       context.Context

	mu       sync.Mutex
	lastRun  time.Time
	outcomes map[string]string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, symbols []string, policy classifier.Policy, interval string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Symbols:   symbols,
		Policy:    policy,
		Interval:  interval,
		Ctx:       ctx,
	}
}

// RegisterAll registers the periodic signal cycle.
func (s *Scheduler) RegisterAll(cycleCron string) error {
	if _, err := s.Cron.AddFunc(cycleCron, s.runCycle); err != nil {
		return fmt.Errorf("register cycle task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunCycleNow executes the signal cycle immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunCycleNow() {
	s.runCycle()
}

func (s *Scheduler) runCycle() {
	log.Printf("[INFO] running signal cycle for %d symbols", len(s.Symbols))
	outcomes := make(map[string]string, len(s.Symbols))
	for _, symbol := range s.Symbols {
		outcomes[symbol] = s.runSymbol(symbol)
	}

	s.mu.Lock()
	s.lastRun = time.Now()
	s.outcomes = outcomes
	s.mu.Unlock()
}

// runSymbol runs one symbol's pipeline and returns a short outcome for
// the /status summary. Failures degrade to a "no data" report.
func (s *Scheduler) runSymbol(symbol string) string {
	snap, err := s.Collector.Collect(s.Ctx, symbol)
	if err != nil {
		log.Printf("[ERROR] collect %s: %v", symbol, err)
		s.trySend(notifier.FormatNoData(symbol, err))
		return "no data"
	}

	rep := classifier.Classify(symbol, snap, s.Policy)
	s.trySend(notifier.FormatSignalReport(rep, s.Interval, string(s.Policy), time.Now()))

	if err := s.Recorder.RecordCycle(&recorder.CycleRecord{
		Symbol: symbol,
		Mode:   string(s.Policy),
		Close:  snap.Close,
		Report: rep,
	}); err != nil {
		log.Printf("[ERROR] record cycle %s: %v", symbol, err)
	}
	return fmt.Sprintf("close=%.2f RSI=%s MACD=%s", snap.Close, rep.Get("RSI"), rep.Get("MACD"))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/signals":
		s.runCycle()
		return ""
	case "/status":
		s.mu.Lock()
		defer s.mu.Unlock()
		return notifier.FormatStatus(s.lastRun, s.outcomes)
	default:
		return "Available commands:\n• /signals — run the signal cycle now\n• /status — show the last cycle summary"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
