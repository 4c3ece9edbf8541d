package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"CryptoPulse/internal/model"
)

// labelBadge decorates directional labels in chat output.
var labelBadge = map[string]string{
	string(model.Bullish): "🟢",
	string(model.Bearish): "🔴",
	string(model.Neutral): "⚪",
	string(model.Strong):  "💪",
	string(model.Weak):    "💤",
}

// FormatSignalReport renders one symbol's classified indicators into a
// Telegram message.
func FormatSignalReport(rep *model.Report, interval, mode string, at time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s/%s | %s\n\n", rep.Symbol, interval, mode, at.Format("2006-01-02 15:04")))
	for _, e := range rep.Entries {
		if badge, ok := labelBadge[e.Value]; ok {
			b.WriteString(fmt.Sprintf("%s: %s %s\n", e.Name, badge, e.Value))
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", e.Name, e.Value))
	}
	return b.String()
}

// FormatNoData renders the degraded report for a symbol whose fetch
// produced no usable series this cycle.
func FormatNoData(symbol string, reason error) string {
	return fmt.Sprintf("⚠️ <b>%s</b>: no market data this cycle (%v)", symbol, reason)
}

// FormatStatus summarizes the last completed cycle for the /status command.
func FormatStatus(lastRun time.Time, results map[string]string) string {
	if lastRun.IsZero() {
		return "No cycle has completed yet."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🕒 <b>Last cycle:</b> %s\n\n", lastRun.Format("2006-01-02 15:04:05")))
	symbols := make([]string, 0, len(results))
	for s := range results {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		b.WriteString(fmt.Sprintf("%s: %s\n", symbol, results[symbol]))
	}
	return b.String()
}
