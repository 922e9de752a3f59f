package notifier

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"SwingSentinel/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatEmail renders the email brief with up to maxHeadlines news items.
func FormatEmail(b *model.Brief, maxHeadlines int) model.AlertMessage {
	var body strings.Builder
	body.WriteString(smaLine(b.Indicators) + "\n")
	body.WriteString(rsiLine(b.Indicators) + "\n\n")
	body.WriteString("News:\n\n")
	for _, h := range firstHeadlines(b.Headlines, maxHeadlines) {
		body.WriteString(fmt.Sprintf("Title: %s\nLink: %s\n\n", h.Title, h.URL))
	}
	return model.AlertMessage{
		Subject: summaryLine(b),
		Body:    body.String(),
	}
}

// FormatSMS renders the short text brief, titles only.
func FormatSMS(b *model.Brief, maxHeadlines int) model.AlertMessage {
	var body strings.Builder
	body.WriteString("\n" + summaryLine(b) + "\n\n")
	body.WriteString(smaLine(b.Indicators) + "\n")
	body.WriteString(rsiLine(b.Indicators) + "\n\n")
	body.WriteString("News:\n")
	for _, h := range firstHeadlines(b.Headlines, maxHeadlines) {
		body.WriteString(h.Title + "\n\n")
	}
	return model.AlertMessage{Body: body.String()}
}

// summaryLine is e.g. "BTC 🔺7.1% -> 67,123$".
func summaryLine(b *model.Brief) string {
	pct := strconv.FormatFloat(math.Abs(b.Swing.PercentMove), 'f', 1, 64)
	return fmt.Sprintf("%s %s%s%% -> %s$", b.Symbol, b.Decision.Glyph, pct, formatPrice(b.Swing.CurrentPrice))
}

func smaLine(ind *model.Indicators) string {
	return fmt.Sprintf("Current SMA(%d%s): %s$", ind.SMAPeriod, intervalSuffix(ind.Interval), formatPrice(ind.SMA))
}

func rsiLine(ind *model.Indicators) string {
	parts := make([]string, len(ind.RSI))
	for i, v := range ind.RSI {
		parts[i] = strconv.FormatFloat(v, 'f', 1, 64)
	}
	return fmt.Sprintf("Last %d RSI: %s", len(ind.RSI), strings.Join(parts, " -> "))
}

func formatPrice(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func intervalSuffix(interval string) string {
	switch interval {
	case "daily":
		return "D"
	case "weekly":
		return "W"
	case "monthly":
		return "M"
	default:
		return " " + interval
	}
}

func firstHeadlines(h []model.Headline, n int) []model.Headline {
	if n < len(h) {
		return h[:n]
	}
	return h
}
