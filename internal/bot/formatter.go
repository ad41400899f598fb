package bot

import (
	"fmt"
	"strings"

	"smart-stock-bot/internal/pipeline"
)

const notAvailable = "N/A"

// FormatReport renders a prediction result as the main chat message.
// Missing metadata fields render as N/A; nothing in a result can make
// rendering fail.
func FormatReport(res *pipeline.Result) string {
	p := res.Profile

	name := p.LongName
	if name == "" {
		name = notAvailable
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Prediction for %s (%s)\n", res.Symbol.Raw, name)
	fmt.Fprintf(&b, "🗓 Date: %s\n", res.Forecast.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "💰 Estimated: ₹%.2f\n", res.Forecast.Point)
	fmt.Fprintf(&b, "⬇️ Low: ₹%.2f\n", res.Forecast.Lower)
	fmt.Fprintf(&b, "⬆️ High: ₹%.2f\n", res.Forecast.Upper)
	fmt.Fprintf(&b, "✨ Adjusted (sentiment): ₹%.2f\n", res.Adjusted)
	fmt.Fprintf(&b, "🧠 Sentiment: %.3f\n", res.Sentiment)

	b.WriteString("\n📌 Info:\n")
	fmt.Fprintf(&b, "- Sector: %s\n", orNA(p.Sector))
	fmt.Fprintf(&b, "- Industry: %s\n", orNA(p.Industry))
	fmt.Fprintf(&b, "- Market Cap: %s\n", rupees(p.MarketCap, 0))
	fmt.Fprintf(&b, "- P/E Ratio: %s\n", number(p.TrailingPE))
	fmt.Fprintf(&b, "- Dividend: %s\n", number(p.DividendYield))
	fmt.Fprintf(&b, "- 52W H/L: %s / %s\n", rupees(p.FiftyTwoWeekHigh, 2), rupees(p.FiftyTwoWeekLow, 2))
	fmt.Fprintf(&b, "- Day H/L/Open: %s / %s / %s\n", rupees(p.DayHigh, 2), rupees(p.DayLow, 2), rupees(p.Open, 2))
	fmt.Fprintf(&b, "- Beta: %s\n", number(p.Beta))

	b.WriteString("\n🌍 Market Indicators:\n")
	for _, entry := range res.Indicators {
		if entry.OK {
			fmt.Fprintf(&b, "• %s: %.2f\n", entry.Name, entry.Price)
		} else {
			fmt.Fprintf(&b, "• %s: %s\n", entry.Name, notAvailable)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatNews renders the follow-up headlines message.
func FormatNews(headlines []string) string {
	var b strings.Builder
	b.WriteString("📰 News:")
	for _, h := range headlines {
		b.WriteString("\n• " + h)
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func number(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

func rupees(v *float64, decimals int) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("₹%.*f", decimals, *v)
}
