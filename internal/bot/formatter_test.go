package bot

import (
	"strings"
	"testing"
	"time"

	"smart-stock-bot/internal/forecast"
	"smart-stock-bot/internal/indicator"
	"smart-stock-bot/internal/marketdata"
	"smart-stock-bot/internal/pipeline"
	"smart-stock-bot/internal/symbol"
)

func f64(v float64) *float64 { return &v }

func fullResult() *pipeline.Result {
	return &pipeline.Result{
		Symbol: symbol.Canonical{
			Raw:         "INFY",
			Lookup:      "INFY.NS",
			Class:       symbol.ClassEquity,
			DisplayName: "INFY",
		},
		Forecast: forecast.Forecast{
			Date:  time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
			Point: 1543.21,
			Lower: 1510.05,
			Upper: 1576.37,
		},
		Headlines: []string{"Infosys posts strong results", "IT stocks rally"},
		Sentiment: 0.412,
		Adjusted:  1549.57,
		Indicators: indicator.Snapshot{
			{Name: "Crude Oil", Price: 78.12, OK: true},
			{Name: "USD/INR", Price: 83.45, OK: true},
		},
		Profile: marketdata.Profile{
			LongName:         "Infosys Limited",
			Sector:           "Technology",
			Industry:         "Information Technology Services",
			MarketCap:        f64(6.4e12),
			TrailingPE:       f64(25.13),
			DividendYield:    f64(0.02),
			FiftyTwoWeekHigh: f64(1731.6),
			FiftyTwoWeekLow:  f64(1351.65),
			DayHigh:          f64(1550.0),
			DayLow:           f64(1528.3),
			Open:             f64(1532.0),
			Beta:             f64(1.05),
		},
	}
}

func TestFormatReportFull(t *testing.T) {
	out := FormatReport(fullResult())

	want := []string{
		"📊 Prediction for INFY (Infosys Limited)",
		"🗓 Date: 2025-07-08",
		"💰 Estimated: ₹1543.21",
		"⬇️ Low: ₹1510.05",
		"⬆️ High: ₹1576.37",
		"✨ Adjusted (sentiment): ₹1549.57",
		"🧠 Sentiment: 0.412",
		"- Sector: Technology",
		"- Market Cap: ₹6400000000000",
		"- P/E Ratio: 25.13",
		"- 52W H/L: ₹1731.60 / ₹1351.65",
		"- Day H/L/Open: ₹1550.00 / ₹1528.30 / ₹1532.00",
		"- Beta: 1.05",
		"• Crude Oil: 78.12",
		"• USD/INR: 83.45",
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Errorf("report missing %q\n%s", line, out)
		}
	}
	if strings.Contains(out, notAvailable) {
		t.Errorf("fully populated report should have no N/A fields:\n%s", out)
	}
}

func TestFormatReportDegraded(t *testing.T) {
	res := fullResult()
	res.Profile = marketdata.Profile{}
	res.Indicators = indicator.Snapshot{
		{Name: "Crude Oil", Price: 78.12, OK: true},
		{Name: "USD/INR", OK: false},
	}

	out := FormatReport(res)

	want := []string{
		"📊 Prediction for INFY (N/A)",
		"- Sector: N/A",
		"- Industry: N/A",
		"- Market Cap: N/A",
		"- P/E Ratio: N/A",
		"- Dividend: N/A",
		"- 52W H/L: N/A / N/A",
		"- Day H/L/Open: N/A / N/A / N/A",
		"- Beta: N/A",
		"• Crude Oil: 78.12",
		"• USD/INR: N/A",
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Errorf("report missing %q\n%s", line, out)
		}
	}
	// Forecast numbers still render even when metadata is gone.
	if !strings.Contains(out, "💰 Estimated: ₹1543.21") {
		t.Errorf("degraded report lost forecast line:\n%s", out)
	}
}

func TestFormatNews(t *testing.T) {
	out := FormatNews([]string{"First headline", "Second headline"})
	want := "📰 News:\n• First headline\n• Second headline"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
