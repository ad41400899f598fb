package marketdata

import "testing"

const sampleQuoteSummary = `{
  "quoteSummary": {
    "result": [{
      "assetProfile": {"sector": "Technology", "industry": "Information Technology Services"},
      "summaryDetail": {
        "marketCap": {"raw": 6500000000000, "fmt": "6.5T"},
        "trailingPE": {"raw": 24.7, "fmt": "24.70"},
        "dividendYield": {"raw": 0.026, "fmt": "2.60%"},
        "fiftyTwoWeekHigh": {"raw": 2006.45},
        "fiftyTwoWeekLow": {"raw": 1307.0},
        "dayHigh": {"raw": 1585.0},
        "dayLow": {"raw": 1561.2},
        "open": {"raw": 1570.0},
        "beta": {"raw": 0.62}
      },
      "price": {"longName": "Infosys Limited", "shortName": "INFOSYS LTD"}
    }],
    "error": null
  }
}`

const sparseQuoteSummary = `{
  "quoteSummary": {
    "result": [{
      "assetProfile": {},
      "summaryDetail": {"open": {"raw": 86.1}},
      "price": {"shortName": "USD/INR"}
    }],
    "error": null
  }
}`

const errorQuoteSummary = `{
  "quoteSummary": {
    "result": null,
    "error": {"code": "Not Found", "description": "Quote not found for ticker symbol: XYZ.NS"}
  }
}`

func TestParseProfileFull(t *testing.T) {
	p, err := parseProfile([]byte(sampleQuoteSummary))
	if err != nil {
		t.Fatalf("parseProfile: %v", err)
	}

	if p.LongName != "Infosys Limited" {
		t.Errorf("Expected long name, got %q", p.LongName)
	}
	if p.Sector != "Technology" {
		t.Errorf("Expected sector Technology, got %q", p.Sector)
	}
	if p.TrailingPE == nil || *p.TrailingPE != 24.7 {
		t.Errorf("Unexpected trailing P/E: %v", p.TrailingPE)
	}
	if p.Beta == nil || *p.Beta != 0.62 {
		t.Errorf("Unexpected beta: %v", p.Beta)
	}
}

func TestParseProfileSparseFields(t *testing.T) {
	p, err := parseProfile([]byte(sparseQuoteSummary))
	if err != nil {
		t.Fatalf("parseProfile: %v", err)
	}

	if p.LongName != "USD/INR" {
		t.Errorf("Expected short-name fallback, got %q", p.LongName)
	}
	if p.Sector != "" {
		t.Errorf("Expected empty sector, got %q", p.Sector)
	}
	if p.MarketCap != nil {
		t.Errorf("Expected nil market cap, got %v", *p.MarketCap)
	}
	if p.Open == nil || *p.Open != 86.1 {
		t.Errorf("Unexpected open: %v", p.Open)
	}
}

func TestParseProfileAPIError(t *testing.T) {
	if _, err := parseProfile([]byte(errorQuoteSummary)); err == nil {
		t.Error("Expected error for API-level failure")
	}
}

func TestParseProfileBadJSON(t *testing.T) {
	if _, err := parseProfile([]byte("<html>rate limited</html>")); err == nil {
		t.Error("Expected error for non-JSON body")
	}
}
