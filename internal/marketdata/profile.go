package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const quoteSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary/"

// Profile holds descriptive instrument metadata. Numeric fields are nil when
// the provider omits them; string fields are empty.
type Profile struct {
	LongName         string
	Sector           string
	Industry         string
	MarketCap        *float64
	TrailingPE       *float64
	DividendYield    *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	DayHigh          *float64
	DayLow           *float64
	Open             *float64
	Beta             *float64
}

// profileClient reads the quoteSummary endpoint for the metadata fields the
// quote API does not expose (sector, industry, beta, valuation ratios).
type profileClient struct {
	client *resty.Client
}

func newProfileClient(timeout time.Duration) *profileClient {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	return &profileClient{client: client}
}

func (pc *profileClient) fetch(ctx context.Context, symbol string) (Profile, error) {
	resp, err := pc.client.R().
		SetContext(ctx).
		SetQueryParam("modules", "assetProfile,summaryDetail,price").
		Get(quoteSummaryURL + url.PathEscape(symbol))
	if err != nil {
		return Profile{}, fmt.Errorf("yahoo profile %s: %w", symbol, err)
	}
	if resp.IsError() {
		return Profile{}, fmt.Errorf("yahoo profile %s: status %d", symbol, resp.StatusCode())
	}
	return parseProfile(resp.Body())
}

// rawValue is Yahoo's wrapped numeric: {"raw": 25.1, "fmt": "25.10"}.
type rawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			SummaryDetail struct {
				MarketCap        rawValue `json:"marketCap"`
				TrailingPE       rawValue `json:"trailingPE"`
				DividendYield    rawValue `json:"dividendYield"`
				FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
				DayHigh          rawValue `json:"dayHigh"`
				DayLow           rawValue `json:"dayLow"`
				Open             rawValue `json:"open"`
				Beta             rawValue `json:"beta"`
			} `json:"summaryDetail"`
			Price struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"price"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func parseProfile(body []byte) (Profile, error) {
	var qs quoteSummaryResponse
	if err := json.Unmarshal(body, &qs); err != nil {
		return Profile{}, fmt.Errorf("yahoo profile decode: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return Profile{}, fmt.Errorf("yahoo profile api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return Profile{}, fmt.Errorf("yahoo profile: %w", ErrNoData)
	}

	r := qs.QuoteSummary.Result[0]
	name := r.Price.LongName
	if name == "" {
		name = r.Price.ShortName
	}
	return Profile{
		LongName:         name,
		Sector:           r.AssetProfile.Sector,
		Industry:         r.AssetProfile.Industry,
		MarketCap:        r.SummaryDetail.MarketCap.Raw,
		TrailingPE:       r.SummaryDetail.TrailingPE.Raw,
		DividendYield:    r.SummaryDetail.DividendYield.Raw,
		FiftyTwoWeekHigh: r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		FiftyTwoWeekLow:  r.SummaryDetail.FiftyTwoWeekLow.Raw,
		DayHigh:          r.SummaryDetail.DayHigh.Raw,
		DayLow:           r.SummaryDetail.DayLow.Raw,
		Open:             r.SummaryDetail.Open.Raw,
		Beta:             r.SummaryDetail.Beta.Raw,
	}, nil
}
