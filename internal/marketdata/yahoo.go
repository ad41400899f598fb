package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"smart-stock-bot/internal/logger"
)

// ErrNoData signals that a symbol has no usable price history.
var ErrNoData = errors.New("no usable price data")

// Quote is a best-effort intraday snapshot for one symbol.
type Quote struct {
	Symbol           string
	Price            float64
	Open             float64
	DayHigh          float64
	DayLow           float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	ShortName        string
	Exchange         string
	MarketState      string
}

// Yahoo retrieves price history and snapshots from Yahoo Finance.
type Yahoo struct {
	historyMonths int
	profiles      *profileClient
}

// NewYahoo creates a provider fetching a historyMonths-long daily window.
// The timeout bounds every outbound call.
func NewYahoo(historyMonths int, timeout time.Duration) *Yahoo {
	finance.SetHTTPClient(&http.Client{Timeout: timeout})
	return &Yahoo{
		historyMonths: historyMonths,
		profiles:      newProfileClient(timeout),
	}
}

// History fetches and cleans the daily closing-price window for symbol.
// Returns ErrNoData when nothing usable survives cleaning.
func (y *Yahoo) History(ctx context.Context, symbol string) (Series, error) {
	end := time.Now()
	start := end.AddDate(0, -y.historyMonths, 0)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	raw := make([]Point, 0, y.historyMonths*22)
	iter := chart.Get(params)
	for iter.Next() {
		bar := iter.Bar()
		close, _ := bar.Close.Float64()
		raw = append(raw, Point{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close: close,
		})
	}
	if err := iter.Err(); err != nil {
		return Series{}, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	series := Clean(raw)
	if series.Empty() {
		return Series{}, fmt.Errorf("yahoo chart %s: %w", symbol, ErrNoData)
	}
	logger.Debug(ctx, "History fetched", "symbol", symbol, "rows", len(raw), "kept", series.Len())
	return series, nil
}

// Snapshot fetches the most recent intraday quote for symbol.
func (y *Yahoo) Snapshot(ctx context.Context, symbol string) (Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return Quote{}, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return Quote{}, fmt.Errorf("yahoo quote %s: %w", symbol, ErrNoData)
	}

	logger.Debug(ctx, "Quote fetched", "symbol", symbol, "price", q.RegularMarketPrice)
	return Quote{
		Symbol:           symbol,
		Price:            q.RegularMarketPrice,
		Open:             q.RegularMarketOpen,
		DayHigh:          q.RegularMarketDayHigh,
		DayLow:           q.RegularMarketDayLow,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
		ShortName:        q.ShortName,
		Exchange:         q.FullExchangeName,
		MarketState:      string(q.MarketState),
	}, nil
}

// Profile fetches descriptive instrument metadata. Every field is optional;
// callers render absent fields as unavailable.
func (y *Yahoo) Profile(ctx context.Context, symbol string) (Profile, error) {
	return y.profiles.fetch(ctx, symbol)
}
