package interfaces

import (
	"context"

	"smart-stock-bot/internal/marketdata"
)

// MarketData is the market-data provider the pipeline depends on. All three
// lookups are per-request; implementations hold no cross-request state.
type MarketData interface {
	// History returns a cleaned daily closing-price window, or an error
	// wrapping marketdata.ErrNoData when nothing usable exists.
	History(ctx context.Context, symbol string) (marketdata.Series, error)
	// Snapshot returns the most recent intraday quote.
	Snapshot(ctx context.Context, symbol string) (marketdata.Quote, error)
	// Profile returns sparse descriptive metadata; any field may be absent.
	Profile(ctx context.Context, symbol string) (marketdata.Profile, error)
}

// NewsFeed returns up to limit recent headlines for a free-text query,
// newest first. A fresh fetch happens on every call.
type NewsFeed interface {
	Headlines(ctx context.Context, query string, limit int) ([]string, error)
}

// TextAnalyzer scores a text's polarity in [-1, 1]. Implementations are pure
// functions of the text and safe for concurrent use.
type TextAnalyzer interface {
	Compound(text string) float64
}
