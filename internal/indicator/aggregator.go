package indicator

import (
	"context"

	"github.com/shopspring/decimal"

	"smart-stock-bot/internal/logger"
	"smart-stock-bot/internal/marketdata"
	"smart-stock-bot/internal/store"
)

// Entry is one reference instrument's snapshot. Price is rounded to two
// decimal places; OK is false when the lookup failed and the entry should
// render as unavailable.
type Entry struct {
	Name  string
	Price float64
	OK    bool
}

// Snapshot preserves the configured reference order.
type Snapshot []Entry

// QuoteSource is the single lookup the aggregator needs.
type QuoteSource interface {
	Snapshot(ctx context.Context, symbol string) (marketdata.Quote, error)
}

// Aggregator retrieves current prices for a fixed set of reference
// instruments. Lookups are isolated: one failing entry never blocks or
// alters its siblings.
type Aggregator struct {
	quotes QuoteSource
	refs   []store.IndicatorRef
}

func NewAggregator(quotes QuoteSource, refs []store.IndicatorRef) *Aggregator {
	return &Aggregator{quotes: quotes, refs: refs}
}

// Snapshot returns one entry per configured reference, in order.
func (a *Aggregator) Snapshot(ctx context.Context) Snapshot {
	snapshot := make(Snapshot, 0, len(a.refs))
	for _, ref := range a.refs {
		q, err := a.quotes.Snapshot(ctx, ref.Symbol)
		if err != nil {
			logger.Degraded(ctx, "indicator", ref.Symbol, err, "name", ref.Name)
			snapshot = append(snapshot, Entry{Name: ref.Name})
			continue
		}
		snapshot = append(snapshot, Entry{
			Name:  ref.Name,
			Price: round2(q.Price),
			OK:    true,
		})
	}
	return snapshot
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
