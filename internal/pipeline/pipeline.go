package pipeline

import (
	"context"

	"github.com/shopspring/decimal"

	"smart-stock-bot/internal/forecast"
	"smart-stock-bot/internal/indicator"
	"smart-stock-bot/internal/interfaces"
	"smart-stock-bot/internal/logger"
	"smart-stock-bot/internal/marketdata"
	"smart-stock-bot/internal/symbol"
	"smart-stock-bot/internal/trace"
)

// Projector fits a model to a price series and projects one step ahead.
type Projector interface {
	Project(series marketdata.Series) (forecast.Forecast, error)
}

// SentimentScorer returns recent headlines and their aggregate score.
// Implementations degrade to (nil, 0) instead of failing.
type SentimentScorer interface {
	Score(ctx context.Context, displayName string) ([]string, float64)
}

// IndicatorSource snapshots the configured reference instruments.
type IndicatorSource interface {
	Snapshot(ctx context.Context) indicator.Snapshot
}

// Result is everything a single prediction produced. It owns copies of all
// inputs and is discarded once rendered; nothing in it is shared between
// requests.
type Result struct {
	Symbol     symbol.Canonical
	Forecast   forecast.Forecast
	Headlines  []string
	Sentiment  float64
	Adjusted   float64
	Indicators indicator.Snapshot
	Profile    marketdata.Profile
}

// Runner sequences one prediction per call: resolve, fetch history,
// forecast, score sentiment, snapshot indicators, adjust, fetch metadata.
// History and forecast failures abort the request; every later stage
// degrades instead. Runners hold no cross-request state and are safe for
// concurrent use.
type Runner struct {
	resolver   *symbol.Resolver
	market     interfaces.MarketData
	projector  Projector
	scorer     SentimentScorer
	indicators IndicatorSource
}

func NewRunner(resolver *symbol.Resolver, market interfaces.MarketData, projector Projector, scorer SentimentScorer, indicators IndicatorSource) *Runner {
	return &Runner{
		resolver:   resolver,
		market:     market,
		projector:  projector,
		scorer:     scorer,
		indicators: indicators,
	}
}

// Predict runs the pipeline for one raw symbol. Steps after the history
// fetch never touch the provider's history again; they operate on data
// already retrieved in this invocation.
func (r *Runner) Predict(ctx context.Context, raw string) (*Result, error) {
	ctx, span := trace.StartSpan(ctx, "predict")
	defer span.End()

	sym := r.resolver.Resolve(raw)
	logger.Info(ctx, "Prediction started", "raw", sym.Raw, "lookup", sym.Lookup, "class", string(sym.Class))

	op := logger.StartOperation(ctx, "fetch-history", "symbol", sym.Lookup)
	series, err := r.market.History(op.GetContext(), sym.Lookup)
	if err != nil {
		op.EndWithError(err)
		return nil, &DataUnavailableError{Symbol: sym.Raw}
	}
	op.End("points", series.Len())

	op = logger.StartOperation(ctx, "forecast", "symbol", sym.Lookup)
	fc, err := r.projector.Project(series)
	if err != nil {
		op.EndWithError(err)
		return nil, &ForecastError{Symbol: sym.Raw, Err: err}
	}
	op.End()

	headlines, sentiment := r.scorer.Score(ctx, sym.DisplayName)
	snapshot := r.indicators.Snapshot(ctx)

	adjusted := round2(fc.Point * (1 + sentiment*0.01))

	profile, err := r.market.Profile(ctx, sym.Lookup)
	if err != nil {
		logger.Degraded(ctx, "metadata", sym.Lookup, err)
		profile = marketdata.Profile{}
	}

	logger.Prediction(ctx, sym.Raw, fc.Point, adjusted, sentiment, "forecast_date", fc.Date.Format("2006-01-02"))
	return &Result{
		Symbol:     sym,
		Forecast:   fc,
		Headlines:  headlines,
		Sentiment:  sentiment,
		Adjusted:   adjusted,
		Indicators: snapshot,
		Profile:    profile,
	}, nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
