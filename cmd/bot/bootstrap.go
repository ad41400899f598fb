package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"smart-stock-bot/internal/bot"
	"smart-stock-bot/internal/forecast"
	"smart-stock-bot/internal/indicator"
	"smart-stock-bot/internal/logger"
	"smart-stock-bot/internal/marketdata"
	"smart-stock-bot/internal/news"
	"smart-stock-bot/internal/pipeline"
	"smart-stock-bot/internal/store"
	"smart-stock-bot/internal/symbol"
	"smart-stock-bot/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem initializes environment, logger, and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeRunner wires the prediction pipeline from config
func initializeRunner(ctx context.Context, cfg *store.Config) *pipeline.Runner {
	market := marketdata.NewYahoo(cfg.Market.HistoryMonths, time.Duration(cfg.Market.TimeoutSeconds)*time.Second)
	feed := news.NewGoogleNewsFeed(cfg.News.Language, cfg.News.Country, time.Duration(cfg.News.TimeoutSeconds)*time.Second)

	scorer := news.NewScorer(feed, news.NewAnalyzer(), cfg.News.MaxHeadlines)
	indicators := indicator.NewAggregator(market, cfg.Indicators)

	logger.Info(ctx, "Pipeline initialized",
		"history_months", cfg.Market.HistoryMonths,
		"default_suffix", cfg.Market.DefaultSuffix,
		"max_headlines", cfg.News.MaxHeadlines,
		"indicators", len(cfg.Indicators),
	)

	return pipeline.NewRunner(
		symbol.NewResolver(cfg.Market.DefaultSuffix),
		market,
		forecast.NewEngine(),
		scorer,
		indicators,
	)
}

// initializeTelegram builds the Telegram client and poller
func initializeTelegram(ctx context.Context, cfg *store.Config, runner *pipeline.Runner) (*bot.Poller, error) {
	token := os.Getenv(cfg.Telegram.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("telegram token missing: set %s", cfg.Telegram.TokenEnv)
	}

	client := bot.NewClient(token, cfg.Telegram.PollTimeoutSeconds)
	handler := bot.NewHandler(runner, client)

	logger.Info(ctx, "Telegram transport initialized", "poll_timeout_seconds", cfg.Telegram.PollTimeoutSeconds)
	return bot.NewPoller(client, handler), nil
}
