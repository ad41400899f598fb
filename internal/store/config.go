package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// IndicatorRef names one reference instrument tracked alongside every
// prediction (e.g. a commodity future or a forex pair).
type IndicatorRef struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

type Config struct {
	Telegram struct {
		TokenEnv           string `yaml:"token_env"`
		PollTimeoutSeconds int    `yaml:"poll_timeout_seconds"`
	} `yaml:"telegram"`
	Market struct {
		HistoryMonths  int    `yaml:"history_months"`
		DefaultSuffix  string `yaml:"default_suffix"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"market"`
	News struct {
		MaxHeadlines   int    `yaml:"max_headlines"`
		Language       string `yaml:"language"`
		Country        string `yaml:"country"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"news"`
	Indicators []IndicatorRef `yaml:"indicators"`
}

func (c *Config) Validate() error {
	if c.Telegram.TokenEnv == "" {
		return errors.New("telegram.token_env cannot be empty")
	}
	if c.Telegram.PollTimeoutSeconds <= 0 || c.Telegram.PollTimeoutSeconds > 300 {
		return fmt.Errorf("telegram.poll_timeout_seconds must be between 1-300, got %d", c.Telegram.PollTimeoutSeconds)
	}
	if c.Market.HistoryMonths <= 0 || c.Market.HistoryMonths > 24 {
		return fmt.Errorf("market.history_months must be between 1-24, got %d", c.Market.HistoryMonths)
	}
	if !strings.HasPrefix(c.Market.DefaultSuffix, ".") {
		return fmt.Errorf("market.default_suffix must start with '.', got '%s'", c.Market.DefaultSuffix)
	}
	if c.Market.TimeoutSeconds <= 0 {
		return fmt.Errorf("market.timeout_seconds must be positive, got %d", c.Market.TimeoutSeconds)
	}
	if c.News.MaxHeadlines <= 0 || c.News.MaxHeadlines > 20 {
		return fmt.Errorf("news.max_headlines must be between 1-20, got %d", c.News.MaxHeadlines)
	}
	if c.News.TimeoutSeconds <= 0 {
		return fmt.Errorf("news.timeout_seconds must be positive, got %d", c.News.TimeoutSeconds)
	}
	for i, ref := range c.Indicators {
		if ref.Name == "" || ref.Symbol == "" {
			return fmt.Errorf("indicators[%d]: name and symbol are both required", i)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Telegram.TokenEnv == "" {
		cfg.Telegram.TokenEnv = "TELEGRAM_BOT_TOKEN"
	}
	if cfg.Telegram.PollTimeoutSeconds == 0 {
		cfg.Telegram.PollTimeoutSeconds = 30
	}
	if cfg.Market.HistoryMonths == 0 {
		cfg.Market.HistoryMonths = 6
	}
	if cfg.Market.DefaultSuffix == "" {
		cfg.Market.DefaultSuffix = ".NS"
	}
	if cfg.Market.TimeoutSeconds == 0 {
		cfg.Market.TimeoutSeconds = 30
	}
	if cfg.News.MaxHeadlines == 0 {
		cfg.News.MaxHeadlines = 5
	}
	if cfg.News.Language == "" {
		cfg.News.Language = "en-IN"
	}
	if cfg.News.Country == "" {
		cfg.News.Country = "IN"
	}
	if cfg.News.TimeoutSeconds == 0 {
		cfg.News.TimeoutSeconds = 20
	}
	if len(cfg.Indicators) == 0 {
		cfg.Indicators = []IndicatorRef{
			{Name: "Crude Oil", Symbol: "CL=F"},
			{Name: "USD/INR", Symbol: "USDINR=X"},
		}
	}
}
