package news

import (
	"context"

	"smart-stock-bot/internal/interfaces"
	"smart-stock-bot/internal/logger"
)

// Scorer turns an instrument's display name into recent headlines and one
// aggregate sentiment score. Feed failures degrade to a neutral score rather
// than surfacing an error.
type Scorer struct {
	feed         interfaces.NewsFeed
	analyzer     interfaces.TextAnalyzer
	maxHeadlines int
}

func NewScorer(feed interfaces.NewsFeed, analyzer interfaces.TextAnalyzer, maxHeadlines int) *Scorer {
	return &Scorer{
		feed:         feed,
		analyzer:     analyzer,
		maxHeadlines: maxHeadlines,
	}
}

// Score fetches up to maxHeadlines recent headlines for "<displayName>
// stock" and returns them with the arithmetic mean of their compound
// scores. An unreachable feed or an empty result yields exactly 0.
func (s *Scorer) Score(ctx context.Context, displayName string) ([]string, float64) {
	headlines, err := s.feed.Headlines(ctx, displayName+" stock", s.maxHeadlines)
	if err != nil {
		logger.Degraded(ctx, "sentiment", displayName, err)
		return nil, 0
	}

	total := 0.0
	scored := 0
	for _, h := range headlines {
		if h == "" {
			continue
		}
		total += s.analyzer.Compound(h)
		scored++
	}
	if scored == 0 {
		return headlines, 0
	}
	return headlines, total / float64(scored)
}
