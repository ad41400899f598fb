package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"smart-stock-bot/internal/logger"
)

const googleNewsRSS = "https://news.google.com/rss/search"

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// GoogleNewsFeed fetches headlines from the Google News RSS search endpoint.
// Results come back newest first; nothing is cached between calls.
type GoogleNewsFeed struct {
	client   *resty.Client
	language string
	country  string
}

func NewGoogleNewsFeed(language, country string, timeout time.Duration) *GoogleNewsFeed {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	return &GoogleNewsFeed{
		client:   client,
		language: language,
		country:  country,
	}
}

// Headlines returns up to limit headline strings for query, in feed order.
func (f *GoogleNewsFeed) Headlines(ctx context.Context, query string, limit int) ([]string, error) {
	u := fmt.Sprintf("%s?q=%s&hl=%s&gl=%s&ceid=%s:en",
		googleNewsRSS, url.QueryEscape(query), f.language, f.country, f.country)

	resp, err := f.client.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("google news: status %d", resp.StatusCode())
	}

	headlines, err := parseFeed(resp.Body(), limit)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "Headlines fetched", "query", query, "count", len(headlines))
	return headlines, nil
}

// parseFeed extracts up to limit non-empty headlines from an RSS document.
// Item titles are plain text; when a title is missing the description is
// used instead, with its embedded HTML stripped.
func parseFeed(body []byte, limit int) ([]string, error) {
	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("google news decode: %w", err)
	}

	headlines := make([]string, 0, limit)
	for _, item := range feed.Channel.Items {
		if len(headlines) >= limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = htmlText(item.Description)
		}
		if title == "" {
			continue
		}
		headlines = append(headlines, title)
	}
	return headlines, nil
}

func htmlText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}
