package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Update is a single long-poll result from the Telegram Bot API.
type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	Text string `json:"text"`
	Chat Chat   `json:"chat"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// Client talks to the Telegram Bot API.
type Client struct {
	token       string
	pollTimeout int
	api         *resty.Client
}

func NewClient(token string, pollTimeoutSeconds int) *Client {
	api := resty.New()
	// Long-poll responses arrive up to pollTimeout later; leave headroom.
	api.SetTimeout(time.Duration(pollTimeoutSeconds+10) * time.Second)
	return &Client{
		token:       token,
		pollTimeout: pollTimeoutSeconds,
		api:         api,
	}
}

func (c *Client) url(method string) string {
	return fmt.Sprintf("https://api.telegram.org/bot%s/%s", c.token, method)
}

// SendMessage delivers text to one chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	resp, err := c.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"chat_id": chatID,
			"text":    text,
		}).
		Post(c.url("sendMessage"))
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram send: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// GetUpdates long-polls for new updates past offset.
func (c *Client) GetUpdates(ctx context.Context, offset int) ([]Update, error) {
	resp, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("offset", fmt.Sprintf("%d", offset)).
		SetQueryParam("timeout", fmt.Sprintf("%d", c.pollTimeout)).
		Get(c.url("getUpdates"))
	if err != nil {
		return nil, fmt.Errorf("telegram poll: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("telegram poll: status %d", resp.StatusCode())
	}

	var result struct {
		OK     bool     `json:"ok"`
		Result []Update `json:"result"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("telegram poll decode: %w", err)
	}
	if !result.OK {
		return nil, fmt.Errorf("telegram poll: api returned ok=false")
	}
	return result.Result, nil
}
