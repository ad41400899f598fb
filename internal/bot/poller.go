package bot

import (
	"context"
	"time"

	"smart-stock-bot/internal/logger"
)

// Poller long-polls Telegram for commands and dispatches each one on its own
// goroutine. Requests share no mutable state, so concurrent commands from
// different chats are independent.
type Poller struct {
	client  *Client
	handler *Handler
}

func NewPoller(client *Client, handler *Handler) *Poller {
	return &Poller{client: client, handler: handler}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	offset := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Telegram polling stopped")
			return
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn(ctx, "Polling request failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			msg := update.Message
			logger.Info(ctx, "Command received", "chat_id", msg.Chat.ID, "text", msg.Text)
			go p.handler.HandleCommand(ctx, msg.Chat.ID, msg.Text)
		}
	}
}
