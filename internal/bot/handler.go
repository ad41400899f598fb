package bot

import (
	"context"
	"errors"
	"strings"

	"smart-stock-bot/internal/logger"
	"smart-stock-bot/internal/pipeline"
)

const welcomeText = "Welcome to 📈 Smart Stock Bot!\n" +
	"Use /predict SYMBOL\nExamples:\n" +
	"/predict TCS\n/predict USDINR=X\n/predict ^NSEI"

const usageText = "⚠️ Please provide a stock/index/forex symbol. Example: /predict INFY or /predict ^NSEI"

// Predictor is the pipeline entry point the transport layer calls into.
type Predictor interface {
	Predict(ctx context.Context, raw string) (*pipeline.Result, error)
}

// Sender delivers a message to one chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler parses chat commands and renders pipeline results. It holds no
// per-request state; concurrent commands are independent.
type Handler struct {
	predictor Predictor
	sender    Sender
}

func NewHandler(predictor Predictor, sender Sender) *Handler {
	return &Handler{predictor: predictor, sender: sender}
}

// HandleCommand processes one incoming message. Unknown input is ignored.
func (h *Handler) HandleCommand(ctx context.Context, chatID int64, text string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}

	// Commands may be addressed as /predict@BotName in group chats.
	command, _, _ := strings.Cut(fields[0], "@")
	switch command {
	case "/start":
		h.send(ctx, chatID, welcomeText)
	case "/predict":
		if len(fields) < 2 {
			h.send(ctx, chatID, usageText)
			return
		}
		h.predict(ctx, chatID, fields[1])
	}
}

func (h *Handler) predict(ctx context.Context, chatID int64, raw string) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	h.send(ctx, chatID, "⏳ Analyzing "+raw+"...")

	res, err := h.predictor.Predict(ctx, raw)
	if err != nil {
		h.send(ctx, chatID, formatError(raw, err))
		return
	}

	h.send(ctx, chatID, FormatReport(res))
	if len(res.Headlines) > 0 {
		h.send(ctx, chatID, FormatNews(res.Headlines))
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string) {
	if err := h.sender.SendMessage(ctx, chatID, text); err != nil {
		logger.ErrorWithErr(ctx, "Failed to send reply", err, "chat_id", chatID)
	}
}

func formatError(raw string, err error) string {
	var unavailable *pipeline.DataUnavailableError
	if errors.As(err, &unavailable) {
		return "❌ Unable to fetch or process data for " + unavailable.Symbol + "."
	}
	var fcErr *pipeline.ForecastError
	if errors.As(err, &fcErr) {
		return "❌ Error during prediction: " + fcErr.Err.Error()
	}
	return "❌ Error during prediction for " + raw + "."
}
