package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart-stock-bot/internal/pipeline"
)

type fakePredictor struct {
	res  *pipeline.Result
	err  error
	raws []string
}

func (f *fakePredictor) Predict(_ context.Context, raw string) (*pipeline.Result, error) {
	f.raws = append(f.raws, raw)
	return f.res, f.err
}

type fakeSender struct {
	chatIDs []int64
	texts   []string
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.texts = append(f.texts, text)
	return nil
}

func TestHandleStart(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(&fakePredictor{}, sender)

	h.HandleCommand(context.Background(), 42, "/start")

	if len(sender.texts) != 1 || sender.texts[0] != welcomeText {
		t.Fatalf("unexpected replies: %v", sender.texts)
	}
	if sender.chatIDs[0] != 42 {
		t.Errorf("reply went to chat %d, want 42", sender.chatIDs[0])
	}
}

func TestHandlePredictWithoutSymbol(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(&fakePredictor{}, sender)

	h.HandleCommand(context.Background(), 1, "/predict")

	if len(sender.texts) != 1 || sender.texts[0] != usageText {
		t.Fatalf("unexpected replies: %v", sender.texts)
	}
}

func TestHandlePredictSuccess(t *testing.T) {
	predictor := &fakePredictor{res: fullResult()}
	sender := &fakeSender{}
	h := NewHandler(predictor, sender)

	h.HandleCommand(context.Background(), 7, "/predict infy")

	if len(predictor.raws) != 1 || predictor.raws[0] != "INFY" {
		t.Fatalf("predictor called with %v, want [INFY]", predictor.raws)
	}
	if len(sender.texts) != 3 {
		t.Fatalf("got %d replies, want 3 (ack, report, news)", len(sender.texts))
	}
	if sender.texts[0] != "⏳ Analyzing INFY..." {
		t.Errorf("unexpected ack: %q", sender.texts[0])
	}
	if !strings.Contains(sender.texts[1], "📊 Prediction for INFY") {
		t.Errorf("second reply is not the report: %q", sender.texts[1])
	}
	if !strings.HasPrefix(sender.texts[2], "📰 News:") {
		t.Errorf("third reply is not the news: %q", sender.texts[2])
	}
}

func TestHandlePredictNoHeadlinesSkipsNews(t *testing.T) {
	res := fullResult()
	res.Headlines = nil
	sender := &fakeSender{}
	h := NewHandler(&fakePredictor{res: res}, sender)

	h.HandleCommand(context.Background(), 7, "/predict INFY")

	if len(sender.texts) != 2 {
		t.Fatalf("got %d replies, want 2 (ack, report)", len(sender.texts))
	}
}

func TestHandlePredictDataUnavailable(t *testing.T) {
	predictor := &fakePredictor{err: &pipeline.DataUnavailableError{Symbol: "XYZ"}}
	sender := &fakeSender{}
	h := NewHandler(predictor, sender)

	h.HandleCommand(context.Background(), 7, "/predict XYZ")

	last := sender.texts[len(sender.texts)-1]
	if last != "❌ Unable to fetch or process data for XYZ." {
		t.Errorf("unexpected error reply: %q", last)
	}
}

func TestHandlePredictForecastError(t *testing.T) {
	predictor := &fakePredictor{err: &pipeline.ForecastError{Symbol: "XYZ", Err: errors.New("degenerate series")}}
	sender := &fakeSender{}
	h := NewHandler(predictor, sender)

	h.HandleCommand(context.Background(), 7, "/predict XYZ")

	last := sender.texts[len(sender.texts)-1]
	if !strings.Contains(last, "❌ Error during prediction: degenerate series") {
		t.Errorf("unexpected error reply: %q", last)
	}
}

func TestHandleCommandWithBotMention(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(&fakePredictor{}, sender)

	h.HandleCommand(context.Background(), 3, "/start@SmartStockBot")

	if len(sender.texts) != 1 || sender.texts[0] != welcomeText {
		t.Fatalf("mention-addressed command not handled: %v", sender.texts)
	}
}

func TestHandleCommandIgnoresChatter(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(&fakePredictor{}, sender)

	h.HandleCommand(context.Background(), 3, "hello there")
	h.HandleCommand(context.Background(), 3, "   ")

	if len(sender.texts) != 0 {
		t.Fatalf("plain chatter should be ignored, got %v", sender.texts)
	}
}
