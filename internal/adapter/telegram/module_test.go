package telegram

import (
	"io"
	"log/slog"
	"testing"

	"github.com/elbekdesign/storefront/internal/config"
)

func TestNewNotifierUsesConfig(t *testing.T) {
	cfg := &config.Config{
		TelegramAPIAddress: "http://example.com",
		TelegramBotToken:   "bot-token",
		TelegramChatID:     "chat",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	notifier, err := newNotifier(notifierParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifier == nil {
		t.Fatal("expected notifier instance")
	}
}
