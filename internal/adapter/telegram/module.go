package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/elbekdesign/storefront/internal/config"
)

// Module exposes the notifier client to the fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) (Notifier, error) {
	return NewClient(p.Config.TelegramAPIAddress, p.Config.TelegramBotToken, p.Config.TelegramChatID, p.Logger)
}
