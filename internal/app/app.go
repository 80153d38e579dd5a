package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/elbekdesign/storefront/internal/adapter/telegram"
	"github.com/elbekdesign/storefront/internal/config"
	"github.com/elbekdesign/storefront/internal/domain/repository"
	"github.com/elbekdesign/storefront/internal/feed"
	"github.com/elbekdesign/storefront/internal/usecase"
	"github.com/elbekdesign/storefront/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newFacade,
		newHTTPServer,
		newDispatcher,
		newRefresher,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Notifier telegram.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newDispatcher(p dispatcherParams) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(
		p.Notifier,
		p.Config.NotifyQueueSize,
		p.Config.NotifyMaxAttempts,
		p.Config.NotifyRetryDelay,
		p.Logger,
	)
}

type refresherParams struct {
	fx.In

	Orders repository.OrderRepository
	Hub    *feed.Hub
	Config *config.Config
	Logger *slog.Logger
}

func newRefresher(p refresherParams) *feed.Refresher {
	return feed.NewRefresher(p.Orders, p.Hub, p.Config.FeedRefreshInterval, p.Logger)
}

type facadeParams struct {
	fx.In

	Auth       *usecase.AuthUseCase
	Drafts     *usecase.DraftUseCase
	Orders     *usecase.OrderUseCase
	Hub        *feed.Hub
	Refresher  *feed.Refresher
	Dispatcher *worker.NotificationDispatcher
	Logger     *slog.Logger
}

func newFacade(p facadeParams) *StorefrontFacade {
	return NewStorefrontFacade(p.Auth, p.Drafts, p.Orders, p.Hub, p.Refresher, p.Dispatcher, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.NotificationDispatcher
	Refresher  *feed.Refresher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting storefront", slog.String("addr", p.Server.Addr))
			p.Dispatcher.Start(ctx)
			p.Refresher.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Refresher.Stop()
			p.Dispatcher.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("storefront stopped")
			return nil
		},
	})
}
