package di

import (
	"go.uber.org/fx"

	"github.com/elbekdesign/storefront/internal/adapter/cache"
	"github.com/elbekdesign/storefront/internal/adapter/identity"
	"github.com/elbekdesign/storefront/internal/adapter/telegram"
	"github.com/elbekdesign/storefront/internal/app"
	"github.com/elbekdesign/storefront/internal/config"
	"github.com/elbekdesign/storefront/internal/feed"
	"github.com/elbekdesign/storefront/internal/logger"
	"github.com/elbekdesign/storefront/internal/pkg/session"
	"github.com/elbekdesign/storefront/internal/server/http/handlers"
	"github.com/elbekdesign/storefront/internal/server/http/router"
	"github.com/elbekdesign/storefront/internal/storage/postgres"
	"github.com/elbekdesign/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		cache.Module,
		postgres.Module,
		identity.Module,
		telegram.Module,
		feed.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
