package usecase

import (
	"go.uber.org/fx"

	"github.com/elbekdesign/storefront/internal/adapter/identity"
	"github.com/elbekdesign/storefront/internal/config"
	"github.com/elbekdesign/storefront/internal/domain/repository"
	"github.com/elbekdesign/storefront/internal/pkg/session"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewDraftUseCase,
	func(provider identity.Provider, tokens session.Strategy) *AuthUseCase {
		return NewAuthUseCase(provider, tokens)
	},
	func(orders repository.OrderRepository, cfg *config.Config) *OrderUseCase {
		return NewOrderUseCase(orders, cfg.OwnerEmail)
	},
)
