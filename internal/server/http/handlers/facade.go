package handlers

import (
	"context"

	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/feed"
	"github.com/elbekdesign/storefront/internal/pricing"
	"github.com/elbekdesign/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignIn(ctx context.Context, providerToken string) (model.Viewer, string, error)
	Authenticate(token string) (model.Viewer, error)
	IsOwner(viewer model.Viewer) bool
}

// DraftFacade exposes the order wizard operations.
type DraftFacade interface {
	Draft(viewerID string) *model.Draft
	UpdateDraft(viewerID string, changes usecase.DraftChanges) (*model.Draft, error)
	AdvanceDraft(viewerID string) (*model.Draft, error)
	RetreatDraft(viewerID string) (*model.Draft, error)
	DraftQuote(draft *model.Draft) pricing.Quote
	SubmitOrder(ctx context.Context, viewer model.Viewer) (*model.Order, error)
}

// OrderFacade exposes order reads and status management.
type OrderFacade interface {
	Orders(ctx context.Context, viewer model.Viewer) ([]model.Order, error)
	AllOrders(ctx context.Context, viewer model.Viewer) ([]model.Order, error)
	Order(ctx context.Context, viewer model.Viewer, orderID string) (*model.Order, error)
	SetOrderStatus(ctx context.Context, viewer model.Viewer, orderID string, status model.OrderStatus) (*model.Order, error)
}

// FeedFacade exposes the live order feed.
type FeedFacade interface {
	FeedSnapshot(viewer model.Viewer, scope feed.Scope) ([]model.Order, error)
	SubscribeFeed(ctx context.Context) (<-chan []model.Order, func())
	IsOwner(viewer model.Viewer) bool
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	DraftFacade
	OrderFacade
	FeedFacade
}
