package app

import (
	"context"
	"log/slog"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/feed"
	"github.com/elbekdesign/storefront/internal/pricing"
	"github.com/elbekdesign/storefront/internal/usecase"
)

// NotificationQueue accepts notification texts for background delivery.
type NotificationQueue interface {
	Enqueue(text string)
}

// FeedRefresh reloads the feed snapshot from storage.
type FeedRefresh interface {
	Refresh(ctx context.Context) error
}

// StorefrontFacade is the application surface the HTTP layer talks to. It
// orchestrates the use cases and keeps side effects (notification, feed
// reload) out of the request-critical path.
type StorefrontFacade struct {
	auth          *usecase.AuthUseCase
	drafts        *usecase.DraftUseCase
	orders        *usecase.OrderUseCase
	hub           *feed.Hub
	refresh       FeedRefresh
	notifications NotificationQueue
	logger        *slog.Logger
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	drafts *usecase.DraftUseCase,
	orders *usecase.OrderUseCase,
	hub *feed.Hub,
	refresh FeedRefresh,
	notifications NotificationQueue,
	logger *slog.Logger,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:          auth,
		drafts:        drafts,
		orders:        orders,
		hub:           hub,
		refresh:       refresh,
		notifications: notifications,
		logger:        logger,
	}
}

// SignIn exchanges a provider token for a viewer profile and session token.
func (f *StorefrontFacade) SignIn(ctx context.Context, providerToken string) (model.Viewer, string, error) {
	return f.auth.SignIn(ctx, providerToken)
}

// Authenticate verifies a session token.
func (f *StorefrontFacade) Authenticate(token string) (model.Viewer, error) {
	return f.auth.Authenticate(token)
}

// IsOwner reports whether the viewer is the site owner.
func (f *StorefrontFacade) IsOwner(viewer model.Viewer) bool {
	return f.orders.IsOwner(viewer)
}

// Draft returns the viewer's current draft, creating one on first access.
func (f *StorefrontFacade) Draft(viewerID string) *model.Draft {
	return f.drafts.Get(viewerID)
}

// UpdateDraft applies a partial update to the viewer's draft.
func (f *StorefrontFacade) UpdateDraft(viewerID string, changes usecase.DraftChanges) (*model.Draft, error) {
	return f.drafts.Update(viewerID, changes)
}

// AdvanceDraft moves the draft one step forward.
func (f *StorefrontFacade) AdvanceDraft(viewerID string) (*model.Draft, error) {
	return f.drafts.Advance(viewerID)
}

// RetreatDraft moves the draft one step back.
func (f *StorefrontFacade) RetreatDraft(viewerID string) (*model.Draft, error) {
	return f.drafts.Back(viewerID)
}

// DraftQuote prices the draft's current category and promo code.
func (f *StorefrontFacade) DraftQuote(draft *model.Draft) pricing.Quote {
	return f.drafts.Quote(draft)
}

// SubmitOrder freezes the draft into a persisted order. Durable persistence
// decides the outcome; notification and feed reload happen afterwards and
// cannot fail the submission.
func (f *StorefrontFacade) SubmitOrder(ctx context.Context, viewer model.Viewer) (*model.Order, error) {
	draft, err := f.drafts.BeginSubmit(viewer.ID)
	if err != nil {
		return nil, err
	}

	order, err := f.orders.Submit(ctx, viewer, draft)
	if err != nil {
		f.drafts.FinishSubmit(viewer.ID, false)
		return nil, err
	}
	f.drafts.FinishSubmit(viewer.ID, true)

	f.notifications.Enqueue(usecase.OrderNotification(order))
	f.reloadFeed(ctx)
	return order, nil
}

// Orders returns the viewer's own orders, newest first.
func (f *StorefrontFacade) Orders(ctx context.Context, viewer model.Viewer) ([]model.Order, error) {
	return f.orders.ListOwn(ctx, viewer)
}

// AllOrders returns every order. Owner only.
func (f *StorefrontFacade) AllOrders(ctx context.Context, viewer model.Viewer) ([]model.Order, error) {
	return f.orders.ListAll(ctx, viewer)
}

// Order returns a single order visible to the viewer.
func (f *StorefrontFacade) Order(ctx context.Context, viewer model.Viewer, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, viewer, orderID)
}

// SetOrderStatus applies a forward status transition and reloads the feed.
func (f *StorefrontFacade) SetOrderStatus(ctx context.Context, viewer model.Viewer, orderID string, status model.OrderStatus) (*model.Order, error) {
	order, err := f.orders.SetStatus(ctx, viewer, orderID, status)
	if err != nil {
		return nil, err
	}
	f.reloadFeed(ctx)
	return order, nil
}

// FeedSnapshot returns the current feed filtered for the viewer. The All
// scope is restricted to the owner.
func (f *StorefrontFacade) FeedSnapshot(viewer model.Viewer, scope feed.Scope) ([]model.Order, error) {
	if scope == feed.ScopeAll && !f.orders.IsOwner(viewer) {
		return nil, domainErrors.ErrForbidden
	}
	return feed.VisibleTo(f.hub.Snapshot(), viewer, scope), nil
}

// SubscribeFeed registers a live feed subscription primed with the current
// snapshot. Deliveries are raw snapshots; callers filter per viewer.
func (f *StorefrontFacade) SubscribeFeed(ctx context.Context) (<-chan []model.Order, func()) {
	return f.hub.Subscribe(ctx)
}

func (f *StorefrontFacade) reloadFeed(ctx context.Context) {
	if err := f.refresh.Refresh(ctx); err != nil {
		f.logger.Error("feed reload after write failed", slog.String("error", err.Error()))
	}
}
