package test

import (
	"context"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/feed"
	"github.com/elbekdesign/storefront/internal/pricing"
	"github.com/elbekdesign/storefront/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for session endpoints.
type AuthFacadeStub struct {
	SignInFn       func(context.Context, string) (model.Viewer, string, error)
	AuthenticateFn func(string) (model.Viewer, error)
	OwnerEmail     string
}

// SignIn delegates to the override or returns a default session.
func (s AuthFacadeStub) SignIn(ctx context.Context, providerToken string) (model.Viewer, string, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, providerToken)
	}
	if providerToken == "" {
		return model.Viewer{}, "", domainErrors.ErrAuth
	}
	return model.Viewer{ID: "viewer-1", Email: "viewer@example.com", Name: "Viewer"}, "session-token", nil
}

// Authenticate parses session tokens.
func (s AuthFacadeStub) Authenticate(token string) (model.Viewer, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(token)
	}
	if token == "" {
		return model.Viewer{}, domainErrors.ErrAuth
	}
	return model.Viewer{ID: "viewer-1", Email: "viewer@example.com"}, nil
}

// IsOwner compares against the configured owner email.
func (s AuthFacadeStub) IsOwner(viewer model.Viewer) bool {
	return viewer.Email != "" && viewer.Email == s.OwnerEmail
}

// DraftFacadeStub provides controllable behaviour for wizard endpoints.
type DraftFacadeStub struct {
	DraftFn   func(string) *model.Draft
	UpdateFn  func(string, usecase.DraftChanges) (*model.Draft, error)
	AdvanceFn func(string) (*model.Draft, error)
	RetreatFn func(string) (*model.Draft, error)
	SubmitFn  func(context.Context, model.Viewer) (*model.Order, error)
}

// Draft returns the override result or a fresh draft.
func (s DraftFacadeStub) Draft(viewerID string) *model.Draft {
	if s.DraftFn != nil {
		return s.DraftFn(viewerID)
	}
	return model.NewDraft()
}

// UpdateDraft delegates to the override or echos a fresh draft.
func (s DraftFacadeStub) UpdateDraft(viewerID string, changes usecase.DraftChanges) (*model.Draft, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(viewerID, changes)
	}
	return model.NewDraft(), nil
}

// AdvanceDraft delegates to the override.
func (s DraftFacadeStub) AdvanceDraft(viewerID string) (*model.Draft, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(viewerID)
	}
	d := model.NewDraft()
	d.Step = model.DraftStepDesign
	return d, nil
}

// RetreatDraft delegates to the override.
func (s DraftFacadeStub) RetreatDraft(viewerID string) (*model.Draft, error) {
	if s.RetreatFn != nil {
		return s.RetreatFn(viewerID)
	}
	return model.NewDraft(), nil
}

// DraftQuote prices the draft with the real pricing rules.
func (s DraftFacadeStub) DraftQuote(draft *model.Draft) pricing.Quote {
	return pricing.QuoteFor(draft.DesignType, draft.PromoCode)
}

// SubmitOrder delegates to the override or returns a pending order.
func (s DraftFacadeStub) SubmitOrder(ctx context.Context, viewer model.Viewer) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, viewer)
	}
	return &model.Order{ID: "order-1", ViewerID: viewer.ID, Status: model.OrderStatusPending}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn    func(context.Context, model.Viewer) ([]model.Order, error)
	AllOrdersFn func(context.Context, model.Viewer) ([]model.Order, error)
	OrderFn     func(context.Context, model.Viewer, string) (*model.Order, error)
	SetStatusFn func(context.Context, model.Viewer, string, model.OrderStatus) (*model.Order, error)
}

// Orders returns the viewer's orders.
func (s OrderFacadeStub) Orders(ctx context.Context, viewer model.Viewer) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, viewer)
	}
	return []model.Order{{ID: "order-1", ViewerID: viewer.ID}}, nil
}

// AllOrders returns every order.
func (s OrderFacadeStub) AllOrders(ctx context.Context, viewer model.Viewer) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, viewer)
	}
	return []model.Order{{ID: "order-1"}}, nil
}

// Order returns a single order.
func (s OrderFacadeStub) Order(ctx context.Context, viewer model.Viewer, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, viewer, orderID)
	}
	return &model.Order{ID: orderID, ViewerID: viewer.ID}, nil
}

// SetOrderStatus applies a status transition.
func (s OrderFacadeStub) SetOrderStatus(ctx context.Context, viewer model.Viewer, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, viewer, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// FeedFacadeStub provides controllable behaviour for feed endpoints.
type FeedFacadeStub struct {
	SnapshotFn  func(model.Viewer, feed.Scope) ([]model.Order, error)
	SubscribeFn func(context.Context) (<-chan []model.Order, func())
	OwnerEmail  string
}

// FeedSnapshot returns the filtered feed.
func (s FeedFacadeStub) FeedSnapshot(viewer model.Viewer, scope feed.Scope) ([]model.Order, error) {
	if s.SnapshotFn != nil {
		return s.SnapshotFn(viewer, scope)
	}
	return nil, nil
}

// SubscribeFeed returns a primed single-snapshot subscription.
func (s FeedFacadeStub) SubscribeFeed(ctx context.Context) (<-chan []model.Order, func()) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx)
	}
	ch := make(chan []model.Order, 1)
	ch <- nil
	return ch, func() { close(ch) }
}

// IsOwner compares against the configured owner email.
func (s FeedFacadeStub) IsOwner(viewer model.Viewer) bool {
	return viewer.Email != "" && viewer.Email == s.OwnerEmail
}

// StorefrontFacadeStub aggregates the stub facades for router-level tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	DraftFacadeStub
	OrderFacadeStub
	FeedFacadeStub
}

// IsOwner resolves the embedding ambiguity in favour of the auth stub.
func (s StorefrontFacadeStub) IsOwner(viewer model.Viewer) bool {
	return s.AuthFacadeStub.IsOwner(viewer)
}
