package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/domain/repository"
	"github.com/elbekdesign/storefront/internal/pricing"
)

// statusTransitions enumerates the allowed order status walks. Status never
// moves backward.
var statusTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:  {model.OrderStatusChecking, model.OrderStatusConfirmed},
	model.OrderStatusChecking: {model.OrderStatusConfirmed},
}

// OrderUseCase covers submission, status management and durable reads.
type OrderUseCase struct {
	orders     repository.OrderRepository
	ownerEmail string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, ownerEmail string) *OrderUseCase {
	return &OrderUseCase{orders: orders, ownerEmail: ownerEmail}
}

// IsOwner reports whether the viewer is the site owner.
func (u *OrderUseCase) IsOwner(viewer model.Viewer) bool {
	return viewer.Email != "" && viewer.Email == u.ownerEmail
}

// Submit freezes a validated draft into an immutable order record and
// persists it. The price is recomputed server-side at submit time.
func (u *OrderUseCase) Submit(ctx context.Context, viewer model.Viewer, draft *model.Draft) (*model.Order, error) {
	if viewer.ID == "" || !draft.Consent {
		return nil, domainErrors.ErrValidation
	}

	quote := pricing.QuoteFor(draft.DesignType, draft.PromoCode)

	order := &model.Order{
		ID:             uuid.NewString(),
		ViewerID:       viewer.ID,
		ViewerEmail:    viewer.Email,
		ViewerName:     viewer.Name,
		ViewerPhoto:    viewer.Photo,
		FirstName:      draft.FirstName,
		LastName:       draft.LastName,
		Gender:         draft.Gender,
		Phone:          draft.Phone,
		TelegramHandle: draft.TelegramHandle,
		DesignType:     draft.DesignType,
		Game:           draft.Game,
		Message:        draft.Message,
		TotalPrice:     quote.Total,
		PromoCode:      draft.PromoCode,
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Now().UnixMilli(),
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrSubmission, err)
	}
	return order, nil
}

// SetStatus moves an order to a new status. Only the owner may call it and
// only forward transitions are accepted.
func (u *OrderUseCase) SetStatus(ctx context.Context, viewer model.Viewer, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !u.IsOwner(viewer) {
		return nil, domainErrors.ErrForbidden
	}
	if !status.Valid() {
		return nil, domainErrors.ErrValidation
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrUpdate, err)
	}

	if !transitionAllowed(order.Status, status) {
		return nil, domainErrors.ErrInvalidTransition
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrUpdate, err)
	}

	order.Status = status
	return order, nil
}

// ListOwn returns the viewer's orders, newest first.
func (u *OrderUseCase) ListOwn(ctx context.Context, viewer model.Viewer) ([]model.Order, error) {
	return u.orders.ListByViewer(ctx, viewer.ID)
}

// ListAll returns every order, newest first. Owner only.
func (u *OrderUseCase) ListAll(ctx context.Context, viewer model.Viewer) ([]model.Order, error) {
	if !u.IsOwner(viewer) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.ListAll(ctx)
}

// Get returns a single order, visible to its author and the owner.
func (u *OrderUseCase) Get(ctx context.Context, viewer model.Viewer, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ViewerID != viewer.ID && !u.IsOwner(viewer) {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

func transitionAllowed(from, to model.OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
