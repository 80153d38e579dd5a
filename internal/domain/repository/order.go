package repository

import (
	"context"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with commission orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByViewer(ctx context.Context, viewerID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}
