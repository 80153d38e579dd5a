package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
)

// StatusUpdateCall records a single UpdateStatus invocation.
type StatusUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// OrderRepositoryStub stores orders in-memory and lets tests override any
// operation.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) error
	GetByIDFn      func(context.Context, string) (*model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	ListByViewerFn func(context.Context, string) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error

	mu          sync.Mutex
	Orders      map[string]*model.Order
	UpdateCalls []StatusUpdateCall
}

// NewOrderRepositoryStub constructs a stub with an initialized store.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Create stores the order unless the id is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	if _, exists := s.Orders[order.ID]; exists {
		return domainErrors.ErrSubmission
	}
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

// GetByID fetches a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored order, newest first.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.list(func(*model.Order) bool { return true }), nil
}

// ListByViewer returns the viewer's orders, newest first.
func (s *OrderRepositoryStub) ListByViewer(ctx context.Context, viewerID string) ([]model.Order, error) {
	if s.ListByViewerFn != nil {
		return s.ListByViewerFn(ctx, viewerID)
	}
	return s.list(func(o *model.Order) bool { return o.ViewerID == viewerID }), nil
}

// UpdateStatus records the call and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: id, Status: status})
	return nil
}

func (s *OrderRepositoryStub) list(keep func(*model.Order) bool) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.Orders))
	for _, order := range s.Orders {
		if keep(order) {
			out = append(out, *order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}
