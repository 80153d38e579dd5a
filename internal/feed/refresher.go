package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elbekdesign/storefront/internal/domain/repository"
)

// Refresher reloads the full snapshot from storage on an interval, in
// addition to the reloads triggered directly after writes. The interval
// reload picks up writes made by other replicas.
type Refresher struct {
	orders   repository.OrderRepository
	hub      *Hub
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRefresher constructs a refresher for the hub.
func NewRefresher(orders repository.OrderRepository, hub *Hub, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{orders: orders, hub: hub, interval: interval, logger: logger}
}

// Refresh loads all orders and replaces the hub snapshot.
func (r *Refresher) Refresh(ctx context.Context) error {
	orders, err := r.orders.ListAll(ctx)
	if err != nil {
		return err
	}
	r.hub.Replace(orders)
	return nil
}

// Start launches periodic background refreshes.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop waits for the background loop to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Refresher) run(ctx context.Context) {
	defer r.wg.Done()

	if err := r.Refresh(ctx); err != nil {
		r.logger.Error("initial feed refresh failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				r.logger.Error("feed refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}
