package feed

import (
	"context"
	"sort"
	"sync"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

// Scope selects which orders a viewer sees in the feed.
type Scope string

const (
	// ScopeOwn limits the feed to the caller's own orders.
	ScopeOwn Scope = "own"
	// ScopeAll is the unfiltered feed; the HTTP layer only offers it to the
	// owner.
	ScopeAll Scope = "all"
)

// Hub holds the latest full order snapshot and fans replacements out to
// subscribers. Every delivery is a complete snapshot, never a diff; a new
// snapshot atomically replaces the previous one.
type Hub struct {
	mu       sync.RWMutex
	snapshot []model.Order
	subs     map[int]chan []model.Order
	nextID   int
}

// NewHub constructs an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan []model.Order)}
}

// Replace installs orders as the current snapshot and notifies subscribers.
// Descending creation-time order is recomputed here on every delivery rather
// than maintained incrementally.
func (h *Hub) Replace(orders []model.Order) {
	snap := make([]model.Order, len(orders))
	copy(snap, orders)
	sort.SliceStable(snap, func(i, j int) bool {
		return snap[i].CreatedAt > snap[j].CreatedAt
	})

	h.mu.Lock()
	h.snapshot = snap
	for _, ch := range h.subs {
		// A slow subscriber only ever misses intermediate snapshots; the
		// pending one is swapped for the latest.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
	h.mu.Unlock()
}

// Snapshot returns a copy of the current snapshot.
func (h *Hub) Snapshot() []model.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]model.Order, len(h.snapshot))
	copy(out, h.snapshot)
	return out
}

// Subscribe registers a subscriber primed with the current snapshot. The
// channel is closed when ctx is done or cancel is called.
func (h *Hub) Subscribe(ctx context.Context) (<-chan []model.Order, func()) {
	ch := make(chan []model.Order, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	ch <- h.snapshot
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel
}

// VisibleTo filters snapshot for the viewer. Own scope never yields a foreign
// order; All returns the snapshot as is.
func VisibleTo(snapshot []model.Order, viewer model.Viewer, scope Scope) []model.Order {
	if scope == ScopeAll {
		return snapshot
	}
	own := make([]model.Order, 0, len(snapshot))
	for _, o := range snapshot {
		if o.ViewerID == viewer.ID {
			own = append(own, o)
		}
	}
	return own
}
