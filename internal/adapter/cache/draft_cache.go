package cache

import (
	"sync"

	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/domain/repository"
)

// MemoryDraftStore holds in-progress drafts keyed by viewer ID. Callers only
// ever see copies; the stored draft changes exclusively inside Update, under
// the lock.
type MemoryDraftStore struct {
	mu    sync.RWMutex
	store map[string]*model.Draft
}

// NewMemoryDraftStore constructs an empty store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{store: make(map[string]*model.Draft)}
}

func (c *MemoryDraftStore) Get(viewerID string) (*model.Draft, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.store[viewerID]
	if !ok {
		return nil, false
	}
	snapshot := *d
	return &snapshot, true
}

// Update applies mutate to the viewer's draft as one atomic step, creating a
// fresh draft when none exists. mutate works on a scratch copy; an error
// leaves the stored draft untouched.
func (c *MemoryDraftStore) Update(viewerID string, mutate func(*model.Draft) error) (*model.Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	work := model.NewDraft()
	if current, ok := c.store[viewerID]; ok {
		copied := *current
		work = &copied
	}
	if err := mutate(work); err != nil {
		return nil, err
	}
	c.store[viewerID] = work

	snapshot := *work
	return &snapshot, nil
}

func (c *MemoryDraftStore) Delete(viewerID string) {
	c.mu.Lock()
	delete(c.store, viewerID)
	c.mu.Unlock()
}

var _ repository.DraftStore = (*MemoryDraftStore)(nil)
