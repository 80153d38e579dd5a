package repository

import "github.com/elbekdesign/storefront/internal/domain/model"

// DraftStore keeps per-viewer drafts for the duration of a session. Drafts
// are mutated only through Update, which runs the whole read-modify-write
// atomically; returned drafts are private copies.
type DraftStore interface {
	Get(viewerID string) (*model.Draft, bool)
	Update(viewerID string, mutate func(*model.Draft) error) (*model.Draft, error)
	Delete(viewerID string)
}
