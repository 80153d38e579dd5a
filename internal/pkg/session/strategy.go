package session

import (
	"time"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

// Strategy issues and verifies session tokens carrying viewer identity.
type Strategy interface {
	IssueToken(viewer model.Viewer) (string, error)
	ParseToken(token string) (model.Viewer, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
