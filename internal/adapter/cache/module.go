package cache

import (
	"go.uber.org/fx"

	"github.com/elbekdesign/storefront/internal/domain/repository"
)

// Module provides the in-memory draft store.
var Module = fx.Provide(func() repository.DraftStore { return NewMemoryDraftStore() })
