package identity

import (
	"io"
	"log/slog"
	"testing"

	"github.com/elbekdesign/storefront/internal/config"
)

func TestNewProviderUsesConfig(t *testing.T) {
	cfg := &config.Config{IdentityAddress: "http://example.com"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	provider, err := newProvider(providerParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("expected provider instance")
	}
}
