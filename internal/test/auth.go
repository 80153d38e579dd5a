package test

import (
	"context"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
)

// IdentityProviderStub resolves provider tokens via overrides.
type IdentityProviderStub struct {
	ResolveFn func(context.Context, string) (*model.Viewer, error)
	Viewer    model.Viewer
}

// Resolve returns the configured viewer or delegates to the override.
func (s IdentityProviderStub) Resolve(ctx context.Context, accessToken string) (*model.Viewer, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, accessToken)
	}
	if accessToken == "" {
		return nil, domainErrors.ErrAuth
	}
	viewer := s.Viewer
	if viewer.ID == "" {
		viewer = model.Viewer{ID: "viewer-1", Email: "viewer@example.com", Name: "Viewer"}
	}
	return &viewer, nil
}

// StrategyStub issues and parses session tokens via function overrides.
type StrategyStub struct {
	IssueFn func(model.Viewer) (string, error)
	ParseFn func(string) (model.Viewer, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(viewer model.Viewer) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(viewer)
	}
	return "token:" + viewer.ID, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (model.Viewer, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if token == "" {
		return model.Viewer{}, domainErrors.ErrAuth
	}
	return model.Viewer{ID: "viewer-1", Email: "viewer@example.com"}, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// NotifierStub records delivered notification texts.
type NotifierStub struct {
	SendFn func(context.Context, string) error
	Sent   []string
}

// SendText stores the text or delegates to the override.
func (s *NotifierStub) SendText(ctx context.Context, text string) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, text)
	}
	s.Sent = append(s.Sent, text)
	return nil
}
