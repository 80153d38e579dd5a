package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
)

type stubIdentityProvider struct {
	resolveFn func(context.Context, string) (*model.Viewer, error)
	viewer    model.Viewer
}

func (s stubIdentityProvider) Resolve(ctx context.Context, accessToken string) (*model.Viewer, error) {
	if s.resolveFn != nil {
		return s.resolveFn(ctx, accessToken)
	}
	viewer := s.viewer
	if viewer.ID == "" {
		viewer = model.Viewer{ID: "viewer-1", Email: "viewer@example.com"}
	}
	return &viewer, nil
}

type stubStrategy struct {
	issueFn func(model.Viewer) (string, error)
	parseFn func(string) (model.Viewer, error)
}

func (s stubStrategy) IssueToken(viewer model.Viewer) (string, error) {
	if s.issueFn != nil {
		return s.issueFn(viewer)
	}
	return "token:" + viewer.ID, nil
}

func (s stubStrategy) ParseToken(token string) (model.Viewer, error) {
	if s.parseFn != nil {
		return s.parseFn(token)
	}
	return model.Viewer{ID: "viewer-1", Email: "viewer@example.com"}, nil
}

func (stubStrategy) Name() string { return "stub" }

func TestAuthSignInIssuesSessionToken(t *testing.T) {
	uc := NewAuthUseCase(
		stubIdentityProvider{viewer: model.Viewer{ID: "viewer-7", Email: "v@example.com"}},
		stubStrategy{},
	)

	viewer, token, err := uc.SignIn(context.Background(), "provider-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viewer.ID != "viewer-7" {
		t.Fatalf("expected resolved viewer, got %q", viewer.ID)
	}
	if token != "token:viewer-7" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthSignInRejectsEmptyToken(t *testing.T) {
	uc := NewAuthUseCase(stubIdentityProvider{}, stubStrategy{})

	if _, _, err := uc.SignIn(context.Background(), ""); !errors.Is(err, domainErrors.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAuthSignInWrapsProviderFailure(t *testing.T) {
	uc := NewAuthUseCase(stubIdentityProvider{
		resolveFn: func(context.Context, string) (*model.Viewer, error) {
			return nil, errors.New("provider unavailable")
		},
	}, stubStrategy{})

	if _, _, err := uc.SignIn(context.Background(), "provider-token"); !errors.Is(err, domainErrors.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAuthAuthenticateMapsParseErrors(t *testing.T) {
	uc := NewAuthUseCase(stubIdentityProvider{}, stubStrategy{
		parseFn: func(string) (model.Viewer, error) {
			return model.Viewer{}, errors.New("bad signature")
		},
	})

	if _, err := uc.Authenticate("broken"); !errors.Is(err, domainErrors.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAuthAuthenticateReturnsViewer(t *testing.T) {
	uc := NewAuthUseCase(stubIdentityProvider{}, stubStrategy{})

	viewer, err := uc.Authenticate("token:viewer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viewer.ID != "viewer-1" {
		t.Fatalf("unexpected viewer %q", viewer.ID)
	}
}
