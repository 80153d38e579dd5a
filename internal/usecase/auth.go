package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/pkg/session"
)

// IdentityProvider resolves a provider-issued access token into a viewer
// profile.
type IdentityProvider interface {
	Resolve(ctx context.Context, accessToken string) (*model.Viewer, error)
}

// AuthUseCase exchanges provider tokens for local session tokens.
type AuthUseCase struct {
	provider IdentityProvider
	tokens   session.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(provider IdentityProvider, tokens session.Strategy) *AuthUseCase {
	return &AuthUseCase{provider: provider, tokens: tokens}
}

// SignIn verifies the provider token and issues a session token carrying the
// viewer profile.
func (u *AuthUseCase) SignIn(ctx context.Context, providerToken string) (model.Viewer, string, error) {
	if providerToken == "" {
		return model.Viewer{}, "", domainErrors.ErrAuth
	}

	viewer, err := u.provider.Resolve(ctx, providerToken)
	if err != nil {
		return model.Viewer{}, "", fmt.Errorf("%w: %w", domainErrors.ErrAuth, err)
	}

	token, err := u.tokens.IssueToken(*viewer)
	if err != nil {
		return model.Viewer{}, "", fmt.Errorf("%w: %w", domainErrors.ErrAuth, err)
	}
	return *viewer, token, nil
}

// Authenticate parses and verifies a session token.
func (u *AuthUseCase) Authenticate(token string) (model.Viewer, error) {
	viewer, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Viewer{}, fmt.Errorf("%w: %w", domainErrors.ErrAuth, err)
	}
	return viewer, nil
}
