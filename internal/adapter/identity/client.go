package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
)

// Provider resolves a provider-issued access token into a viewer identity.
// The provider itself (accounts, passwords, consent screens) is a black box.
type Provider interface {
	Resolve(ctx context.Context, accessToken string) (*model.Viewer, error)
}

// HTTPClient implements Provider against the provider's userinfo endpoint.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the userinfo JSON payload.
type response struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// NewHTTPClient creates an identity client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse identity url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("identity url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Resolve verifies the access token with the provider and returns the viewer.
func (c *HTTPClient) Resolve(ctx context.Context, accessToken string) (*model.Viewer, error) {
	if accessToken == "" {
		return nil, domainErrors.ErrAuth
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/userinfo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrAuth, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		if data.Sub == "" {
			return nil, domainErrors.ErrAuth
		}
		return &model.Viewer{ID: data.Sub, Email: data.Email, Name: data.Name, Photo: data.Picture}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, domainErrors.ErrAuth
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("identity request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrAuth, resp.Status)
	}
}
