package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elbekdesign/storefront/internal/config"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/server/http/handlers"
	testhelpers "github.com/elbekdesign/storefront/internal/test"
)

func newTestEngine(facade handlers.StorefrontFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{PaymentCard: "8600 1234 5678 9012"}
	return Setup(facade, cfg, logger)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.StorefrontFacadeStub{}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{"access_token": "provider-token"})
	req := httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for session create, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/draft", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for draft, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}
}

func TestSetupRequiresAuth(t *testing.T) {
	engine := newTestEngine(testhelpers.StorefrontFacadeStub{})

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/draft"},
		{http.MethodPost, "/api/draft/submit"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/orders/all"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", route.method, route.path, resp.Code)
		}
	}
}

func TestSetupOwnerRoutesForbiddenForViewers(t *testing.T) {
	engine := newTestEngine(testhelpers.StorefrontFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/all", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.Code)
	}
}

func TestSetupOwnerRoutesAllowOwner(t *testing.T) {
	facade := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			AuthenticateFn: func(string) (model.Viewer, error) {
				return model.Viewer{ID: "owner", Email: "owner@example.com"}, nil
			},
			OwnerEmail: "owner@example.com",
		},
	}
	engine := newTestEngine(facade)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/all", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"status": "CHECKING"})
	req = httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/status", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for status update, got %d", resp.Code)
	}
}

func TestSetupStatusBindingRejectsUnknownValue(t *testing.T) {
	facade := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			AuthenticateFn: func(string) (model.Viewer, error) {
				return model.Viewer{ID: "owner", Email: "owner@example.com"}, nil
			},
			OwnerEmail: "owner@example.com",
		},
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			SetStatusFn: func(context.Context, model.Viewer, string, model.OrderStatus) (*model.Order, error) {
				t.Fatal("facade must not be called for invalid status")
				return nil, nil
			},
		},
	}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{"status": "ARCHIVED"})
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1/status", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
