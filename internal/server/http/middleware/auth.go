package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
)

const (
	// ViewerContextKey is a gin context key for the authenticated viewer.
	ViewerContextKey = "viewer"
	authCookieName   = "storefront_token"
)

// TokenAuthenticator verifies session tokens.
type TokenAuthenticator interface {
	Authenticate(token string) (model.Viewer, error)
}

// OwnerChecker reports whether a viewer is the site owner.
type OwnerChecker interface {
	IsOwner(viewer model.Viewer) bool
}

// AuthRequired ensures the request carries a valid session token and stores
// the viewer in the gin context.
func AuthRequired(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		viewer, err := auth.Authenticate(token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrAuth) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ViewerContextKey, viewer)
		c.Next()
	}
}

// OwnerRequired restricts the route to the site owner. Must run after
// AuthRequired.
func OwnerRequired(owners OwnerChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ViewerContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		viewer, _ := val.(model.Viewer)
		if !owners.IsOwner(viewer) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
