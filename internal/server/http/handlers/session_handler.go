package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/server/http/dto"
	"github.com/elbekdesign/storefront/internal/server/http/middleware"
)

// SessionHandler exchanges provider tokens for local sessions.
type SessionHandler struct {
	facade AuthFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade AuthFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Create handles POST /api/session.
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	viewer, token, err := h.facade.SignIn(c.Request.Context(), req.AccessToken)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAuth) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:  token,
		Viewer: h.toViewerResponse(viewer),
	})
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, h.toViewerResponse(CurrentViewer(c)))
}

// Delete handles DELETE /api/session.
func (h *SessionHandler) Delete(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) toViewerResponse(viewer model.Viewer) dto.ViewerResponse {
	return dto.ViewerResponse{
		ID:    viewer.ID,
		Email: viewer.Email,
		Name:  viewer.Name,
		Photo: viewer.Photo,
		Owner: h.facade.IsOwner(viewer),
	}
}
