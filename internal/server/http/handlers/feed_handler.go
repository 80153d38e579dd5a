package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elbekdesign/storefront/internal/feed"
)

// FeedHandler streams full order snapshots over server-sent events. Every
// event carries a complete snapshot filtered for the subscriber, never a
// diff.
type FeedHandler struct {
	facade FeedFacade
}

// NewFeedHandler constructs FeedHandler.
func NewFeedHandler(facade FeedFacade) *FeedHandler {
	return &FeedHandler{facade: facade}
}

// Stream handles GET /api/orders/stream.
func (h *FeedHandler) Stream(c *gin.Context) {
	viewer := CurrentViewer(c)
	scope := feed.ScopeOwn
	if h.facade.IsOwner(viewer) && c.Query("scope") == string(feed.ScopeAll) {
		scope = feed.ScopeAll
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	snapshots, unsubscribe := h.facade.SubscribeFeed(ctx)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, open := <-snapshots:
			if !open {
				return
			}
			visible := feed.VisibleTo(snapshot, viewer, scope)
			payload, err := json.Marshal(toOrderResponses(visible))
			if err != nil {
				return
			}
			fmt.Fprintf(c.Writer, "event: orders\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
