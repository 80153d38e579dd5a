package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/elbekdesign/storefront/internal/config"
	"github.com/elbekdesign/storefront/internal/server/http/dto"
	"github.com/elbekdesign/storefront/internal/server/http/handlers"
	"github.com/elbekdesign/storefront/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	dto.RegisterValidations()
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	// SSE responses must not be buffered by the gzip writer.
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/orders/stream"})))

	sessionHandler := handlers.NewSessionHandler(facade)
	draftHandler := handlers.NewDraftHandler(facade, cfg.PaymentCard)
	orderHandler := handlers.NewOrderHandler(facade)
	feedHandler := handlers.NewFeedHandler(facade)

	api := engine.Group("/api")
	api.POST("/session", sessionHandler.Create)

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))
	auth.GET("/session", sessionHandler.Current)
	auth.DELETE("/session", sessionHandler.Delete)

	auth.GET("/draft", draftHandler.Get)
	auth.PATCH("/draft", draftHandler.Update)
	auth.POST("/draft/advance", draftHandler.Advance)
	auth.POST("/draft/back", draftHandler.Back)
	auth.POST("/draft/submit", draftHandler.Submit)

	auth.GET("/orders", orderHandler.List)
	auth.GET("/orders/stream", feedHandler.Stream)
	auth.GET("/orders/:id", orderHandler.Get)

	owner := auth.Group("")
	owner.Use(middleware.OwnerRequired(facade))
	owner.GET("/orders/all", orderHandler.ListAll)
	owner.PATCH("/orders/:id/status", orderHandler.SetStatus)

	return engine
}
