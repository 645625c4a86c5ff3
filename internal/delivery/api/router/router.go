// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sweetshop/internal/delivery/api/middleware"
	"sweetshop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	SweetHandler     *handler.SweetHandler
	InventoryHandler *handler.InventoryHandler
	ReportHandler    *handler.ReportHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	sweetHandler     *handler.SweetHandler
	inventoryHandler *handler.InventoryHandler
	reportHandler    *handler.ReportHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		sweetHandler:     params.SweetHandler,
		inventoryHandler: params.InventoryHandler,
		reportHandler:    params.ReportHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate
	adminOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin}

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
	}

	// Catalog routes; reads are public, writes require the admin role
	sweetsGroup := api.Group("/sweets")
	{
		sweetsGroup.GET("", r.sweetHandler.ListSweets)
		sweetsGroup.GET("/search", r.sweetHandler.SearchSweets)
		sweetsGroup.GET("/:id", r.sweetHandler.GetSweet)
		sweetsGroup.GET("/:id/qr", r.sweetHandler.GetSweetQRCode)
		sweetsGroup.POST("/scan", r.sweetHandler.ScanSweet)

		sweetsGroup.POST("", r.sweetHandler.CreateSweet, adminOnly...)
		sweetsGroup.PUT("/:id", r.sweetHandler.UpdateSweet, adminOnly...)
		sweetsGroup.DELETE("/:id", r.sweetHandler.DeleteSweet, adminOnly...)

		// Inventory routes
		sweetsGroup.POST("/:id/purchase", r.inventoryHandler.Purchase, authenticated)
		sweetsGroup.POST("/:id/restock", r.inventoryHandler.Restock, adminOnly...)
	}

	// Reporting routes
	api.GET("/purchases/history", r.reportHandler.PurchaseHistory, authenticated)

	adminGroup := api.Group("/admin")
	adminGroup.Use(adminOnly...)
	{
		adminGroup.GET("/restock-history", r.reportHandler.RestockHistory)
	}
}
