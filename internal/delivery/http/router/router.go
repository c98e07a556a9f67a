// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"squareone/internal/delivery/http/middleware"
	"squareone/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	BrandHandler        *handler.BrandHandler
	AdHandler           *handler.AdHandler
	EventHandler        *handler.EventHandler
	SupportHandler      *handler.SupportHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Everything
// except the health check and login requires a session token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	api := e.Group("", r.params.AuthMiddleware.Authenticate)

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.params.AuthHandler.Profile)
		profileGroup.PUT("", r.params.AuthHandler.UpdateProfile)
	}

	brandGroup := api.Group("/brands")
	{
		brandGroup.GET("", r.params.BrandHandler.ListBrands)
		brandGroup.POST("", r.params.BrandHandler.CreateBrand)
		brandGroup.GET("/:brand", r.params.BrandHandler.GetBrand)
		brandGroup.PUT("/:brand", r.params.BrandHandler.UpdateBrand)
		brandGroup.DELETE("/:brand", r.params.BrandHandler.DeleteBrand)

		brandGroup.POST("/:brand/deals", r.params.BrandHandler.CreateDeal)
		brandGroup.GET("/:brand/deals/:deal", r.params.BrandHandler.GetDeal)
		brandGroup.PUT("/:brand/deals/:deal", r.params.BrandHandler.UpdateDeal)
		brandGroup.DELETE("/:brand/deals/:deal", r.params.BrandHandler.DeleteDeal)
	}

	adGroup := api.Group("/ads")
	{
		adGroup.GET("", r.params.AdHandler.ListAds)
		adGroup.POST("", r.params.AdHandler.CreateAd)
		adGroup.GET("/:id", r.params.AdHandler.GetAd)
		adGroup.DELETE("/:id", r.params.AdHandler.DeleteAd)
	}

	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", r.params.EventHandler.ListEvents)
		eventGroup.POST("", r.params.EventHandler.CreateEvent)
		eventGroup.GET("/:id", r.params.EventHandler.GetEvent)
		eventGroup.PUT("/:id", r.params.EventHandler.UpdateEvent)
		eventGroup.DELETE("/:id", r.params.EventHandler.DeleteEvent)
	}

	api.GET("/users", r.params.AuthHandler.ListUsers)

	supportGroup := api.Group("/support")
	{
		supportGroup.GET("", r.params.SupportHandler.ListMessages)
		supportGroup.PUT("/:id/resolve", r.params.SupportHandler.Resolve)
	}

	api.POST("/notifications", r.params.NotificationHandler.Broadcast)

	api.GET("/dashboard/overview", r.params.AnalyticsHandler.Overview)
}
