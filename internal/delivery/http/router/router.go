// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/DiegoG0477/koru-api/internal/delivery/http/middleware"
	"github.com/DiegoG0477/koru-api/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects the handlers and middlewares injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BusinessHandler *handler.BusinessHandler
	UserHandler     *handler.UserHandler
	LocationHandler *handler.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	businessHandler *handler.BusinessHandler
	userHandler     *handler.UserHandler
	locationHandler *handler.LocationHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		businessHandler: params.BusinessHandler,
		userHandler:     params.UserHandler,
		locationHandler: params.LocationHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Business routes. The feed and single reads accept anonymous requests;
	// everything else requires a valid token.
	businessGroup := e.Group("/businesses")
	{
		businessGroup.GET("/feed", r.businessHandler.Feed, r.authMiddleware.OptionalAuthenticate)
		businessGroup.GET("/mine", r.businessHandler.Mine, r.authMiddleware.Authenticate)
		businessGroup.POST("", r.businessHandler.Create, r.authMiddleware.Authenticate)
		businessGroup.GET("/:id", r.businessHandler.GetByID, r.authMiddleware.OptionalAuthenticate)
		businessGroup.PUT("/:id", r.businessHandler.Update, r.authMiddleware.Authenticate)
		businessGroup.DELETE("/:id", r.businessHandler.Delete, r.authMiddleware.Authenticate)
		businessGroup.POST("/:businessId/associate", r.businessHandler.Partner, r.authMiddleware.Authenticate)
		businessGroup.POST("/:businessId/save", r.businessHandler.Save, r.authMiddleware.Authenticate)
		businessGroup.POST("/:businessId/like", r.businessHandler.Like, r.authMiddleware.Authenticate)
	}

	// Static reference catalogs, public.
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("/countries", r.locationHandler.Countries)
		locationGroup.GET("/states", r.locationHandler.States)
		locationGroup.GET("/municipalities", r.locationHandler.Municipalities)
		locationGroup.GET("/categories", r.locationHandler.Categories)
	}

	// Profile routes for the authenticated user
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PUT("/me", r.userHandler.UpdateMe)
	}
}
