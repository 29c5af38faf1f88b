// Package router wires the tracking API routes.
package router

import (
	"medtrack/internal/delivery/api/middleware"
	"medtrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TrackingHandler *handler.TrackingHandler
	RouteHandler    *handler.RouteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

type router struct {
	trackingHandler *handler.TrackingHandler
	routeHandler    *handler.RouteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		trackingHandler: params.TrackingHandler,
		routeHandler:    params.RouteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Sessions answer only to the credential they were opened with
	orders := e.Group("/orders/:id", r.authMiddleware.Authenticate)
	{
		orders.POST("/tracking/session", r.trackingHandler.OpenSession)
		orders.DELETE("/tracking/session", r.trackingHandler.CloseSession)
		orders.GET("/tracking", r.trackingHandler.GetView)
		orders.POST("/tracking/refresh", r.trackingHandler.Refresh)
		orders.POST("/tracking/map/pan", r.trackingHandler.Pan)
		orders.POST("/tracking/map/recenter", r.trackingHandler.Recenter)
	}

	e.GET("/routes", r.routeHandler.GetRoute, r.authMiddleware.Authenticate)
}
