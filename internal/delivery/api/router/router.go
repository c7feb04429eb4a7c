// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"credkeeper/config"
	"credkeeper/internal/delivery/api/router/handler"
	"credkeeper/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CredentialHandler *handler.CredentialHandler
	Metrics           *metrics.Recorder
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	credentialHandler *handler.CredentialHandler
	metrics           *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		credentialHandler: params.CredentialHandler,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.credentialHandler.RegisterUser)
		authGroup.DELETE("/delete", r.credentialHandler.DeleteUser)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
