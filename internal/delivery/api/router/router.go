// Package router registers the admin API routes.
package router

import (
	"freedge/config"
	"freedge/internal/delivery/api/router/handler"
	"freedge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Route paths outside /api/v1.
const (
	HealthPath = "/healthz"
)

type RouterParams struct {
	fx.In

	ImportHandler   *handler.ImportHandler
	RegistryHandler *handler.RegistryHandler
	CheckInHandler  *handler.CheckInHandler
	HealthHandler   *handler.HealthHandler
	Config          *config.Config
	Registry        *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	importHandler   *handler.ImportHandler
	registryHandler *handler.RegistryHandler
	checkInHandler  *handler.CheckInHandler
	healthHandler   *handler.HealthHandler
	config          *config.Config
	registry        *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		importHandler:   params.ImportHandler,
		registryHandler: params.RegistryHandler,
		checkInHandler:  params.CheckInHandler,
		healthHandler:   params.HealthHandler,
		config:          params.Config,
		registry:        params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, r.healthHandler.Healthz)

	if r.registry != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	apiV1 := e.Group("/api/v1")

	importsGroup := apiV1.Group("/imports")
	{
		importsGroup.POST("", r.importHandler.PreviewImport)
		importsGroup.POST("/:id/apply", r.importHandler.ApplyImport)
		importsGroup.DELETE("/:id", r.importHandler.DiscardImport)
	}

	freedgesGroup := apiV1.Group("/freedges")
	{
		freedgesGroup.GET("", r.registryHandler.ListFreedges)
		// Static segment wins over :id in echo's router
		freedgesGroup.GET("/overdue", r.registryHandler.ListOverdue)
		freedgesGroup.GET("/:id", r.registryHandler.GetFreedge)
	}

	checkInsGroup := apiV1.Group("/checkins")
	{
		checkInsGroup.POST("/dispatch", r.checkInHandler.Dispatch)
		checkInsGroup.POST("/:id/response", r.checkInHandler.RecordResponse)
	}

	lifecycleGroup := apiV1.Group("/lifecycle")
	{
		lifecycleGroup.POST("/suspect-stale", r.registryHandler.SuspectStale)
	}
}
