package api

import (
	"net/http"

	"songmanager/api/health"
	"songmanager/api/middleware"
	"songmanager/api/response"
	"songmanager/config"
	"songmanager/pkg/errors"
	"songmanager/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ControllerRegister is implemented by every controller that exposes routes.
type ControllerRegister interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// Router Route configuration
type Router struct {
	engine           *gin.Engine
	config           *config.Config
	metrics          *metrics.Metrics
	healthController *health.Controller
	controllers      []ControllerRegister
}

// NewRouter builds the engine and its middleware chain. m may be nil when
// metrics are disabled.
func NewRouter(
	cfg *config.Config,
	m *metrics.Metrics,
	healthController *health.Controller,
	controllers ...ControllerRegister,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// order matters: the request ID must exist before anything logs, and
	// recovery sits inside logging and metrics so a panic still yields one
	// access log line and one counted 500
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	if m != nil {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:           engine,
		config:           cfg,
		metrics:          m,
		healthController: healthController,
		controllers:      controllers,
	}
}

// SetupRoutes mounts every controller both at the root and under /api/v1.
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		for _, c := range r.controllers {
			c.RegisterRoutes(apiGroup)
		}
	}

	for _, c := range r.controllers {
		c.RegisterRoutes(&r.engine.RouterGroup)
	}

	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"songs":   "/songs",
			"health":  "/api/v1/health",
		})
	})

	r.engine.NoRoute(func(c *gin.Context) {
		response.Abort(c, errors.New(errors.CodeNotFound, "route not found"))
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
