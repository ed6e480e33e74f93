package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kbeaute/backend/config"
	"github.com/kbeaute/backend/internal/metrics"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware; the request logger is outermost so it sees recovered panics
	router.Use(RequestLoggerMiddleware(handler.logger))
	router.Use(metrics.Middleware())
	router.Use(RecoveryMiddleware(handler.logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Status endpoints
	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Recommendation endpoints
	router.POST("/recommend", handler.Recommend)
	router.POST("/ask", handler.Ask)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/recommend", handler.Recommend)
		v1.POST("/ask", handler.Ask)
	}

	return router
}
