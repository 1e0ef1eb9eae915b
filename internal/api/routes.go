package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kurihiro0119/github-profile-advisor/internal/metrics"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(Metrics(m))
	router.Use(CORS())

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.POST("/analyze_profile", handler.AnalyzeProfile)

	return router
}
