package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/trader-pulse/internal/telemetry"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler, tel *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/healthz", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(tel.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Analysis endpoints
		analyze := v1.Group("/analyze")
		{
			analyze.POST("", handler.Analyze)          // POST /api/v1/analyze
			analyze.POST("/user", handler.AnalyzeUser) // POST /api/v1/analyze/user
		}

		// Persisted profile endpoints
		profiles := v1.Group("/profiles")
		{
			profiles.GET("", handler.ListProfiles)          // GET /api/v1/profiles
			profiles.GET("/:username", handler.GetProfile)  // GET /api/v1/profiles/:username
		}

		// Statistics endpoints
		stats := v1.Group("/stats")
		{
			stats.GET("/tiers", handler.GetTierStats) // GET /api/v1/stats/tiers
		}

		// Lexicon inventory
		v1.GET("/lexicon", handler.GetLexicon) // GET /api/v1/lexicon
	}
}
