package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"talentdeck-api/internal/api/handlers"
	"talentdeck-api/internal/api/middleware"
	"talentdeck-api/internal/cache"
	"talentdeck-api/internal/config"
	"talentdeck-api/internal/dashboard"
	"talentdeck-api/internal/repository"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svc *dashboard.Service, repo repository.CandidateRepository, queryCache *cache.QueryCache) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.RateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(repo, queryCache))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(repo, queryCache))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		candidates := v1.Group("/candidates")
		{
			candidates.GET("", handlers.ListCandidatesHandler(svc))
			candidates.GET("/filter", handlers.FilterCandidatesHandler(svc))
			candidates.GET("/months", handlers.MonthOptionsHandler(cfg))
			candidates.POST("/import", handlers.ImportCandidatesHandler(svc))
			candidates.GET("/:id", handlers.GetCandidateHandler(svc))
			candidates.PATCH("/:id/status", handlers.UpdateStatusHandler(svc))
			candidates.GET("/:id/pdf", handlers.GeneratePDFHandler(svc))
		}

		v1.POST("/seed", handlers.SeedHandler(svc))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "TalentDeck Candidate API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
