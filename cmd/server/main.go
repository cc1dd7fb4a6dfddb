package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"talentdeck-api/internal/api/routes"
	"talentdeck-api/internal/cache"
	"talentdeck-api/internal/config"
	"talentdeck-api/internal/dashboard"
	"talentdeck-api/internal/logging"
	"talentdeck-api/internal/query"
	"talentdeck-api/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting TalentDeck Candidate API")

	// Candidate query engine with locale-aware collation
	engine := query.NewEngineForLocale(cfg.Query.Locale)

	// Primary candidate store
	var primary repository.CandidateRepository
	switch cfg.Repository.Driver {
	case "postgres":
		pg, err := repository.NewPostgresRepository(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to postgres", map[string]interface{}{"error": err.Error()})
		}
		primary = pg
	case "http":
		primary = repository.NewHTTPRepository(cfg)
	default:
		logger.Fatal("Unknown repository driver", map[string]interface{}{"driver": cfg.Repository.Driver})
	}

	// Reads survive an unreachable store by serving the seed dataset
	repo := repository.NewFailover(primary, repository.NewSeededFallbackStore(), engine)

	// Optional Redis-backed query cache
	var queryCache *cache.QueryCache
	if cfg.Cache.Enabled {
		queryCache = cache.NewQueryCache(cfg)
		defer queryCache.Close()
	}

	svc := dashboard.NewService(repo, engine, queryCache)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, svc, repo, queryCache)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{"reason": err.Error()})
	}
}
