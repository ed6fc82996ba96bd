// ABOUTME: Main entry point for the content extraction API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"extractor-app-api/api"
	"extractor-app-api/api/handlers"
	"extractor-app-api/core/extraction"
	"extractor-app-api/core/feed"
	"extractor-app-api/core/interfaces"
	"extractor-app-api/infrastructure/cache/memory"
	"extractor-app-api/infrastructure/cache/redis"
	"extractor-app-api/infrastructure/cache/sqlite"
	stdhttp "extractor-app-api/infrastructure/http/standard"
	logrusimpl "extractor-app-api/infrastructure/logger/logrus"
	rodrenderer "extractor-app-api/infrastructure/renderer/rod"
	"extractor-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusimpl.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	logger.Info("Starting content extraction API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"headless":   cfg.Headless.Enabled,
	})

	cache := newCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	feedService := feed.NewService(deps)

	scoring := extraction.DefaultScoringConfig()
	scoring.DensityWeight = cfg.Extraction.DensityWeight
	scoring.SizeWeight = cfg.Extraction.SizeWeight
	scoring.ComplexityWeight = cfg.Extraction.ComplexityWeight

	extractionOpts := []extraction.Option{
		extraction.WithStrategies(extraction.DefaultStrategies(scoring)),
	}

	// The browser launch is the explicit startup cost: rod downloads a
	// browser binary on first use when none is installed.
	var renderer *rodrenderer.Renderer
	if cfg.Headless.Enabled {
		renderer, err = rodrenderer.NewRenderer(rodrenderer.Config{
			NavigationTimeout: time.Duration(cfg.Headless.NavigationTimeoutSeconds) * time.Second,
			SettleDelay:       time.Duration(cfg.Headless.SettleDelayMS) * time.Millisecond,
			MaxPages:          cfg.Headless.MaxPages,
		})
		if err != nil {
			logger.Error("Failed to launch headless browser, continuing without it", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer renderer.Close()
			extractionOpts = append(extractionOpts, extraction.WithRenderer(renderer))
		}
	}

	extractionService := extraction.NewService(deps, feedService, extractionOpts...)

	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	handlers.NewExtractHandler(extractionService).RegisterRoutes(humaAPI)
	handlers.NewFeedHandler(feedService).RegisterRoutes(humaAPI)
	handlers.NewDiscoverHandler(feedService).RegisterRoutes(humaAPI)
	handlers.NewValidateHandler(httpClient).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // headless extractions can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newCache selects the cache backend from config, falling back to memory
// when the configured backend cannot be reached.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	defaultTTL := time.Duration(cfg.Cache.DefaultTTLSeconds) * time.Second

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache

	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(defaultTTL)
	}
}
