// ABOUTME: Huma API server configuration and setup
// ABOUTME: Wires CORS, request logging, and rate limiting around a chi router

package api

import (
	"extractor-app-api/api/middleware"
	"extractor-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// APIConfig holds configuration for the API.
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64

	// RateBurst is the limiter burst size.
	RateBurst int
}

// NewAPI creates a Huma API on a chi router with the standard middleware
// stack. The OpenAPI spec is served at /openapi.json and docs at /docs.
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("Content Extraction API", "1.0.0")
	config.Info.Description = "API for extracting clean article content from URLs and parsing RSS/Atom feeds"

	api := humachi.New(router, config)

	return api, router
}
