// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Covers server, cache, fetch, headless rendering, and scoring settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Fetch      FetchConfig
	Headless   HeadlessConfig
	Log        LogConfig
	Extraction ExtractionConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Port is the HTTP server port.
	Port string

	// RateLimit is the allowed requests per second per client IP.
	RateLimit float64

	// RateBurst is the rate limiter burst size.
	RateBurst int
}

// CacheConfig holds cache backend configuration.
type CacheConfig struct {
	// Type selects the backend: memory, redis, or sqlite.
	Type string

	Redis  RedisConfig
	SQLite SQLiteConfig

	// DefaultTTLSeconds is the default expiry for cached entries.
	DefaultTTLSeconds int
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// SQLiteConfig holds the SQLite cache file location.
type SQLiteConfig struct {
	Path string
}

// FetchConfig holds HTTP fetch settings.
type FetchConfig struct {
	// TimeoutSeconds bounds a single page or feed fetch.
	TimeoutSeconds int
}

// HeadlessConfig holds headless browser settings.
type HeadlessConfig struct {
	// Enabled launches the browser at startup. When false, extraction
	// requests asking for headless rendering skip that stage.
	Enabled bool

	// NavigationTimeoutSeconds bounds one page load, independent of the
	// fetch timeout.
	NavigationTimeoutSeconds int

	// SettleDelayMS is the extra wait after network idle.
	SettleDelayMS int

	// MaxPages bounds concurrent page checkouts on the shared browser.
	MaxPages int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	JSON  bool
}

// ExtractionConfig exposes the density-scoring constants. The defaults are
// empirically chosen; override them only with evidence from a labeled corpus.
type ExtractionConfig struct {
	DensityWeight    float64
	SizeWeight       float64
	ComplexityWeight float64
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 5),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
			DefaultTTLSeconds: getEnvAsIntOrDefault("CACHE_TTL", 3600),
		},
		Fetch: FetchConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
		},
		Headless: HeadlessConfig{
			Enabled:                  getEnvAsBoolOrDefault("HEADLESS_ENABLED", false),
			NavigationTimeoutSeconds: getEnvAsIntOrDefault("HEADLESS_NAV_TIMEOUT", 30),
			SettleDelayMS:            getEnvAsIntOrDefault("HEADLESS_SETTLE_DELAY_MS", 2000),
			MaxPages:                 getEnvAsIntOrDefault("HEADLESS_MAX_PAGES", 4),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			JSON:  getEnvAsBoolOrDefault("LOG_JSON", false),
		},
		Extraction: ExtractionConfig{
			DensityWeight:    getEnvAsFloatOrDefault("EXTRACTION_DENSITY_WEIGHT", 0.6),
			SizeWeight:       getEnvAsFloatOrDefault("EXTRACTION_SIZE_WEIGHT", 0.3),
			ComplexityWeight: getEnvAsFloatOrDefault("EXTRACTION_COMPLEXITY_WEIGHT", 0.1),
		},
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite cache path cannot be empty when using sqlite cache")
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Extraction.DensityWeight < 0 || c.Extraction.SizeWeight < 0 || c.Extraction.ComplexityWeight < 0 {
		return errors.New("extraction weights cannot be negative")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default.
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default.
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
