// Package interfaces defines the core interfaces used throughout the
// application. These interfaces allow for dependency injection and make the
// code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations. Implementations can be
// in-memory, Redis, SQLite, or any other caching backend.
type Cache interface {
	// Get retrieves a value by key. A miss is reported as an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
