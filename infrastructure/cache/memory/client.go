// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Per-entry TTL with periodic expired-item cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

// ErrNotFound is returned on a cache miss.
var ErrNotFound = errors.New("key not found")

// MemoryCache implements the Cache interface using go-cache.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. defaultTTL applies when Set
// is called with a zero TTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &MemoryCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, ErrNotFound
	}

	data := value.([]byte)
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value with the given TTL. A zero TTL uses the default.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl <= 0 {
		c.store.SetDefault(key, stored)
	} else {
		c.store.Set(key, stored, ttl)
	}
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.store.Delete(key)
	return nil
}
