package cache

import (
	"context"
	"time"
)

// Cache is the contract of the lookup cache.
// Implementations: Redis, and a bounded in-process LRU (MemoryCache) used
// when Redis is disabled or unreachable.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// Returns found=false on a miss; dest is left untouched then.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value (marshalled) with a TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
