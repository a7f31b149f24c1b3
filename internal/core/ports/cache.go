// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// QueryCache memoizes backend query results per key and supports the
// invalidation-by-prefix pattern the table views rely on after writes.
type QueryCache interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error

	// GetOrSet returns the cached value for key, or runs fetch and caches
	// its result for ttl on a miss.
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	// Flush drops every cached query, used on logout.
	Flush(ctx context.Context) error
	Ping(ctx context.Context) error
}
