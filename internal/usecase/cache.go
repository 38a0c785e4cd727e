package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the Redis wrapper the usecases depend on.
// Implementations must degrade to no-ops when the backend is down.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// SetIfNotExists acquires a best-effort lock; it reports true when
	// the key was absent. Unavailable backends report true so a dead
	// cache never blocks the caller.
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	InvalidateJobCaches(ctx context.Context) error
}
