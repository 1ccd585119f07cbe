package cache

import (
	"context"
	"time"
)

// Store is a byte-oriented cache with per-key TTLs. Callers serialize their
// own values; a miss is reported via the bool, not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
