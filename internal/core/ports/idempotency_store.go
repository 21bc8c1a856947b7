package ports

import (
	"context"
	"time"
)

// IdempotencyStore remembers client idempotency keys of order requests.
type IdempotencyStore interface {
	// Reserve records key for ttl. It reports false when the key was already
	// reserved.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so that a failed request can be retried with it.
	Release(ctx context.Context, key string) error
}
