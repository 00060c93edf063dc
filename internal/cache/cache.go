// Package cache provides a small byte-oriented cache used to short-circuit
// repeated project balance reads. Entries carry a short TTL so a missed
// invalidation can only serve stale data briefly.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is the caching interface with Redis and in-memory implementations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
