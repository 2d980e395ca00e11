package cache

import (
	"context"
	"time"
)

// Store is a key/value cache with per-key TTL and explicit key families.
//
// A family is a named registry of keys that must be invalidated together
// (for example every cached page of a list). Keys join a family through Track
// and are removed in one call through DeleteFamily, so no pattern scan of the
// keyspace is ever needed.
type Store interface {
	// Get decodes the value stored under key into dest. A miss is (false, nil).
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set encodes value and stores it under key for ttl
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys; absent keys are ignored
	Delete(ctx context.Context, keys ...string) error

	// Track registers key as a member of family. The registry lives at least as long as ttl.
	Track(ctx context.Context, family, key string, ttl time.Duration) error

	// DeleteFamily removes every tracked member of family and the registry itself
	DeleteFamily(ctx context.Context, family string) error
}
