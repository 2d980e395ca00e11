package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process Store for single-instance deployments and tests.
// Values are stored encoded so callers never share memory with the cache.
type MemoryStore struct {
	mu    sync.Mutex
	items *gocache.Cache
	codec Codec
}

type keySet map[string]struct{}

// NewMemoryStore creates a new in-memory store. Expired items are purged every cleanupInterval.
func NewMemoryStore(codec Codec, cleanupInterval time.Duration) *MemoryStore {
	if codec == nil {
		codec = JSONCodec{}
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	return &MemoryStore{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
		codec: codec,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := s.items.Get(key)
	if !ok {
		return false, nil
	}

	data, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("key %s does not hold a value", key)
	}

	if err := s.codec.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := s.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.items.Set(key, data, ttl)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		s.items.Delete(key)
	}
	return nil
}

func (s *MemoryStore) Track(ctx context.Context, family, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := keySet{}
	if raw, ok := s.items.Get(family); ok {
		if existing, ok := raw.(keySet); ok {
			members = existing
		}
	}
	members[key] = struct{}{}

	s.items.Set(family, members, ttl)
	return nil
}

func (s *MemoryStore) DeleteFamily(ctx context.Context, family string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.items.Get(family); ok {
		if members, ok := raw.(keySet); ok {
			for key := range members {
				s.items.Delete(key)
			}
		}
	}
	s.items.Delete(family)
	return nil
}

// Len reports the number of live entries, registries included
func (s *MemoryStore) Len() int {
	return s.items.ItemCount()
}
