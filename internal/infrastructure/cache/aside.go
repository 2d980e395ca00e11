package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoadFn fetches a value from the source of truth on a cache miss
type LoadFn[T any] func(ctx context.Context) (T, error)

// Aside bundles a Store with the logger used to report soft cache failures
type Aside struct {
	store  Store
	logger *zap.Logger
}

// NewAside creates a cache-aside helper. A nil store disables caching.
func NewAside(store Store, logger *zap.Logger) *Aside {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aside{store: store, logger: logger}
}

// Store exposes the underlying store for invalidation
func (a *Aside) Store() Store {
	if a == nil {
		return nil
	}
	return a.store
}

type loadOptions struct {
	family string
}

// LoadOption customizes GetOrLoad
type LoadOption func(*loadOptions)

// InFamily registers the written key in family so it can be dropped with the family
func InFamily(family string) LoadOption {
	return func(o *loadOptions) { o.family = family }
}

// GetOrLoad returns the cached value under key, or calls load and caches its result for ttl.
//
// Cache failures never fail the call: a read error falls through to load and a write
// error still returns the loaded value. Errors from load are returned untouched and
// nothing is cached.
func GetOrLoad[T any](ctx context.Context, a *Aside, key string, ttl time.Duration, load LoadFn[T], opts ...LoadOption) (T, error) {
	if a == nil || a.store == nil {
		return load(ctx)
	}

	var cached T
	hit, err := a.store.Get(ctx, key, &cached)
	if err != nil {
		a.logger.Warn("cache.read.failed", zap.String("key", key), zap.Error(err))
	} else if hit {
		a.logger.Debug("cache.hit", zap.String("key", key))
		return cached, nil
	}

	a.logger.Debug("cache.miss", zap.String("key", key))

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := a.store.Set(ctx, key, value, ttl); err != nil {
		a.logger.Warn("cache.write.failed", zap.String("key", key), zap.Error(err))
		return value, nil
	}

	if o.family != "" {
		if err := a.store.Track(ctx, o.family, key, ttl); err != nil {
			// An untracked key would survive family invalidation, so drop it.
			a.logger.Warn("cache.track.failed", zap.String("key", key), zap.String("family", o.family), zap.Error(err))
			_ = a.store.Delete(ctx, key)
		}
	}

	return value, nil
}

// Put writes value under key, logging instead of failing
func (a *Aside) Put(ctx context.Context, key string, value any, ttl time.Duration) {
	if a == nil || a.store == nil {
		return
	}
	if err := a.store.Set(ctx, key, value, ttl); err != nil {
		a.logger.Warn("cache.write.failed", zap.String("key", key), zap.Error(err))
	}
}
