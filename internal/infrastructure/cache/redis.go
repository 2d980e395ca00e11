package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-tracker/pkg/config"
)

// NewRedisClient connects to Redis and verifies the connection with a PING
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisStore implements Store on a shared Redis instance.
// Families are Redis sets holding the member keys.
type RedisStore struct {
	client redis.UniversalClient
	codec  Codec
}

// NewRedisStore creates a Redis-backed Store
func NewRedisStore(client redis.UniversalClient, codec Codec) *RedisStore {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &RedisStore{client: client, codec: codec}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := s.codec.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := s.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) Track(ctx context.Context, family, key string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, family, key)
		pipe.Expire(ctx, family, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis track %s: %w", family, err)
	}
	return nil
}

// DeleteFamily reads the registry then deletes members and registry in one DEL.
// A key tracked between the two round trips stays cached until its TTL.
func (s *RedisStore) DeleteFamily(ctx context.Context, family string) error {
	members, err := s.client.SMembers(ctx, family).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis smembers %s: %w", family, err)
	}

	return s.Delete(ctx, append(members, family)...)
}
