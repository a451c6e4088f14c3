package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-assess/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DefaultOperationTimeout bounds a single cache round trip on the grading path.
const DefaultOperationTimeout = 250 * time.Millisecond

// RedisCacheAdapter implements domain.Cache over Redis.
type RedisCacheAdapter struct {
	client    redis.Cmdable
	opTimeout time.Duration
}

// RedisOption customises a RedisCacheAdapter.
type RedisOption func(*RedisCacheAdapter)

// WithOperationTimeout overrides DefaultOperationTimeout. Zero leaves calls unbounded.
func WithOperationTimeout(d time.Duration) RedisOption {
	return func(r *RedisCacheAdapter) {
		r.opTimeout = d
	}
}

// NewRedisCacheAdapter wraps a connected client.
func NewRedisCacheAdapter(client redis.Cmdable, opts ...RedisOption) domain.Cache {
	r := &RedisCacheAdapter{client: client, opTimeout: DefaultOperationTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisCacheAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

// Get returns domain.ErrCacheMiss for absent keys.
func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set stores value under key. An expiration of zero keeps the key forever.
func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Ping checks the health of the Redis server. It uses the caller's deadline only.
func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
