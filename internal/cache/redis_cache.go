package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client    redis.Cmdable
	ttl       time.Duration
	namespace string
}

func NewRedisCache(client redis.Cmdable, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client:    client,
		ttl:       cfg.DefaultTTL,
		namespace: cfg.Namespace,
	}
}

func (r *redisCache) key(k string) string {
	if r.namespace == "" {
		return k
	}

	return r.namespace + ":" + k
}

func (r *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()

	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.ttl
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// Delete unlinks the keys; Redis reclaims the memory in the background.
func (r *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}

	if err := r.client.Unlink(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache delete %v: %w", keys, err)
	}

	return nil
}

// Close is a no-op; the client is owned by the caller.
func (r *redisCache) Close() error {
	return nil
}
