// Package cache holds JSON values in Redis for read-heavy lookups.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value as JSON. A ttl <= 0 uses the configured default.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductKeyPrefix        = "product"
	WarrantyLookupKeyPrefix = "warranty-lookup"
	DashboardKeyPrefix      = "dashboard"
)

// Remember returns the cached value for key, or calls load and caches its
// result. Cache failures are reported through onErr and never fail the call.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error), onErr func(error)) (T, error) {
	var cached T

	found, err := c.Get(ctx, key, &cached)
	if err != nil && onErr != nil {
		onErr(err)
	}

	if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil && onErr != nil {
		onErr(err)
	}

	return value, nil
}
