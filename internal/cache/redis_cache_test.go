package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/coolbreeze/storefront/internal/cache"
	"github.com/coolbreeze/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: 10 * time.Minute}), mock
}

func TestGet(t *testing.T) {
	key := cache.Key(cache.ProductKeyPrefix, "p-1")
	want := cachedProduct{Name: "Desert Cooler 70L", Price: 12999}
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	t.Run("Success - Hit", func(t *testing.T) {
		// Arrange
		c, mock := setup(t)
		mock.ExpectGet(key).SetVal(string(payload))

		// Act
		var got cachedProduct
		found, err := c.Get(t.Context(), key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	})

	t.Run("Success - Miss", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got cachedProduct
		found, err := c.Get(t.Context(), key, &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got)
	})

	t.Run("Fail - Redis error", func(t *testing.T) {
		c, mock := setup(t)
		redisErr := errors.New("connection refused")
		mock.ExpectGet(key).SetErr(redisErr)

		var got cachedProduct
		found, err := c.Get(t.Context(), key, &got)

		require.ErrorIs(t, err, redisErr)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "cache get product:p-1")
	})

	t.Run("Fail - Corrupt payload", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetVal(`{"name": 5}`)

		var got cachedProduct
		found, err := c.Get(t.Context(), key, &got)

		var typeErr *json.UnmarshalTypeError

		require.ErrorAs(t, err, &typeErr)
		assert.False(t, found)
	})
}

func TestSet(t *testing.T) {
	key := cache.Key(cache.ProductKeyPrefix, "p-2")
	value := cachedProduct{Name: "Cooling Pad", Price: 349}
	payload, err := json.Marshal(value)
	require.NoError(t, err)

	tests := []struct {
		name        string
		ttl         time.Duration
		expectedTTL time.Duration
	}{
		{"Success - Explicit TTL", 2 * time.Minute, 2 * time.Minute},
		{"Success - Zero TTL uses default", 0, 10 * time.Minute},
		{"Success - Negative TTL uses default", -time.Second, 10 * time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mock := setup(t)
			mock.ExpectSet(key, payload, tc.expectedTTL).SetVal("OK")

			require.NoError(t, c.Set(t.Context(), key, value, tc.ttl))
		})
	}

	t.Run("Fail - Unsupported value", func(t *testing.T) {
		c, _ := setup(t)

		err := c.Set(t.Context(), key, make(chan int), time.Minute)

		var unsupported *json.UnsupportedTypeError

		require.ErrorAs(t, err, &unsupported)
	})

	t.Run("Fail - Redis error", func(t *testing.T) {
		c, mock := setup(t)
		redisErr := errors.New("READONLY")
		mock.ExpectSet(key, payload, time.Minute).SetErr(redisErr)

		err := c.Set(t.Context(), key, value, time.Minute)

		require.ErrorIs(t, err, redisErr)
		assert.Contains(t, err.Error(), "cache set product:p-2")
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success - Multiple keys", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectUnlink("product:a", "product:b").SetVal(2)

		require.NoError(t, c.Delete(t.Context(), "product:a", "product:b"))
	})

	t.Run("Success - No keys is a no-op", func(t *testing.T) {
		c, _ := setup(t)

		require.NoError(t, c.Delete(t.Context()))
	})

	t.Run("Fail - Redis error", func(t *testing.T) {
		c, mock := setup(t)
		redisErr := errors.New("UNLINK failed")
		mock.ExpectUnlink("product:a").SetErr(redisErr)

		require.ErrorIs(t, c.Delete(t.Context(), "product:a"), redisErr)
	})
}

func TestNamespace(t *testing.T) {
	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	c := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: time.Minute, Namespace: "staging"})

	mock.ExpectGet("staging:product:p-9").SetErr(redis.Nil)
	mock.ExpectUnlink("staging:product:p-9").SetVal(1)

	var got cachedProduct
	found, err := c.Get(t.Context(), "product:p-9", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Delete(t.Context(), "product:p-9"))
}

func TestRemember(t *testing.T) {
	key := cache.Key(cache.DashboardKeyPrefix, "summary")
	value := cachedProduct{Name: "summary", Price: 1}
	payload, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Loads and stores on miss", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)
		mock.ExpectSet(key, payload, 30*time.Second).SetVal("OK")

		calls := 0
		got, err := cache.Remember(t.Context(), c, key, 30*time.Second, func(_ context.Context) (cachedProduct, error) {
			calls++

			return value, nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("Success - Skips loader on hit", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetVal(string(payload))

		got, err := cache.Remember(t.Context(), c, key, 30*time.Second, func(_ context.Context) (cachedProduct, error) {
			t.Fatal("loader must not run on a cache hit")

			return cachedProduct{}, nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("Success - Cache failure is reported, not returned", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(errors.New("down"))
		mock.ExpectSet(key, payload, 30*time.Second).SetErr(errors.New("down"))

		var reported []error

		got, err := cache.Remember(t.Context(), c, key, 30*time.Second, func(_ context.Context) (cachedProduct, error) {
			return value, nil
		}, func(err error) { reported = append(reported, err) })

		require.NoError(t, err)
		assert.Equal(t, value, got)
		assert.Len(t, reported, 2)
	})

	t.Run("Fail - Loader error is returned", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)
		loadErr := errors.New("db down")

		_, err := cache.Remember(t.Context(), c, key, 30*time.Second, func(_ context.Context) (cachedProduct, error) {
			return cachedProduct{}, loadErr
		}, nil)

		require.ErrorIs(t, err, loadErr)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:abc", cache.Key(cache.ProductKeyPrefix, "abc"))
	assert.Equal(t, "warranty-lookup:WR-2025-ABCDEF", cache.Key(cache.WarrantyLookupKeyPrefix, "WR-2025-ABCDEF"))
	assert.Equal(t, ":", cache.Key("", ""))
}
