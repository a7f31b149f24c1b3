package redis_a_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/awidjaja/stokgate/internal/adapters/redis_adapter"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/test/helpers"
)

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{
			name:  "stores_and_retrieves_string",
			key:   "test:string",
			value: "test value",
		},
		{
			name:  "stores_and_retrieves_item_page",
			key:   "items:0:",
			value: helpers.CreateTestItems(3),
		},
		{
			name:  "stores_and_retrieves_slice",
			key:   "test:slice",
			value: []string{"item1", "item2", "item3"},
		},
		{
			name: "stores_and_retrieves_map",
			key:  "test:map",
			value: map[string]interface{}{
				"field1": "value1",
				"field2": 123,
				"field3": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.Set(ctx, tt.key, tt.value)
			require.NoError(t, err)

			var result interface{}
			if _, ok := tt.value.(string); ok {
				var strResult string
				err = cache.Get(ctx, tt.key, &strResult)
				result = strResult
			} else if _, ok := tt.value.([]string); ok {
				var sliceResult []string
				err = cache.Get(ctx, tt.key, &sliceResult)
				result = sliceResult
			} else {
				// For complex types, unmarshal to json.RawMessage first
				var jsonResult json.RawMessage
				err = cache.Get(ctx, tt.key, &jsonResult)
				require.NoError(t, err)

				expectedJSON, _ := json.Marshal(tt.value)
				assert.JSONEq(t, string(expectedJSON), string(jsonResult))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, result)
		})
	}
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	// Set with short TTL
	err := cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond)
	require.NoError(t, err)

	// Verify it exists
	var result string
	err = cache.Get(ctx, "ttl:test", &result)
	require.NoError(t, err)
	assert.Equal(t, "value", result)

	// Fast forward time in miniredis
	mr.FastForward(200 * time.Millisecond)

	// Should be expired
	err = cache.Get(ctx, "ttl:test", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	keys := []string{"del:1", "del:2", "del:3"}
	for _, key := range keys {
		err := cache.Set(ctx, key, "value")
		require.NoError(t, err)
	}

	err := cache.Delete(ctx, keys...)
	require.NoError(t, err)

	for _, key := range keys {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	}
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	// Pages of the items table under one prefix, other views untouched
	keysToDelete := []string{"items:0:", "items:10:", "items:0:router"}
	keysToKeep := []string{"sold:0:", "types"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		err := cache.Set(ctx, key, "value")
		require.NoError(t, err)
	}

	err := cache.DeletePattern(ctx, "items:*")
	require.NoError(t, err)

	for _, key := range keysToDelete {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	}

	for _, key := range keysToKeep {
		var result string
		err := cache.Get(ctx, key, &result)
		require.NoError(t, err)
		assert.Equal(t, "value", result)
	}
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	fetchCount := 0
	fetchFunc := func() (interface{}, error) {
		fetchCount++
		return "fetched value", nil
	}

	// First call should fetch
	var result1 string
	err := cache.GetOrSet(ctx, "getorset:test", &result1, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "fetched value", result1)
	assert.Equal(t, 1, fetchCount)

	// Second call should get from cache
	var result2 string
	err = cache.GetOrSet(ctx, "getorset:test", &result2, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "fetched value", result2)
	assert.Equal(t, 1, fetchCount) // Should not increment
}

func TestCache_GetOrSetSurvivesRedisOutage(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	// With Redis down the read and the write-back both fail, but the
	// caller still gets the fetched value.
	mr.Close()

	fetchCount := 0
	fetchFunc := func() (interface{}, error) {
		fetchCount++
		return "fetched value", nil
	}

	var result string
	err := cache.GetOrSet(ctx, "getorset:outage", &result, fetchFunc, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "fetched value", result)
	assert.Equal(t, 1, fetchCount)
}

func TestCache_GetOrSetPropagatesFetchError(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	fetchFunc := func() (interface{}, error) {
		return nil, assert.AnError
	}

	var result string
	err := cache.GetOrSet(ctx, "getorset:fail", &result, fetchFunc, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	// Failed fetch leaves nothing behind
	err = cache.Get(ctx, "getorset:fail", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_FlushDropsEverything(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	for _, key := range []string{"items:0:", "sold:0:", "types", "dash:status"} {
		require.NoError(t, cache.Set(ctx, key, "value"))
	}

	require.NoError(t, cache.Flush(ctx))

	for _, key := range []string{"items:0:", "sold:0:", "types", "dash:status"} {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	}
}

func TestCache_RoundTripsDomainTypes(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())

	records := helpers.CreateTestSoldRecords(2)
	require.NoError(t, cache.Set(ctx, "sold:0:", records))

	var got []domain.SoldRecord
	require.NoError(t, cache.Get(ctx, "sold:0:", &got))
	require.Len(t, got, 2)
	assert.Equal(t, records[0].Invoice, got[0].Invoice)
	assert.Equal(t, records[1].ItemSN, got[1].ItemSN)
}

func TestCache_BuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   redis_a.CacheKeyPrefix
		parts    []string
		expected string
	}{
		{
			name:     "items_page_key",
			prefix:   redis_a.PrefixItems,
			parts:    []string{"0", "router"},
			expected: "items:0:router",
		},
		{
			name:     "dashboard_key",
			prefix:   redis_a.PrefixDashboard,
			parts:    []string{"status"},
			expected: "dash:status",
		},
		{
			name:     "no_parts",
			prefix:   redis_a.PrefixTypes,
			parts:    []string{},
			expected: "types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := redis_a.BuildKey(tt.prefix, tt.parts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
