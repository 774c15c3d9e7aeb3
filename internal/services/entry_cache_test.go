package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketcrown/backend-go/internal/models"
)

func TestEntryCache_FreshUntilTTL(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := NewEntryCache(NewMemoryCache(), 5*time.Minute, clock)

	var got []models.MarketIndex
	assert.False(t, c.Get(ctx, "indices:USA", &got))

	require.NoError(t, c.Put(ctx, "indices:USA", []models.MarketIndex{{Name: "Apple", Value: "189.50"}}))
	require.True(t, c.Get(ctx, "indices:USA", &got))
	assert.Equal(t, "Apple", got[0].Name)

	clock.Advance(5*time.Minute - time.Nanosecond)
	assert.True(t, c.Get(ctx, "indices:USA", &got))

	clock.Advance(time.Nanosecond)
	assert.False(t, c.Get(ctx, "indices:USA", &got), "entry is stale once age reaches the ttl")

	require.NoError(t, c.Put(ctx, "indices:USA", []models.MarketIndex{{Name: "Microsoft"}}))
	got = nil
	require.True(t, c.Get(ctx, "indices:USA", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Microsoft", got[0].Name)
}

func TestEntryCache_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := NewEntryCache(NewMemoryCache(), time.Minute, clock)

	require.NoError(t, c.Put(ctx, "crypto_prices", []models.CryptoPrice{{Symbol: "BTC"}}))
	clock.Advance(30 * time.Second)
	require.NoError(t, c.Put(ctx, "india_market_indices", []models.MarketIndex{{Name: "NIFTY 50"}}))
	clock.Advance(45 * time.Second)

	var coins []models.CryptoPrice
	var idx []models.MarketIndex
	assert.False(t, c.Get(ctx, "crypto_prices", &coins))
	assert.True(t, c.Get(ctx, "india_market_indices", &idx))
}

func TestEntryCache_UndecodableEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryCache()
	require.NoError(t, backend.Set(ctx, "crypto_prices", []byte("not json"), 0))

	c := NewEntryCache(backend, time.Minute, newFakeClock())
	var coins []models.CryptoPrice
	assert.False(t, c.Get(ctx, "crypto_prices", &coins))
}

func TestRedisCacheIntegration(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping redis integration test")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()

	ctx := context.Background()
	rc := NewRedisCache(client)
	require.NoError(t, rc.Ping(ctx))

	c := NewEntryCache(rc, time.Minute, newFakeClock())
	require.NoError(t, c.Put(ctx, "test:entry", []models.CryptoPrice{{Symbol: "ETH"}}))
	var got []models.CryptoPrice
	require.True(t, c.Get(ctx, "test:entry", &got))
	assert.Equal(t, "ETH", got[0].Symbol)

	require.NoError(t, client.Del(ctx, "marketcrown:test:entry").Err())
}
