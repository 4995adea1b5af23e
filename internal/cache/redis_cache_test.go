package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, "test:", slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", entry{Name: "x", Count: 2}, time.Minute))
	assert.True(t, mr.Exists("test:a"))

	var got entry
	require.NoError(t, c.Get(ctx, "a", &got))
	assert.Equal(t, entry{Name: "x", Count: 2}, got)
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var got entry
	assert.ErrorIs(t, c.Get(context.Background(), "absent", &got), ErrCacheMiss)
}

func TestRedisCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", entry{Name: "x"}, time.Second))
	mr.FastForward(2 * time.Second)

	var got entry
	assert.ErrorIs(t, c.Get(ctx, "a", &got), ErrCacheMiss)
}

func TestRedisCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("test:a", "{not json"))

	var got entry
	assert.ErrorIs(t, c.Get(context.Background(), "a", &got), ErrCacheMiss)
	assert.False(t, mr.Exists("test:a"))
}
