package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCache(rdb, time.Minute), mr
}

func TestCache_SetGetDelete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got map[string]string
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", map[string]string{"a": "b"}))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", got["a"])
	assert.Equal(t, time.Minute, mr.TTL("k"))

	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1))
	mr.FastForward(2 * time.Minute)

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_NilIsDisabled(t *testing.T) {
	var c *Cache
	assert.Nil(t, NewCache(nil, time.Minute))

	var v int
	found, err := c.Get(context.Background(), "k", &v)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(context.Background(), "k", 1))
	assert.NoError(t, c.Delete(context.Background(), "k"))
}
