package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*MenuCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewMenuCache(client, time.Minute), mr
}

func TestMenuCacheSetGet(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()
	key := FlavorsKey("Classic", "")

	_, err := c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, key, []byte(`{"success":true}`)))

	data, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(data))
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(2 * time.Minute)
	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMenuCacheInvalidate(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, FlavorsKey("All", ""), []byte("a")))
	require.NoError(t, c.Set(ctx, FlavorsKey("Fruit", "berry"), []byte("b")))
	require.NoError(t, mr.Set("session:1", "keep"))

	require.NoError(t, c.Invalidate(ctx))

	assert.False(t, mr.Exists(FlavorsKey("All", "")))
	assert.False(t, mr.Exists(FlavorsKey("Fruit", "berry")))
	assert.True(t, mr.Exists("session:1"))
}

func TestMenuCacheServerError(t *testing.T) {
	c, mr := setupTestCache(t)
	mr.SetError("LOADING")

	_, err := c.Get(context.Background(), FlavorsKey("All", ""))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestMenuCacheDisabled(t *testing.T) {
	ctx := context.Background()

	for _, c := range []*MenuCache{nil, NewMenuCache(nil, time.Minute)} {
		assert.False(t, c.Enabled())

		_, err := c.Get(ctx, "menu:flavors:All:")
		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.NoError(t, c.Set(ctx, "menu:flavors:All:", []byte("x")))
		assert.NoError(t, c.Invalidate(ctx))
	}
}

func TestFlavorsKey(t *testing.T) {
	assert.Equal(t, "menu:flavors:All:", FlavorsKey("All", ""))
	assert.Equal(t, "menu:flavors:Classic:mint", FlavorsKey("Classic", "  MINT "))
}
