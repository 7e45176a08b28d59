package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStore("redis://"+mr.Addr(), "console", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	type record struct {
		Name string `json:"name"`
	}
	require.NoError(t, s.Set(ctx, Key("practice", "tok"), record{Name: "Northside"}, time.Minute))
	require.True(t, mr.Exists("console:practice:tok"), "keys carry the configured prefix")

	var got record
	meta, ok := s.Get(ctx, Key("practice", "tok"), &got)
	require.True(t, ok)
	assert.Equal(t, "Northside", got.Name)
	assert.Equal(t, time.Minute, meta.TTL)
}

func TestRedisStoreMissAndInvalidate(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	var out string
	_, ok := s.Get(ctx, "absent", &out)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, s.Invalidate(ctx, "k"))
	_, ok = s.Get(ctx, "k", &out)
	assert.False(t, ok)
}

func TestRedisStoreExpiry(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "ephemeral", "v", time.Second))
	mr.FastForward(2 * time.Second)

	var out string
	_, ok := s.Get(ctx, "ephemeral", &out)
	assert.False(t, ok)
}
