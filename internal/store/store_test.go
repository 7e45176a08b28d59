package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyScoping(t *testing.T) {
	assert.Equal(t, "practice", Key("practice"))
	assert.Equal(t, "practice:tok-1", Key("practice", "tok-1"))
	assert.Equal(t, "directory_practice:uuid-1", Key("directory_practice", "uuid-1"))
}

func TestResourceLabelStripsScope(t *testing.T) {
	assert.Equal(t, "members", resourceLabel("members:tok-1"))
	assert.Equal(t, "directory", resourceLabel("directory"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute, nil)
	ctx := context.Background()

	type record struct {
		Name string `json:"name"`
	}
	before := time.Now()
	require.NoError(t, s.Set(ctx, Key("practice", "tok"), record{Name: "Northside"}, time.Minute))

	var got record
	meta, ok := s.Get(ctx, Key("practice", "tok"), &got)
	require.True(t, ok)
	assert.Equal(t, "Northside", got.Name)
	require.NotNil(t, meta)
	assert.Equal(t, time.Minute, meta.TTL)
	assert.False(t, meta.FetchedAt.Before(before.Truncate(time.Second)))
}

func TestMemoryStoreMissOnAbsentKey(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute, nil)

	var out string
	meta, ok := s.Get(context.Background(), "absent", &out)
	assert.False(t, ok)
	assert.Nil(t, meta)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "ephemeral", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var out string
	_, ok := s.Get(ctx, "ephemeral", &out)
	assert.False(t, ok)
}

func TestMemoryStoreInvalidate(t *testing.T) {
	s := NewMemoryStore(time.Minute, time.Minute, nil)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, s.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, s.Invalidate(ctx, "a", "b"))

	var out int
	_, ok := s.Get(ctx, "a", &out)
	assert.False(t, ok)
	_, ok = s.Get(ctx, "b", &out)
	assert.False(t, ok)
}
