package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCache_SetThenGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8)

	require.NoError(t, c.Set(ctx, "genre:name:Fiction", entry{ID: 7, Name: "Fiction"}, time.Minute))

	var got entry
	found, err := c.Get(ctx, "genre:name:Fiction", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry{ID: 7, Name: "Fiction"}, got)
}

func TestMemoryCache_MissLeavesDestUntouched(t *testing.T) {
	c := NewMemoryCache(8)

	got := entry{Name: "unchanged"}
	found, err := c.Get(context.Background(), "author:name:nobody", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "unchanged", got.Name)
}

func TestMemoryCache_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(8)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", entry{ID: 1}, time.Minute))

	now = now.Add(59 * time.Second)
	found, _ := c.Get(ctx, "k", &entry{})
	assert.True(t, found)

	now = now.Add(time.Second)
	found, _ = c.Get(ctx, "k", &entry{})
	assert.False(t, found)
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(3)

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Set(ctx, "c", 3, time.Minute))

	// touch "a" so "b" is the oldest
	var v int
	found, _ := c.Get(ctx, "a", &v)
	require.True(t, found)

	require.NoError(t, c.Set(ctx, "d", 4, time.Minute))

	assert.Equal(t, 3, c.Len())
	found, _ = c.Get(ctx, "b", &v)
	assert.False(t, found)
	found, _ = c.Get(ctx, "a", &v)
	assert.True(t, found)
	assert.Equal(t, 1, v)
}

func TestMemoryCache_StaysBoundedUnderChurn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(100)
	c.now = func() time.Time { return now }

	for i := 0; i < 50001; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("author:name:%d", i), i, time.Second))
	}
	assert.Equal(t, 100, c.Len())

	// expired entries go away on read
	now = now.Add(time.Minute)
	var v int
	found, err := c.Get(ctx, "author:name:50000", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 99, c.Len())
}

func TestNewMemoryCache_NonPositiveSizeUsesDefault(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	for i := 0; i < DefaultMemorySize+10; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprint(i), i, 0))
	}
	assert.Equal(t, DefaultMemorySize, c.Len())
	assert.NoError(t, c.Ping(ctx))
}

func TestRedisCache_PrefixesKeys(t *testing.T) {
	c := NewRedisCache(NewRedisClient("localhost:0", "", 0), "library:")

	assert.Equal(t, "library:genre:name:Fiction", c.key("genre:name:Fiction"))
}
