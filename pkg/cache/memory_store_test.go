package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Set(ctx, "k1", []byte("hello"), time.Minute)
	require.NoError(t, err)

	val, found, err := store.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("hello"), val)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()

	val, found, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, store.Set(ctx, "c", []byte("3"), time.Minute))

	// Multi-key delete in one call, including a key that does not exist.
	require.NoError(t, store.Delete(ctx, "a", "b", "nope"))

	_, found, _ := store.Get(ctx, "a")
	assert.False(t, found)
	_, found, _ = store.Get(ctx, "b")
	assert.False(t, found)
	_, found, _ = store.Get(ctx, "c")
	assert.True(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("x"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, found, err := store.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, store.Set(ctx, "k", []byte("new"), time.Minute))

	val, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("new"), val)
}
