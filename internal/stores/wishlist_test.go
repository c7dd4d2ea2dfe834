package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_back_end/internal/cache"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	wl := NewWishlistStore(cache.NewMemoryStore())

	wl.Add(testProduct("p1", 100))
	wl.Add(testProduct("p1", 100))

	assert.Equal(t, 1, wl.Count())
	assert.True(t, wl.Contains("p1"))
}

func TestWishlistToggleIsSelfInverse(t *testing.T) {
	wl := NewWishlistStore(cache.NewMemoryStore())
	p := testProduct("p1", 100)

	wl.Toggle(p)
	assert.True(t, wl.Contains("p1"))

	wl.Toggle(p)
	assert.False(t, wl.Contains("p1"))
	assert.Zero(t, wl.Count())
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	wl := NewWishlistStore(cache.NewMemoryStore())
	wl.Add(testProduct("p1", 100))

	wl.Remove("inconnu")
	assert.Equal(t, 1, wl.Count())

	wl.Remove("p1")
	assert.Zero(t, wl.Count())
}

func TestWishlistRehydrate(t *testing.T) {
	kv := cache.NewMemoryStore()

	wl := NewWishlistStore(kv)
	wl.Add(testProduct("p1", 100))
	wl.Add(testProduct("p2", 200))

	reloaded := NewWishlistStore(kv)
	require.Equal(t, 2, reloaded.Count())
	assert.True(t, reloaded.Contains("p1"))
	assert.True(t, reloaded.Contains("p2"))
}
