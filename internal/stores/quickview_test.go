package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickViewStartsClosed(t *testing.T) {
	qv := NewQuickViewStore()

	state := qv.State()
	assert.False(t, state.IsOpen)
	assert.Nil(t, state.Product)
}

func TestQuickViewOpenClose(t *testing.T) {
	qv := NewQuickViewStore()

	qv.Open(testProduct("p1", 100))
	state := qv.State()
	require.True(t, state.IsOpen)
	require.NotNil(t, state.Product)
	assert.Equal(t, "p1", state.Product.ID)

	// Close garde le produit référencé jusqu'au prochain Open
	qv.Close()
	state = qv.State()
	assert.False(t, state.IsOpen)
	require.NotNil(t, state.Product)
	assert.Equal(t, "p1", state.Product.ID)

	qv.Open(testProduct("p2", 200))
	assert.Equal(t, "p2", qv.State().Product.ID)
}

func TestQuickViewSubscribe(t *testing.T) {
	qv := NewQuickViewStore()
	ch, cancel := qv.Subscribe()
	defer cancel()

	qv.Open(testProduct("p1", 100))
	state := <-ch
	assert.True(t, state.IsOpen)
	assert.Equal(t, "p1", state.Product.ID)

	// Deux publications rapides : seul le dernier état reste lisible
	qv.Open(testProduct("p2", 200))
	qv.Close()
	state = <-ch
	assert.False(t, state.IsOpen)
	assert.Equal(t, "p2", state.Product.ID)
}
