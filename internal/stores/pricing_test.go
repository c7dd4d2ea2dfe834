package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingFor(t *testing.T) {
	assert.InDelta(t, 29, ShippingFor(0), 1e-9)
	assert.InDelta(t, 29, ShippingFor(499.99), 1e-9)
	// Seuil inclus : livraison offerte pile à 500
	assert.Zero(t, ShippingFor(500))
	assert.Zero(t, ShippingFor(1200))
}

func TestTotalFor(t *testing.T) {
	assert.InDelta(t, 149, TotalFor(100), 1e-9)
	assert.InDelta(t, 600, TotalFor(500), 1e-9)
}
