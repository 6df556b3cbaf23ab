package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slider/internal/carousel"
)

func TestZones_HitTopmost(t *testing.T) {
	var z Zones
	z.Add(0, 20, 3, carousel.Element{Kind: RoleDots})
	z.Add(5, 6, 3, carousel.IndicatorElement(0))
	z.Add(7, 8, 3, carousel.IndicatorElement(1))

	got, ok := z.Hit(5, 3)
	require.True(t, ok)
	assert.Equal(t, carousel.RoleIndicator, got.Role())
	v, _ := got.Attr(carousel.AttrSlide)
	assert.Equal(t, "0", v)

	got, ok = z.Hit(6, 3)
	require.True(t, ok)
	assert.Equal(t, RoleDots, got.Role(), "gap between dots hits the container")

	_, ok = z.Hit(6, 4)
	assert.False(t, ok)
	_, ok = z.Hit(20, 3)
	assert.False(t, ok, "X1 is exclusive")
}

func TestZones_ResetAndRows(t *testing.T) {
	var z Zones
	z.AddRows(0, 3, 1, 4, carousel.Element{Kind: RoleControl})
	assert.Equal(t, 3, z.Len())
	_, ok := z.Hit(1, 3)
	assert.True(t, ok)

	z.Add(5, 5, 0, carousel.Element{Kind: "empty"})
	z.Add(0, 1, 0, nil)
	assert.Equal(t, 3, z.Len(), "empty ranges and nil targets are dropped")

	z.Reset()
	assert.Equal(t, 0, z.Len())
	_, ok = z.Hit(1, 3)
	assert.False(t, ok)
}
