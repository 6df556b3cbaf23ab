package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_Offsets(t *testing.T) {
	assert.Equal(t, []int{200, 100, 0, -100, -200}, Layout(2, 5))
	assert.Equal(t, []int{0, 100, 200, 300}, Layout(0, 4))
	assert.Equal(t, []int{-300, -200, -100, 0}, Layout(3, 4))
}

func TestLayout_Deterministic(t *testing.T) {
	first := Layout(2, 5)
	second := Layout(2, 5)
	assert.Equal(t, first, second)

	// Mutating one result does not leak into the next call.
	first[0] = 999
	assert.Equal(t, []int{200, 100, 0, -100, -200}, Layout(2, 5))
}

func TestLayout_Empty(t *testing.T) {
	assert.Empty(t, Layout(0, 0))
	assert.Empty(t, Layout(0, -1))
}
