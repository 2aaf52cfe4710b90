package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfc/direction"
)

func TestOpposite(t *testing.T) {
	assert.Equal(t, direction.S, direction.N.Opposite())
	assert.Equal(t, direction.N, direction.S.Opposite())
	assert.Equal(t, direction.W, direction.E.Opposite())
	assert.Equal(t, direction.E, direction.W.Opposite())
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range direction.All() {
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestRotateCycle(t *testing.T) {
	d := direction.N
	for i := 0; i < 4; i++ {
		d = d.Rotate()
	}
	assert.Equal(t, direction.N, d)
}

func TestReflect(t *testing.T) {
	assert.Equal(t, direction.N, direction.N.Reflect())
	assert.Equal(t, direction.S, direction.S.Reflect())
	assert.Equal(t, direction.W, direction.E.Reflect())
	assert.Equal(t, direction.E, direction.W.Reflect())
}

func TestAllOrder(t *testing.T) {
	assert.Equal(t, [4]direction.Direction{direction.N, direction.E, direction.S, direction.W}, direction.All())
}

func TestIndex(t *testing.T) {
	for i, d := range direction.All() {
		assert.Equal(t, i, d.Index())
	}
}
