package tileset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/tileset"
)

func mustPattern(t *testing.T, data []int) pattern.Pattern[int] {
	t.Helper()
	p, err := pattern.New(data)
	require.NoError(t, err)
	return p
}

func TestNew_Empty(t *testing.T) {
	_, err := tileset.New[int](nil, nil)
	require.ErrorIs(t, err, tileset.ErrEmpty)
}

func TestNew_BadProbability(t *testing.T) {
	p := mustPattern(t, []int{1, 1, 1, 1})
	_, err := tileset.New([]pattern.Pattern[int]{p}, []float64{0})
	require.ErrorIs(t, err, tileset.ErrBadProbability)

	_, err = tileset.New([]pattern.Pattern[int]{p}, []float64{1.5})
	require.ErrorIs(t, err, tileset.ErrBadProbability)
}

func TestNew_DenseIDs(t *testing.T) {
	a := mustPattern(t, []int{1, 1, 1, 1})
	b := mustPattern(t, []int{2, 2, 2, 2})

	set, err := tileset.New([]pattern.Pattern[int]{a, b}, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, 0, set.Tile(0).ID)
	assert.Equal(t, 1, set.Tile(1).ID)
}

func TestIsCompatible(t *testing.T) {
	uniform := mustPattern(t, []int{1, 1, 1, 1})
	set, err := tileset.New([]pattern.Pattern[int]{uniform}, []float64{1})
	require.NoError(t, err)

	tile := set.Tile(0)
	assert.True(t, tile.IsCompatible(tile, direction.N))
	assert.True(t, tile.IsCompatible(tile, direction.E))
}
