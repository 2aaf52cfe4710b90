package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/adjacency"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/tileset"
)

func buildSet(t *testing.T, patterns [][]int) *tileset.Set[int] {
	t.Helper()
	ps := make([]pattern.Pattern[int], len(patterns))
	probs := make([]float64, len(patterns))
	for i, data := range patterns {
		p, err := pattern.New(data)
		require.NoError(t, err)
		ps[i] = p
		probs[i] = 1.0 / float64(len(patterns))
	}
	set, err := tileset.New(ps, probs)
	require.NoError(t, err)
	return set
}

func TestSeedSupportMatchesCompatibleTilesCount(t *testing.T) {
	set := buildSet(t, [][]int{
		{1, 1, 1, 1},
		{1, 1, 2, 2},
		{2, 2, 2, 2},
	})
	idx := adjacency.New(set)

	for _, a := range set.All() {
		for _, d := range direction.All() {
			assert.Equal(t, idx.SeedSupport(a.ID, d), len(idx.CompatibleTiles(a.ID, d)))
		}
	}
}

func TestCompatibilityIsDirectionallySymmetric(t *testing.T) {
	set := buildSet(t, [][]int{
		{1, 1, 1, 1},
		{1, 1, 2, 2},
		{2, 2, 2, 2},
		{3, 1, 3, 1},
	})
	idx := adjacency.New(set)

	for a := 0; a < set.Len(); a++ {
		for b := 0; b < set.Len(); b++ {
			for _, d := range direction.All() {
				assert.Equal(t,
					idx.Compatible(a, d, b),
					idx.Compatible(b, d.Opposite(), a),
					"a=%d d=%v b=%d", a, d, b,
				)
			}
		}
	}
}

func TestUniformTileCompatibleWithSelfEverywhere(t *testing.T) {
	set := buildSet(t, [][]int{{7, 7, 7, 7}})
	idx := adjacency.New(set)

	for _, d := range direction.All() {
		assert.True(t, idx.Compatible(0, d, 0))
		assert.Equal(t, 1, idx.SeedSupport(0, d))
	}
}
