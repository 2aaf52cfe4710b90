package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/pattern"
)

func TestNew_NotSquare(t *testing.T) {
	_, err := pattern.New([]int{1, 2, 3})
	require.ErrorIs(t, err, pattern.ErrNotSquare)
}

func TestRotate3x3(t *testing.T) {
	p, err := pattern.New([]int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	want := []int{
		7, 4, 1,
		8, 5, 2,
		9, 6, 3,
	}
	assert.Equal(t, want, p.Rotate().Data)
}

func TestRotate4x4(t *testing.T) {
	p, err := pattern.New([]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	require.NoError(t, err)

	want := []int{
		13, 9, 5, 1,
		14, 10, 6, 2,
		15, 11, 7, 3,
		16, 12, 8, 4,
	}
	assert.Equal(t, want, p.Rotate().Data)
}

func TestReflect4x4(t *testing.T) {
	p, err := pattern.New([]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	require.NoError(t, err)

	want := []int{
		4, 3, 2, 1,
		8, 7, 6, 5,
		12, 11, 10, 9,
		16, 15, 14, 13,
	}
	assert.Equal(t, want, p.Reflect().Data)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	p, err := pattern.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	r := p
	for i := 0; i < 4; i++ {
		r = r.Rotate()
	}
	assert.True(t, p.Equal(r))
}

func TestReflectTwiceIsIdentity(t *testing.T) {
	p, err := pattern.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	assert.True(t, p.Equal(p.Reflect().Reflect()))
}

func TestEdgeSlots(t *testing.T) {
	p, err := pattern.New([]int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, p.Edge(direction.N).Values)
	assert.Equal(t, []int{3, 6, 9}, p.Edge(direction.E).Values)
	assert.Equal(t, []int{7, 8, 9}, p.Edge(direction.S).Values)
	assert.Equal(t, []int{1, 4, 7}, p.Edge(direction.W).Values)
}

func TestAllPermutationsClosedUnderRotateReflect(t *testing.T) {
	p, err := pattern.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	perms := p.AllPermutations()
	assert.Len(t, perms, 8)

	for _, perm := range perms {
		rotated := perm.Rotate()
		reflected := perm.Reflect()
		assert.Contains(t, perms, rotated)
		assert.Contains(t, perms, reflected)
	}
}

func TestAllPermutationsOrder(t *testing.T) {
	p, err := pattern.New([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	perms := p.AllPermutations()

	r1 := p.Rotate()
	r2 := r1.Rotate()
	r3 := r2.Rotate()

	assert.True(t, perms[0].Equal(p))
	assert.True(t, perms[1].Equal(p.Reflect()))
	assert.True(t, perms[2].Equal(r1))
	assert.True(t, perms[3].Equal(r1.Reflect()))
	assert.True(t, perms[4].Equal(r2))
	assert.True(t, perms[5].Equal(r2.Reflect()))
	assert.True(t, perms[6].Equal(r3))
	assert.True(t, perms[7].Equal(r3.Reflect()))
}

func TestKeyMatchesEqual(t *testing.T) {
	a, err := pattern.New([]int{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := pattern.New([]int{1, 2, 3, 4})
	require.NoError(t, err)
	c, err := pattern.New([]int{1, 2, 3, 5})
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
