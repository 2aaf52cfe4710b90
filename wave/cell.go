package wave

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/wfc/adjacency"
	"github.com/katalvlaran/wfc/direction"
)

// cell is the per-location superposition: which tiles remain possible,
// the per-tile per-direction support counts that justify each remaining
// tile, and the cached entropy terms.
//
// support is flattened as tile*4+dir.Index() to avoid a slice of slices
// per cell — with X·Y·T·4 counters dominating memory for nontrivial
// grids, the flat layout avoids one allocation per cell per tile.
type cell struct {
	probs []float64 // shared, read-only: probs[t] is tile t's probability

	remaining      []bool
	remainingCount int
	support        []int // flat: tile*4 + dir.Index()

	sumW     float64
	sumWLogW float64
}

// newCell returns a cell with every tile present, support seeded from idx,
// and entropy sums over every tile's probability.
func newCell(idx *adjacency.Index, probs []float64) *cell {
	n := idx.NumTiles()
	c := &cell{
		probs:          probs,
		remaining:      make([]bool, n),
		remainingCount: n,
		support:        make([]int, n*4),
	}

	for t := 0; t < n; t++ {
		c.remaining[t] = true
		for _, d := range direction.All() {
			c.support[t*4+d.Index()] = idx.SeedSupport(t, d)
		}
		p := probs[t]
		c.sumW += p
		c.sumWLogW += p * math.Log2(p)
	}

	return c
}

// isInvalid reports whether the cell's remaining set is empty (contradiction).
func (c *cell) isInvalid() bool {
	return c.remainingCount == 0
}

// isCollapsed reports whether exactly one tile remains.
func (c *cell) isCollapsed() bool {
	return c.remainingCount == 1
}

// isUncollapsed reports whether two or more tiles remain.
func (c *cell) isUncollapsed() bool {
	return c.remainingCount >= 2
}

// entropy returns the Shannon entropy of the remaining distribution,
// computed from the cached sums as log2(sumW) - sumWLogW/sumW, the
// numerically stable unnormalised-weight form. Only meaningful when
// isUncollapsed(); callers must not rely on this value for collapsed or
// invalid cells.
func (c *cell) entropy() float64 {
	return math.Log2(c.sumW) - c.sumWLogW/c.sumW
}

// collapse selects one remaining tile by weighted sampling proportional
// to probability, reduces the cell to just that tile, and returns every
// other previously-remaining tile id so the caller can seed propagation.
func (c *cell) collapse(rng *rand.Rand) []int {
	target := rng.Float64() * c.sumW

	chosen := -1
	acc := 0.0
	for t, present := range c.remaining {
		if !present {
			continue
		}
		acc += c.probs[t]
		if acc >= target {
			chosen = t
			break
		}
	}
	if chosen == -1 {
		// Floating-point rounding can leave target a hair above the
		// running sum; fall back to the last remaining tile scanned.
		for t := len(c.remaining) - 1; t >= 0; t-- {
			if c.remaining[t] {
				chosen = t
				break
			}
		}
	}

	eliminated := make([]int, 0, c.remainingCount-1)
	for t, present := range c.remaining {
		if present && t != chosen {
			eliminated = append(eliminated, t)
			c.remaining[t] = false
			for _, d := range direction.All() {
				c.support[t*4+d.Index()] = 0
			}
		}
	}

	c.remainingCount = 1
	p := c.probs[chosen]
	c.sumW = p
	c.sumWLogW = p * math.Log2(p)

	return eliminated
}

// onNeighborTileEliminated decrements the support count for tile t in
// direction d (the direction the eliminating neighbour lies in, from this
// cell's perspective). Returns (t, true) iff this decrement took support
// from 1 to 0, meaning t must now be removed from this cell's remaining
// set; the caller should enqueue (this cell, t) for further propagation.
// A call that finds t already removed or the counter already at 0 is a
// no-op returning (0, false) — duplicate propagation events are expected
// and must be idempotent, not errors. A decrement that leaves the counter
// positive also returns (0, false).
func (c *cell) onNeighborTileEliminated(t int, d direction.Direction) (int, bool) {
	if !c.remaining[t] {
		return 0, false
	}

	idx := t*4 + d.Index()
	if c.support[idx] == 0 {
		return 0, false
	}
	c.support[idx]--
	if c.support[idx] > 0 {
		return 0, false
	}

	c.remaining[t] = false
	c.remainingCount--
	p := c.probs[t]
	c.sumW -= p
	c.sumWLogW -= p * math.Log2(p)

	return t, true
}

// remainingTiles returns the ids still possible in this cell, ascending.
func (c *cell) remainingTiles() []int {
	out := make([]int, 0, c.remainingCount)
	for t, present := range c.remaining {
		if present {
			out = append(out, t)
		}
	}

	return out
}
