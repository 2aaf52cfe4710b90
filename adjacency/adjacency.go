// Package adjacency compiles, once per tileset.Set, the pairwise
// compatibility table the solver checks on every propagation step: for
// every ordered (tile, direction, tile) triple, whether the first tile
// may have the second as its neighbour in that direction.
//
// The table is stored as a bitset-of-tile-ids per (tile, direction) pair,
// chosen for compact memory and fast neighbour-set iteration during
// propagation, following the same flat, row-major backing store idiom as
// a dense matrix, but over bits rather than float64s.
package adjacency

import (
	"math/bits"

	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/tileset"
)

const wordBits = 64

// Index is the compiled adjacency table for a tileset.Set of T tiles.
// Once built it is immutable and safe to share across any number of
// concurrent waves.
type Index struct {
	numTiles int
	words    int // uint64 words needed to hold numTiles bits

	// compat holds one bitset row per (tile, direction), flattened as
	// row = tile*4 + dir.Index(), each row `words` uint64s wide.
	// Bit b of row (tile, dir) is set iff tile b is compatible with
	// `tile` on side `dir`.
	compat []uint64

	// seedSupport[tile*4+dir.Index()] is the number of tiles compatible
	// with `tile` on side `dir`: the value every cell's support counter
	// for `tile` is initialised to.
	seedSupport []int
}

// rowOf returns the flattened (tile, direction) row index into compat.
func rowOf(tile int, d direction.Direction) int {
	return tile*4 + d.Index()
}

// New compiles the adjacency index for set by quadratic enumeration:
// for every ordered pair (a, b) of tiles and every direction d, a bit is
// set iff a.IsCompatible(b, d). seedSupport[a][d] is then the popcount of
// that row — the number of distinct tiles that could legally sit d-ward
// of a cell containing a.
//
// Complexity: O(T² · 4) time, O(T² / 64) memory for the bitset plus
// O(T · 4) for seedSupport.
func New[Data comparable](set *tileset.Set[Data]) *Index {
	n := set.Len()
	words := (n + wordBits - 1) / wordBits
	if words == 0 {
		words = 1
	}

	idx := &Index{
		numTiles:    n,
		words:       words,
		compat:      make([]uint64, n*4*words),
		seedSupport: make([]int, n*4),
	}

	tiles := set.All()
	for _, a := range tiles {
		for _, dir := range direction.All() {
			row := rowOf(a.ID, dir)
			base := row * words
			count := 0
			for _, b := range tiles {
				if a.IsCompatible(b, dir) {
					idx.compat[base+b.ID/wordBits] |= 1 << uint(b.ID%wordBits)
					count++
				}
			}
			idx.seedSupport[row] = count
		}
	}

	return idx
}

// NumTiles returns T, the number of tiles the index was built over.
func (idx *Index) NumTiles() int {
	return idx.numTiles
}

// Compatible reports whether tile b may sit in direction d from a cell
// containing tile a.
func (idx *Index) Compatible(a int, d direction.Direction, b int) bool {
	row := rowOf(a, d)
	base := row * idx.words
	word := idx.compat[base+b/wordBits]

	return word&(1<<uint(b%wordBits)) != 0
}

// SeedSupport returns the number of tiles compatible with tile a on side
// d — the initial value every new cell's support counter for a is seeded
// with.
func (idx *Index) SeedSupport(a int, d direction.Direction) int {
	return idx.seedSupport[rowOf(a, d)]
}

// CompatibleTiles returns, in ascending id order, every tile id compatible
// with a on side d. Used by callers that want to enumerate neighbours
// rather than test membership: wave.Step calls it once per direction for
// every propagation event, to find each tile whose support the eliminated
// tile was contributing to.
func (idx *Index) CompatibleTiles(a int, d direction.Direction) []int {
	row := rowOf(a, d)
	base := row * idx.words

	out := make([]int, 0, idx.numTiles)
	for w := 0; w < idx.words; w++ {
		word := idx.compat[base+w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			id := w*wordBits + b
			if id < idx.numTiles {
				out = append(out, id)
			}
			word &= word - 1
		}
	}

	return out
}
