// Package pattern defines the NxN exemplar windows the solver synthesises
// from, their cardinal edge slices, and the eight dihedral symmetry
// operations (four rotations, each with and without a reflection) used to
// expand an exemplar's sample set.
//
// A Pattern is immutable once constructed: Rotate, Reflect, and
// AllPermutations all return new values rather than mutating the receiver.
// Equality and the dedup Key are derived from (Size, Data) together, per
// the data model's invariant that two patterns are the same iff their
// size and row-major content match exactly — symmetric patterns are not
// auto-merged; callers that want that must dedup the permutation set
// themselves (see the extract package).
package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wfc/direction"
)

// ErrNotSquare indicates the supplied data slice's length is not a perfect
// square, so no NxN grid can be formed from it.
var ErrNotSquare = errors.New("pattern: data length is not a perfect square")

// Pattern is an immutable Size x Size grid of Data values in row-major
// order: Data[r*Size+c] is the cell at row r, column c.
type Pattern[Data comparable] struct {
	Size int
	Data []Data
}

// New constructs a Pattern from exactly Size*Size data cells in row-major
// order. Returns ErrNotSquare if len(data) has no integer square root.
func New[Data comparable](data []Data) (Pattern[Data], error) {
	size := isqrt(len(data))
	if size*size != len(data) {
		return Pattern[Data]{}, fmt.Errorf("pattern: len=%d: %w", len(data), ErrNotSquare)
	}

	// Defensive copy: the caller's backing array must not alias our
	// supposedly-immutable Data.
	cp := make([]Data, len(data))
	copy(cp, data)

	return Pattern[Data]{Size: size, Data: cp}, nil
}

// isqrt returns the integer square root of n (floor), for n >= 0.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// at returns the cell at (row, col).
func (p Pattern[Data]) at(row, col int) Data {
	return p.Data[row*p.Size+col]
}

// Edge returns the pattern's border on the given side, per §3's layout:
// North is the first row left-to-right, East the rightmost column
// top-to-bottom, South the last row left-to-right, West the leftmost
// column top-to-bottom.
func (p Pattern[Data]) Edge(d direction.Direction) EdgeSlice[Data] {
	values := make([]Data, p.Size)
	switch d {
	case direction.N:
		for c := 0; c < p.Size; c++ {
			values[c] = p.at(0, c)
		}
	case direction.S:
		for c := 0; c < p.Size; c++ {
			values[c] = p.at(p.Size-1, c)
		}
	case direction.E:
		for r := 0; r < p.Size; r++ {
			values[r] = p.at(r, p.Size-1)
		}
	case direction.W:
		for r := 0; r < p.Size; r++ {
			values[r] = p.at(r, 0)
		}
	default:
		panic(fmt.Sprintf("pattern: invalid Direction %v", d))
	}

	return EdgeSlice[Data]{Dir: d, Values: values}
}

// Rotate returns the pattern rotated 90° clockwise: the cell at (r, c)
// moves to (c, Size-1-r). Applying Rotate four times is the identity.
func (p Pattern[Data]) Rotate() Pattern[Data] {
	out := make([]Data, len(p.Data))
	n := p.Size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// new[r][c] = old[n-1-c][r]
			out[r*n+c] = p.at(n-1-c, r)
		}
	}

	return Pattern[Data]{Size: n, Data: out}
}

// Reflect returns the pattern mirrored across the vertical axis:
// (r, c) -> (r, Size-1-c). Applying Reflect twice is the identity.
func (p Pattern[Data]) Reflect() Pattern[Data] {
	out := make([]Data, len(p.Data))
	n := p.Size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r*n+c] = p.at(r, n-1-c)
		}
	}

	return Pattern[Data]{Size: n, Data: out}
}

// AllPermutations returns the eight dihedral permutations of p, in the
// fixed order {P, P', R, R', R², R²', R³, R³'} where primes denote
// reflection and powers denote rotation. Duplicates are permitted when p
// has internal symmetry; callers that dedup (e.g. extract.FrequencyBag)
// rely on that to recover the correct sampling weight.
func (p Pattern[Data]) AllPermutations() [8]Pattern[Data] {
	r0 := p
	r1 := r0.Rotate()
	r2 := r1.Rotate()
	r3 := r2.Rotate()

	return [8]Pattern[Data]{
		r0, r0.Reflect(),
		r1, r1.Reflect(),
		r2, r2.Reflect(),
		r3, r3.Reflect(),
	}
}

// Equal reports whether p and other have identical size and row-major
// content.
func (p Pattern[Data]) Equal(other Pattern[Data]) bool {
	if p.Size != other.Size || len(p.Data) != len(other.Data) {
		return false
	}
	for i := range p.Data {
		if p.Data[i] != other.Data[i] {
			return false
		}
	}

	return true
}

// Key returns a content-addressed string suitable for use as a map key
// when deduplicating patterns by (Size, Data) equality (see
// extract.FrequencyBag). Two patterns compare Equal iff their Key is
// identical.
func (p Pattern[Data]) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(p.Size))
	sb.WriteByte('|')
	for _, v := range p.Data {
		fmt.Fprintf(&sb, "%v,", v)
	}

	return sb.String()
}
