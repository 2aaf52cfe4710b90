package pattern

import "github.com/katalvlaran/wfc/direction"

// EdgeSlice is the ordered border of a pattern along one cardinal side,
// tagged with the Direction it faces within that pattern.
type EdgeSlice[Data comparable] struct {
	Dir    direction.Direction
	Values []Data
}

// CanAbut reports whether self (facing self.Dir from its own pattern) may
// sit directly against other (facing other.Dir from its pattern). Two
// edges can abut iff:
//
//  1. their directions are opposite (they face each other), and
//  2. they have equal length, and
//  3. self.Values[i] == other.Values[len-1-i] for every i.
//
// The reversal in (3) reflects that two adjacent tiles' shared border is
// traversed in opposite directions from each tile's own interior.
func (e EdgeSlice[Data]) CanAbut(other EdgeSlice[Data]) bool {
	if e.Dir != other.Dir.Opposite() {
		return false
	}
	if len(e.Values) != len(other.Values) {
		return false
	}

	n := len(e.Values)
	for i := 0; i < n; i++ {
		if e.Values[i] != other.Values[n-1-i] {
			return false
		}
	}

	return true
}
