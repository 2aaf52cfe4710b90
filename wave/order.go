package wave

import "math"

// totalOrderLess imposes a total order on float64, including NaN, so
// entropy comparison never panics or behaves inconsistently on malformed
// input (§4.F: "NaN treated as not less than any value"). It maps each
// float to a totally-ordered uint64 key via the standard IEEE-754
// bit-flip trick: for non-negative floats, set the sign bit; for
// negative floats, flip every bit. Every NaN, whatever its sign or
// payload, maps to the single largest key. Equal keys mean equal order
// position, which is what NaN needs — every NaN compares "not less than"
// every other NaN under this scheme, keeping ties well-defined.
func totalOrderLess(a, b float64) bool {
	return orderKey(a) < orderKey(b)
}

func orderKey(f float64) uint64 {
	if math.IsNaN(f) {
		return math.MaxUint64
	}
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}

	return bits | (1 << 63)
}
