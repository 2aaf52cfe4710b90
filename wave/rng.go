package wave

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
//
// Determinism: the same seed always produces the same *rand.Rand state,
// and math/rand.Rand is not goroutine-safe — each Wave owns exactly one
// and must not share it across goroutines.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
