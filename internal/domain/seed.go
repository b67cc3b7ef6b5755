package domain

import "math"

// SeededRandom folds a seed string into [0, 1) with a rolling polynomial
// hash (hash = hash*31 + byte, 32-bit) normalized by the max uint32.
// Derived fields (rating, reviews, image choice) depend on it being stable
// across runs for the same identifier, so this must not be swapped for a
// general-purpose PRNG.
func SeededRandom(seed string) float64 {
	var hash uint32
	for i := 0; i < len(seed); i++ {
		hash = hash*31 + uint32(seed[i])
	}
	return float64(hash) / float64(math.MaxUint32)
}
