package engine

import (
	"math/rand"
)

// Sample draws at most size values without replacement from values, using
// a PRNG seeded with seed so repeated draws with the same inputs are
// reproducible. When the input is no larger than size, all values are
// returned in order. Sampling state is never shared between draws; each
// call builds its own source.
func Sample(values []float64, size int, seed int64) []float64 {
	if len(values) <= size {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(values))

	out := make([]float64, size)
	for i := 0; i < size; i++ {
		out[i] = values[perm[i]]
	}
	return out
}
