package wiki

import "math/rand/v2"

// Random picks a uniformly distributed index in [0, n). Implementations must be
// safe for concurrent use, every chain of a batch draws from the same source.
type Random interface {
	IntN(n int) int
}

// globalRandom uses the process-wide generator of math/rand/v2
type globalRandom struct{}

// IntN returns a random number in [0, n)
func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // non-cryptographic randomness is fine for picking topics
}
