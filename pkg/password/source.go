package password

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Source is a uniform random provider. IntN returns a value in [0, n) and may
// panic when n <= 0. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a ChaCha8 based source seeded from the operating system.
func NewSource() Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:]) // crypto/rand.Read never returns an error

	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededSource returns a deterministic source for reproducible output.
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}
