package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the subset of *rand.Rand the simulation draws from.
type Rand interface {
	Float64() float64
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// NewRand returns the deterministic generator used for a given world seed.
func NewRand(seed int64) Rand {
	return seededRNG(seed)
}

func randRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func chance(r Rand, p float64) bool {
	return r.Float64() < p
}
