// Package randutil centralises how game engines obtain their random sources.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so that a single --seed flag
// reproduces a whole play session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTimeSeeded returns a generator seeded from the wall clock along with the
// seed used, so callers can log it for replay.
func NewTimeSeeded() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Split derives an independent child generator from parent. Parallel workers
// each take one so they never share a source.
func Split(parent *rand.Rand) *rand.Rand {
	return New(parent.Int64())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
