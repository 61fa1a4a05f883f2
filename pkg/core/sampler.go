package core

import "math/rand"

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewPixelSampler creates a sampler deterministically seeded from a base seed
// and a pixel coordinate. Every pixel gets an independent stream, so the
// rendered image does not depend on which worker processes which tile.
func NewPixelSampler(seed int64, x, y int) *RandomSampler {
	// Mix coordinates into the seed with distinct large primes to avoid
	// correlation between neighboring pixels.
	pixelSeed := seed ^ (int64(x)*73856093 + int64(y)*19349663)
	return &RandomSampler{random: rand.New(rand.NewSource(pixelSeed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}
