package neat

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random is the random source the engine draws from. It is injected at the
// Population boundary instead of relying on ambient package-level state, so
// a run can be made reproducible by supplying a seeded implementation.
type Random interface {
	// Float64 returns a uniform sample on [0, 1).
	Float64() float64
	// Range returns a uniform sample on [lo, hi).
	Range(lo, hi float64) float64
	// Normal returns a sample from a normal distribution with the given mean and standard deviation.
	Normal(mean, stddev float64) float64
	// IntN returns a uniform sample in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// defaultRandom is the out-of-the-box Random backed by math/rand for uniform
// draws and gonum's distuv for the Gaussian weight-perturbation sampler.
type defaultRandom struct {
	rng *rand.Rand
}

// NewRandom returns the default Random implementation seeded with seed.
// Two Populations constructed with NewRandom(s) for the same s draw
// identical sequences, making a run reproducible.
func NewRandom(seed int64) Random {
	return &defaultRandom{rng: rand.New(rand.NewSource(seed))}
}

// NewUnseededRandom returns the default Random implementation seeded from
// a draw of math/rand's global source, for callers that do not need
// reproducibility.
func NewUnseededRandom() Random {
	return NewRandom(rand.Int63())
}

func (d *defaultRandom) Float64() float64 {
	return d.rng.Float64()
}

func (d *defaultRandom) Range(lo, hi float64) float64 {
	return lo + d.rng.Float64()*(hi-lo)
}

func (d *defaultRandom) Normal(mean, stddev float64) float64 {
	n := distuv.Normal{Mu: mean, Sigma: stddev, Src: uint64Source{d.rng}}
	return n.Rand()
}

// uint64Source adapts the seeded *rand.Rand to the Uint64/Seed(uint64)
// source interface distuv samplers draw from.
type uint64Source struct{ rng *rand.Rand }

func (s uint64Source) Uint64() uint64   { return s.rng.Uint64() }
func (s uint64Source) Seed(seed uint64) { s.rng.Seed(int64(seed)) }

func (d *defaultRandom) IntN(n int) int {
	return d.rng.Intn(n)
}
