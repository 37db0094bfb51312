package activation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSampler struct{ r *rand.Rand }

func (s stubSampler) IntN(n int) int { return s.r.Intn(n) }

func TestSampleCoversAllSixKinds(t *testing.T) {
	r := stubSampler{rand.New(rand.NewSource(7))}
	seen := make(map[Kind]bool)
	for i := 0; i < 2000; i++ {
		seen[Sample(r)] = true
	}
	assert.Len(t, seen, 6, "all six activation kinds should be reachable")
}

func TestApplyLinear(t *testing.T) {
	assert.Equal(t, 2.5, Linear.Apply(2.5))
	assert.Equal(t, -2.5, Linear.Apply(-2.5))
}

func TestApplyAbsolute(t *testing.T) {
	assert.Equal(t, 3.0, Absolute.Apply(-3.0))
	assert.Equal(t, 3.0, Absolute.Apply(3.0))
}

func TestApplySigmoidSteepness(t *testing.T) {
	got := Sigmoid.Apply(0)
	assert.InDelta(t, 0.5, got, 1e-9)

	got = Sigmoid.Apply(1)
	want := 1. / (1. + math.Exp(-4.9))
	assert.InDelta(t, want, got, 1e-9)
}

func TestApplySineCosineGaussian(t *testing.T) {
	assert.InDelta(t, math.Sin(1.2), Sine.Apply(1.2), 1e-9)
	assert.InDelta(t, math.Cos(1.2), Cosine.Apply(1.2), 1e-9)
	assert.InDelta(t, math.Exp(-1.2*1.2/2), Gaussian.Apply(1.2), 1e-9)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sigmoid", Sigmoid.String())
	assert.Equal(t, "gaussian", Gaussian.String())
}
