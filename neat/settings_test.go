package neat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	s := New(3, 2, 150)
	assert.Equal(t, uint32(3), s.Inputs)
	assert.Equal(t, uint32(2), s.Outputs)
	assert.Equal(t, uint32(150), s.PopSize)
	assert.Equal(t, 0.05, s.ConnMutRate)
	assert.Equal(t, 0.03, s.NodeMutRate)
	assert.Equal(t, 0.8, s.WtMutRate)
	assert.Equal(t, 0.9, s.WtShiftRate)
	assert.Equal(t, 0.25, s.OffGeneOnRate)
	assert.Equal(t, 0.01, s.OffInBothOnRate)
	assert.Equal(t, 0.25, s.OnlyMutRate)
	assert.Equal(t, 1.0, s.DisjointCoeff)
	assert.Equal(t, 1.0, s.ExcessCoeff)
	assert.Equal(t, 0.4, s.WeightCoeff)
	assert.Equal(t, 1.0, s.ActivationCoeff)
	assert.Equal(t, 3.0, s.SpeciationThresh)
	assert.Equal(t, uint32(15), s.AllowedStagnancy)
}

func TestFluentSetters(t *testing.T) {
	s := New(2, 1, 10).
		WithConnMutRate(0.1).
		WithNodeMutRate(0.2).
		WithSpeciationThreshold(4.0).
		WithAllowedStagnancy(20)

	assert.Equal(t, 0.1, s.ConnMutRate)
	assert.Equal(t, 0.2, s.NodeMutRate)
	assert.Equal(t, 4.0, s.SpeciationThresh)
	assert.Equal(t, uint32(20), s.AllowedStagnancy)
}

func TestHyperSettingsDefaults(t *testing.T) {
	h := NewHyperSettings()
	assert.Equal(t, 0.2, h.MinWeight)
	assert.Equal(t, 3.0, h.MaxWeight)
}

func TestScaledWeightDeadBand(t *testing.T) {
	h := NewHyperSettings()
	assert.Equal(t, 0.0, h.ScaledWeight(0.1))
	assert.Equal(t, 0.0, h.ScaledWeight(-0.1))
	assert.Equal(t, 0.0, h.ScaledWeight(0.0))
}

func TestScaledWeightOddAndBounded(t *testing.T) {
	h := NewHyperSettings()
	for _, w := range []float64{0.25, 0.5, 1.0, 1.5, 2.9, 3.0, 10.0} {
		pos := h.ScaledWeight(w)
		neg := h.ScaledWeight(-w)
		assert.InDelta(t, pos, -neg, 1e-9, "ScaledWeight should be odd outside the dead band")
		assert.LessOrEqual(t, absf(pos), h.MaxWeight+1e-9)
	}
}

func TestScaledWeightAtMaxIsBounded(t *testing.T) {
	h := NewHyperSettings()
	assert.InDelta(t, h.MaxWeight, h.ScaledWeight(h.MaxWeight), 1e-9)
	assert.InDelta(t, -h.MaxWeight, h.ScaledWeight(-h.MaxWeight), 1e-9)
}
