package hyperneat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsTooFewRows(t *testing.T) {
	_, err := New([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrTensorShape)
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, ErrTensorShape)
}

func TestNewRejectsTooFewColumns(t *testing.T) {
	_, err := New([][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrTensorShape)
}

func TestNewAcceptsValidShape(t *testing.T) {
	tensor, err := New([][]float64{{1, 2}, {3, 4}})
	assert.NoError(t, err)
	rows, cols := tensor.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 3.0, tensor.At(1, 0))
}

func TestZerosRejectsSmallDims(t *testing.T) {
	_, err := Zeros(1, 5)
	assert.ErrorIs(t, err, ErrTensorShape)

	_, err = Zeros(5, 1)
	assert.ErrorIs(t, err, ErrTensorShape)
}

func TestZerosAcceptsValidDims(t *testing.T) {
	tensor, err := Zeros(3, 4)
	assert.NoError(t, err)
	rows, cols := tensor.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 0.0, tensor.At(1, 1))
}

func TestSetUpdatesValue(t *testing.T) {
	tensor, err := Zeros(2, 2)
	assert.NoError(t, err)
	tensor.Set(0, 1, 7.5)
	assert.Equal(t, 7.5, tensor.At(0, 1))
}
