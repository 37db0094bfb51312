package hyperneat

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// HyperTensor is a rectangular carrier used as CPPN input/output for
// HyperNEAT: a substrate's cell values, or its synthesized connection
// weights. It is backed by gonum's dense matrix type rather than a
// hand-rolled [][]float64, matching the numerics stack the rest of this
// engine's retrieval pack reaches for.
type HyperTensor struct {
	values *mat.Dense
	rows   int
	cols   int
}

// New constructs a HyperTensor from a non-ragged 2D slice with at least 2
// rows and 2 columns. It returns ErrTensorShape, wrapped with the specific
// cause, for too few rows, a ragged row, or too few columns.
func New(rows [][]float64) (*HyperTensor, error) {
	if len(rows) < 2 {
		return nil, errors.Wrapf(ErrTensorShape, "got %d rows, want at least 2", len(rows))
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrTensorShape, "row %d has %d columns, row 0 has %d", i, len(row), cols)
		}
	}

	if cols < 2 {
		return nil, errors.Wrapf(ErrTensorShape, "got %d columns, want at least 2", cols)
	}

	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return &HyperTensor{values: mat.NewDense(len(rows), cols, flat), rows: len(rows), cols: cols}, nil
}

// Zeros constructs an all-zero HyperTensor with m rows and n columns, both
// of which must be at least 2.
func Zeros(m, n int) (*HyperTensor, error) {
	if m < 2 || n < 2 {
		return nil, errors.Wrapf(ErrTensorShape, "both dimensions must be at least 2, got %dx%d", m, n)
	}
	return &HyperTensor{values: mat.NewDense(m, n, nil), rows: m, cols: n}, nil
}

// Dims returns the tensor's row and column counts.
func (t *HyperTensor) Dims() (rows, cols int) { return t.rows, t.cols }

// At returns the value at (row, col).
func (t *HyperTensor) At(row, col int) float64 { return t.values.At(row, col) }

// Set assigns the value at (row, col).
func (t *HyperTensor) Set(row, col int, v float64) { t.values.Set(row, col, v) }

// Dense exposes the underlying gonum matrix, for callers that want to run
// gonum linear-algebra routines directly over the substrate.
func (t *HyperTensor) Dense() *mat.Dense { return t.values }
