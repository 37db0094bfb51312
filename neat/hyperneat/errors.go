// Package hyperneat implements the HyperNEAT auxiliary evolution mode: an
// evolved genome is queried as a Compositional Pattern-Producing Network
// (CPPN) over a substrate's coordinate grid to synthesize that substrate's
// connection weights.
package hyperneat

import "errors"

// ErrTensorShape is returned when a HyperTensor is constructed from a
// ragged matrix, or one with fewer than two rows or two columns.
var ErrTensorShape = errors.New("hyperneat: tensor has an invalid shape")

// ErrHyperArity is returned when a CPPN's input arity does not match
// whether a third-parameter function was supplied: 4 inputs with no
// function, or 6 inputs with one.
var ErrHyperArity = errors.New("hyperneat: CPPN input arity does not match third-parameter function presence")
