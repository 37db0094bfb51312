package genetics

import "errors"

// ErrInputArityMismatch is returned by FeedForward when the supplied input
// vector's length differs from the genome's declared input count.
var ErrInputArityMismatch = errors.New("genetics: input length does not match genome's input arity")

// ErrMissingValue is returned by FeedForward when a node scheduled for
// activation, or an output node, has no accumulated input value: a
// non-input node none of whose incoming connections is enabled. Crossover
// can produce such a genome, since a hidden or output node's incoming genes
// may all be inherited disabled.
var ErrMissingValue = errors.New("genetics: no accumulated value for node scheduled for activation")
