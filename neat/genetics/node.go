// Package genetics implements the NEAT genome representation: nodes and
// connections keyed by historical innovation id, the innovation registry
// that keeps those ids stable across a population, and the mutation,
// crossover and speciation operators that evolve genomes between
// generations.
package genetics

import (
	"fmt"

	"github.com/vspecky/hyper-darwin/neat/activation"
)

// Id is an innovation number: a stable identifier shared by every node or
// connection gene that arose from the same historical mutation.
type Id = uint32

// Node is a vertex in a genome's feed-forward graph. Its layer coordinate X
// places it among the input layer (X == 0), the output layer (X == 1), or a
// hidden layer in between (0 < X < 1); Y is a cosmetic layout coordinate
// with no effect on evaluation or node ordering. Two nodes are equal iff
// their innovation ids match.
type Node struct {
	Innov      Id
	X          float64
	Y          float64
	Activation activation.Kind
}

// NewNode constructs a node with the given innovation id, coordinates and activation.
func NewNode(innov Id, x, y float64, act activation.Kind) Node {
	return Node{Innov: innov, X: x, Y: y, Activation: act}
}

// Activate evaluates the node's activation function at val. Input-layer
// nodes (X == 0) — including the bias node, whose fed value is always 1.0 —
// pass their value through unchanged regardless of their assigned
// activation kind.
func (n Node) Activate(val float64) float64 {
	if n.X == 0 {
		return val
	}
	return n.Activation.Apply(val)
}

// Equal reports whether two nodes share an innovation id.
func (n Node) Equal(other Node) bool {
	return n.Innov == other.Innov
}

// String renders the node for debugging, matching the compact Node(id) form
// used throughout this engine's test failure output.
func (n Node) String() string {
	return fmt.Sprintf("Node(%d)", n.Innov)
}
