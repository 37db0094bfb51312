package genetics

import (
	"fmt"

	"github.com/vspecky/hyper-darwin/neat"
)

// Connection is a directed, weighted edge between two nodes, identified by
// the nodes' innovation ids rather than direct references — this keeps
// Connection a plain value that clones trivially and can never form an
// ownership cycle with the nodes it points at. Two connections are equal
// iff their innovation ids match.
type Connection struct {
	Innov   Id
	From    Id
	To      Id
	Weight  float64
	Enabled bool
}

// NewConnection constructs a connection with the given innovation id, endpoints, weight and enabled flag.
func NewConnection(innov Id, from, to Id, weight float64, enabled bool) Connection {
	return Connection{Innov: innov, From: from, To: to, Weight: weight, Enabled: enabled}
}

// Enable marks the connection as participating in feed-forward evaluation.
func (c *Connection) Enable() { c.Enabled = true }

// Disable excludes the connection from feed-forward evaluation without removing it from the genome.
func (c *Connection) Disable() { c.Enabled = false }

// Equal reports whether two connections share an innovation id.
func (c Connection) Equal(other Connection) bool {
	return c.Innov == other.Innov
}

// MutateWeight perturbs or replaces the connection's weight. With
// probability sets.WtShiftRate it nudges the weight by a draw from
// N(0, 0.04), clamped back onto [-1, 1]; otherwise it replaces the weight
// outright with a uniform draw on [-1, 1).
func (c *Connection) MutateWeight(sets *neat.Settings, r neat.Random) {
	const perturbStddev = 0.04

	if r.Float64() < sets.WtShiftRate {
		c.Weight += r.Normal(0, perturbStddev)
		if c.Weight < -1 {
			c.Weight = -1
		} else if c.Weight > 1 {
			c.Weight = 1
		}
	} else {
		c.Weight = r.Range(-1, 1)
	}
}

// String renders the connection for debugging.
func (c Connection) String() string {
	return fmt.Sprintf("Conn(%d, %d, %d)", c.Innov, c.From, c.To)
}
