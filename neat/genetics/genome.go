package genetics

import (
	"fmt"
	"math"
	"sort"

	"github.com/vspecky/hyper-darwin/neat"
	"github.com/vspecky/hyper-darwin/neat/activation"
)

// Genome is a candidate neural network: a multiset of nodes and
// connections, keyed by innovation id, together with the fitness the host
// has accumulated for it this generation.
//
// Invariants maintained across mutation:
//  1. NodeGenes are ordered by X ascending.
//  2. Connections are ordered by Innov ascending.
//  3. Every connection's From/To refers to a node present in NodeGenes.
//  4. For every connection, the From node's X is strictly less than the To
//     node's X (the genome is acyclic and strictly forward-layered).
//  5. At most one connection exists for a given (From, To) pair.
//  6. Fitness is non-negative.
type Genome struct {
	inputs  uint32
	outputs uint32

	NodeGenes []Node
	Conns     []Connection
	Fitness   float64
}

// New seeds a genome for the given input/output arity. Input nodes are
// assigned innovation ids 1..=inputs, the bias node inputs+1, and output
// nodes inputs+2..inputs+outputs+2; the genome starts fully connected from
// every input (including bias) to every output with no hidden nodes. When
// forCrossover is true, the genome is returned empty (no nodes, no
// connections) — Crossover populates it directly rather than via this seed
// path.
func New(inputs, outputs uint32, forCrossover bool, r neat.Random) *Genome {
	g := &Genome{
		inputs:    inputs,
		outputs:   outputs,
		NodeGenes: make([]Node, 0, inputs+outputs+1),
		Conns:     make([]Connection, 0, (inputs+1)*outputs),
	}

	if forCrossover {
		return g
	}

	dy := 1. / float64(inputs+1)
	dyCur := dy
	for i := Id(1); i <= inputs+1; i++ {
		g.NodeGenes = append(g.NodeGenes, NewNode(i, 0, dyCur, activation.Sample(r)))
		dyCur += dy
	}

	dy = 1. / float64(outputs+1)
	dyCur = dy
	for i := inputs + 2; i < inputs+outputs+2; i++ {
		g.NodeGenes = append(g.NodeGenes, NewNode(i, 1, dyCur, activation.Sample(r)))
		dyCur += dy
	}

	ctr := Id(1)
	for i := 0; i < int(inputs+1); i++ {
		from := g.NodeGenes[i].Innov
		for o := int(inputs + 1); o < len(g.NodeGenes); o++ {
			to := g.NodeGenes[o].Innov
			g.Conns = append(g.Conns, NewConnection(ctr, from, to, r.Float64(), true))
			ctr++
		}
	}

	return g
}

// Inputs returns the genome's declared input arity.
func (g *Genome) Inputs() uint32 { return g.inputs }

// Outputs returns the genome's declared output arity.
func (g *Genome) Outputs() uint32 { return g.outputs }

// InputCount satisfies the hyperneat.CPPN structural interface.
func (g *Genome) InputCount() int { return int(g.inputs) }

// AddFitness accumulates delta into the genome's fitness, saturating at
// zero: fitness never goes negative.
func (g *Genome) AddFitness(delta float64) {
	fitness := g.Fitness + delta
	if fitness < 0 {
		fitness = 0
	}
	g.Fitness = fitness
}

// FeedForward evaluates the genome as a feed-forward network over input,
// returning the raw values at the output nodes in innovation-id order
// (inputs+2 .. inputs+outputs+2). Nodes are processed in their maintained
// X-ascending order, which — because every connection strictly increases
// X — guarantees every node's accumulated input is fully summed before it
// is activated.
func (g *Genome) FeedForward(input []float64) ([]float64, error) {
	if len(input) != int(g.inputs) {
		return nil, ErrInputArityMismatch
	}

	values := make(map[Id]float64, len(g.NodeGenes))
	for i, v := range input {
		values[Id(i+1)] = v
	}
	values[g.inputs+1] = 1.0

	for _, n := range g.NodeGenes {
		accum, ok := values[n.Innov]
		if !ok {
			return nil, ErrMissingValue
		}

		activated := n.Activate(accum)

		for _, c := range g.Conns {
			if c.From != n.Innov || !c.Enabled {
				continue
			}
			values[c.To] += activated * c.Weight
		}
	}

	out := make([]float64, 0, g.outputs)
	for v := g.inputs + 2; v < g.inputs+g.outputs+2; v++ {
		val, ok := values[v]
		if !ok {
			return nil, ErrMissingValue
		}
		out = append(out, val)
	}
	return out, nil
}

// FeedForwardVector satisfies the hyperneat.CPPN structural interface.
func (g *Genome) FeedForwardVector(input []float64) ([]float64, error) {
	return g.FeedForward(input)
}

// FeedForwardScalar evaluates a single-output genome and rescales its sole
// output through 2*(sigmoid(-4.9*v) - 0.5), a convenience for hosts that
// want a bounded, zero-centered scalar rather than the raw accumulated
// value FeedForward returns. It is an error to call this on a genome whose
// Outputs() is not exactly 1.
func (g *Genome) FeedForwardScalar(input []float64) (float64, error) {
	out, err := g.FeedForward(input)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("genetics: FeedForwardScalar requires exactly one output, genome has %d", len(out))
	}
	sigmoid := 1. / (1. + math.Exp(4.9*out[0]))
	return 2 * (sigmoid - 0.5), nil
}

// Clone returns a deep copy of the genome: its NodeGenes and Conns slices
// are copied rather than shared, so mutating the clone never affects the
// original.
func (g *Genome) Clone() *Genome {
	clone := &Genome{
		inputs:    g.inputs,
		outputs:   g.outputs,
		Fitness:   g.Fitness,
		NodeGenes: make([]Node, len(g.NodeGenes)),
		Conns:     make([]Connection, len(g.Conns)),
	}
	copy(clone.NodeGenes, g.NodeGenes)
	copy(clone.Conns, g.Conns)
	return clone
}

func (g *Genome) sortNodes() {
	sort.SliceStable(g.NodeGenes, func(i, j int) bool { return g.NodeGenes[i].X < g.NodeGenes[j].X })
}

func (g *Genome) sortConns() {
	sort.SliceStable(g.Conns, func(i, j int) bool { return g.Conns[i].Innov < g.Conns[j].Innov })
}

// NodeByInnov returns the node with the given innovation id and true, or
// the zero Node and false if no such node exists.
func (g *Genome) NodeByInnov(innov Id) (Node, bool) {
	for _, n := range g.NodeGenes {
		if n.Innov == innov {
			return n, true
		}
	}
	return Node{}, false
}

func (g *Genome) String() string {
	res := "Genome {\n    Nodes {"
	for _, n := range g.NodeGenes {
		res += fmt.Sprintf("\n        %s,", n)
	}
	res += "\n    }\n    Conns {"
	for _, c := range g.Conns {
		res += fmt.Sprintf("\n        %s,", c)
	}
	res += "\n    }\n}"
	return res
}
