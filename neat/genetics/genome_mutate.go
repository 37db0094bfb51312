package genetics

import (
	"github.com/vspecky/hyper-darwin/neat"
	"github.com/vspecky/hyper-darwin/neat/activation"
)

// Mutate applies, in order, weight mutation to every connection, a
// structural add-connection attempt, and a structural add-node attempt,
// then re-sorts the connection list by innovation id. Both structural
// mutations are no-ops (not errors) when the genome has no legal target:
// a saturated genome for add-connection, or an empty connection list for
// add-node — these are ordinary evolutionary dead-ends, not invariant
// violations.
func (g *Genome) Mutate(hist *History, sets *neat.Settings, r neat.Random) {
	for i := range g.Conns {
		if r.Float64() < sets.WtMutRate {
			g.Conns[i].MutateWeight(sets, r)
		}
	}

	if r.Float64() < sets.ConnMutRate {
		g.addConn(hist, r)
	}

	if r.Float64() < sets.NodeMutRate {
		g.addNode(hist, r)
	}

	g.sortConns()
}

// addConn attempts to add a single new connection between two nodes that
// are not already directly connected. Candidate "from" nodes are
// non-output nodes that still have at least one legal "to" target; the
// from node and then the to node are each drawn uniformly from their
// candidate pools. If the genome is already fully connected, this is a
// no-op.
func (g *Genome) addConn(hist *History, r neat.Random) {
	var fromPool []Node
	for _, n := range g.NodeGenes {
		if n.X == 1 {
			continue
		}
		possibleTos := 0
		for _, tn := range g.NodeGenes {
			if tn.X > n.X {
				possibleTos++
			}
		}
		existing := 0
		for _, c := range g.Conns {
			if c.From == n.Innov {
				existing++
			}
		}
		if possibleTos > existing {
			fromPool = append(fromPool, n)
		}
	}

	if len(fromPool) == 0 {
		return
	}
	from := fromPool[r.IntN(len(fromPool))]

	var toPool []Node
	for _, n := range g.NodeGenes {
		if n.X <= from.X {
			continue
		}
		connected := false
		for _, c := range g.Conns {
			if c.From == from.Innov && c.To == n.Innov {
				connected = true
				break
			}
		}
		if !connected {
			toPool = append(toPool, n)
		}
	}

	if len(toPool) == 0 {
		return
	}
	to := toPool[r.IntN(len(toPool))]

	innov := hist.RegisterConn(from.Innov, to.Innov)
	g.Conns = append(g.Conns, NewConnection(innov, from.Innov, to.Innov, r.Float64(), true))
}

// addNode splits a uniformly chosen connection (enabled or not) with a new
// node: the original connection is disabled rather than removed, a new
// node is inserted at the midpoint of the split connection's endpoints,
// and two new connections replace it — an incoming connection of weight
// 1.0 and an outgoing connection that inherits the original weight. If the
// genome has no connections, this is a no-op.
func (g *Genome) addNode(hist *History, r neat.Random) {
	if len(g.Conns) == 0 {
		return
	}

	idx := r.IntN(len(g.Conns))
	splitConn := g.Conns[idx]

	details := hist.RegisterNodeSplit(splitConn)

	fromNode, _ := g.NodeByInnov(splitConn.From)
	toNode, _ := g.NodeByInnov(splitConn.To)

	x := (fromNode.X + toNode.X) / 2
	y := (fromNode.Y + toNode.Y) / 2

	newNode := NewNode(details.Node, x, y, activation.Sample(r))
	inConn := NewConnection(details.InConn, fromNode.Innov, newNode.Innov, 1.0, true)
	outConn := NewConnection(details.OutConn, newNode.Innov, toNode.Innov, splitConn.Weight, true)

	g.Conns[idx].Disable()
	g.NodeGenes = append(g.NodeGenes, newNode)
	g.Conns = append(g.Conns, inConn, outConn)

	g.sortNodes()
}
