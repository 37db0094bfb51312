package genetics

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
)

// Genome implements gonum.org/v1/gonum/graph.Graph and graph.Weighted over
// its nodes and connections (enabled and disabled alike — a disabled
// connection is still an edge in the graph view, just tagged as such),
// grounded on the same pattern yaricom-goNEAT's network.Network uses to
// expose itself to gonum's graph algorithms.

// ID implements graph.Node.
func (n Node) ID() int64 { return int64(n.Innov) }

// Attributes implements graph/encoding.Attributer.
func (n Node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "x", Value: fmt.Sprintf("%f", n.X)},
		{Key: "activation", Value: n.Activation.String()},
	}
}

// DOTID implements graph/encoding/dot.Node.
func (n Node) DOTID() string { return n.String() }

// genomeEdge adapts a Connection, plus the nodes it connects, to graph.Edge and graph.WeightedEdge.
type genomeEdge struct {
	conn     Connection
	from, to Node
}

func (e genomeEdge) From() graph.Node         { return e.from }
func (e genomeEdge) To() graph.Node           { return e.to }
func (e genomeEdge) Weight() float64          { return e.conn.Weight }
func (e genomeEdge) ReversedEdge() graph.Edge { return e }

// Attributes implements graph/encoding.Attributer.
func (e genomeEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "weight", Value: fmt.Sprintf("%f", e.conn.Weight)},
		{Key: "enabled", Value: fmt.Sprintf("%v", e.conn.Enabled)},
	}
}

// Node implements graph.Graph.
func (g *Genome) Node(id int64) graph.Node {
	n, ok := g.NodeByInnov(Id(id))
	if !ok {
		return nil
	}
	return n
}

// Nodes implements graph.Graph.
func (g *Genome) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(g.NodeGenes))
	for i, n := range g.NodeGenes {
		nodes[i] = n
	}
	return newNodeIterator(nodes)
}

// From implements graph.Graph.
func (g *Genome) From(id int64) graph.Nodes {
	var nodes []graph.Node
	for _, c := range g.Conns {
		if c.From == Id(id) {
			if n, ok := g.NodeByInnov(c.To); ok {
				nodes = append(nodes, n)
			}
		}
	}
	return newNodeIterator(nodes)
}

// To implements graph.Directed.
func (g *Genome) To(id int64) graph.Nodes {
	var nodes []graph.Node
	for _, c := range g.Conns {
		if c.To == Id(id) {
			if n, ok := g.NodeByInnov(c.From); ok {
				nodes = append(nodes, n)
			}
		}
	}
	return newNodeIterator(nodes)
}

// HasEdgeBetween implements graph.Graph.
func (g *Genome) HasEdgeBetween(xid, yid int64) bool {
	return g.edgeBetween(xid, yid, false) != nil
}

// Edge implements graph.Graph.
func (g *Genome) Edge(uid, vid int64) graph.Edge {
	if e := g.edgeBetween(uid, vid, true); e != nil {
		return *e
	}
	return nil
}

// WeightedEdge implements graph.Weighted.
func (g *Genome) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if e := g.edgeBetween(uid, vid, true); e != nil {
		return *e
	}
	return nil
}

// Weight implements graph.Weighted.
func (g *Genome) Weight(xid, yid int64) (w float64, ok bool) {
	if e := g.edgeBetween(xid, yid, true); e != nil {
		return e.conn.Weight, true
	}
	return 0, false
}

// HasEdgeFromTo reports whether a directed connection runs from uid to vid.
func (g *Genome) HasEdgeFromTo(uid, vid int64) bool {
	return g.edgeBetween(uid, vid, true) != nil
}

func (g *Genome) edgeBetween(uid, vid int64, directed bool) *genomeEdge {
	for _, c := range g.Conns {
		if directed && c.From == Id(uid) && c.To == Id(vid) {
			from, _ := g.NodeByInnov(c.From)
			to, _ := g.NodeByInnov(c.To)
			return &genomeEdge{conn: c, from: from, to: to}
		}
		if !directed && ((c.From == Id(uid) && c.To == Id(vid)) || (c.From == Id(vid) && c.To == Id(uid))) {
			from, _ := g.NodeByInnov(c.From)
			to, _ := g.NodeByInnov(c.To)
			return &genomeEdge{conn: c, from: from, to: to}
		}
	}
	return nil
}

// nodeIterator is the definition of iterator for a list of nodes.
type nodeIterator struct {
	nodes []graph.Node
	index int
	curr  graph.Node
}

func newNodeIterator(nodes []graph.Node) graph.Nodes {
	return &nodeIterator{nodes: nodes}
}

// Next advances the iterator.
func (i *nodeIterator) Next() bool {
	if i.index < len(i.nodes) {
		i.curr = i.nodes[i.index]
		i.index++
		return true
	}
	i.curr = nil
	return false
}

// Len returns the number of items remaining in the iterator.
func (i *nodeIterator) Len() int {
	return len(i.nodes) - i.index
}

// Node returns the current Node from the iterator.
func (i *nodeIterator) Node() graph.Node {
	return i.curr
}

// Reset returns the iterator to its start position.
func (i *nodeIterator) Reset() {
	i.index = 0
	i.curr = nil
}

// DOTID implements graph/encoding/dot.Graph, used when rendering a genome with GraphViz.
func (g *Genome) DOTID() string { return "Genome" }
