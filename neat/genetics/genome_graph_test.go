package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/vspecky/hyper-darwin/neat"
)

func TestGenomeNodesMatchesGraphNodes(t *testing.T) {
	r := neat.NewRandom(1)
	g := New(2, 1, false, r)

	it := g.Nodes()
	count := 0
	for it.Next() {
		count++
	}
	assert.Equal(t, len(g.NodeGenes), count)
}

func TestGenomeEdgeEndpointsAreGraphNodes(t *testing.T) {
	r := neat.NewRandom(1)
	g := New(2, 1, false, r)

	for _, c := range g.Conns {
		assert.NotNil(t, g.Node(int64(c.From)))
		assert.NotNil(t, g.Node(int64(c.To)))
		assert.True(t, g.HasEdgeFromTo(int64(c.From), int64(c.To)))
	}
}

func TestGenomeWeightMatchesConnection(t *testing.T) {
	r := neat.NewRandom(1)
	g := New(2, 1, false, r)
	c := g.Conns[0]

	w, ok := g.Weight(int64(c.From), int64(c.To))
	assert.True(t, ok)
	assert.Equal(t, c.Weight, w)
}

func TestGenomeGraphIsAcyclic(t *testing.T) {
	r := neat.NewRandom(1)
	sets := neat.New(2, 1, 10)
	hist := NewHistory(2, 1)
	g := New(2, 1, false, r)
	for i := 0; i < 20; i++ {
		g.Mutate(hist, sets, r)
	}

	_, err := topo.Sort(g)
	assert.NoError(t, err, "a genome with strictly increasing layer coordinates along every edge is acyclic")
}
