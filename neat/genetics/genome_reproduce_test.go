package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vspecky/hyper-darwin/neat"
)

func TestCrossoverInheritsMaleExcessAndDisjoint(t *testing.T) {
	sets := neat.New(1, 1, 10)
	r := neat.NewRandom(1)

	p1 := New(1, 1, false, r)
	p1.Fitness = 10
	p1.Conns = append(p1.Conns, NewConnection(99, 1, 2, 0.3, true))

	p2 := New(1, 1, false, r)
	p2.Fitness = 1

	child := Crossover(p1, p2, sets, r)

	found := false
	for _, c := range child.Conns {
		if c.Innov == 99 {
			found = true
		}
	}
	assert.True(t, found, "the fitter parent's excess gene is always inherited")
}

func TestCrossoverNeverInheritsLessFitParentsUniqueGenes(t *testing.T) {
	sets := neat.New(1, 1, 10)
	r := neat.NewRandom(2)

	p1 := New(1, 1, false, r)
	p1.Fitness = 1

	p2 := New(1, 1, false, r)
	p2.Fitness = 10
	p2.Conns = append(p2.Conns, NewConnection(123, 1, 2, 0.3, true))

	child := Crossover(p1, p2, sets, r)

	for _, c := range child.Conns {
		assert.NotEqual(t, Id(123), c.Innov, "the less fit parent's unique gene must never appear in the offspring")
	}
}

func TestCrossoverOffspringNodesComeFromMale(t *testing.T) {
	sets := neat.New(1, 1, 10)
	r := neat.NewRandom(3)

	p1 := New(1, 1, false, r)
	p1.Fitness = 5
	p2 := New(1, 1, false, r)
	p2.Fitness = 1

	child := Crossover(p1, p2, sets, r)
	assert.Equal(t, len(p1.NodeGenes), len(child.NodeGenes))
	assert.Equal(t, 0.0, child.Fitness)
}

func TestCrossoverMatchingGeneFromEitherParent(t *testing.T) {
	sets := neat.New(1, 1, 10)
	r := neat.NewRandom(4)

	p1 := New(1, 1, false, r)
	p1.Fitness = 5
	p2 := New(1, 1, false, r)
	p2.Fitness = 5
	for i := range p2.Conns {
		p2.Conns[i].Weight = 42
	}

	child := Crossover(p1, p2, sets, r)
	assert.Len(t, child.Conns, len(p1.Conns))
}
