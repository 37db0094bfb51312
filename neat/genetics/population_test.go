package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vspecky/hyper-darwin/neat"
)

func scoreXORForTest(g *Genome) {
	cases := [][3]float64{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}}
	for _, c := range cases {
		out, err := g.FeedForward([]float64{c[0], c[1]})
		if err != nil {
			continue
		}
		diff := out[0] - c[2]
		if diff < 0 {
			diff = -diff
		}
		g.AddFitness(1 - diff)
	}
}

func TestNewPopulationSeedsExactSize(t *testing.T) {
	sets := neat.New(2, 1, 20)
	r := neat.NewRandom(1)
	pop := NewPopulation(sets, r)
	assert.Len(t, pop.GetCitizens(), 20)
}

func TestNextGenerationPreservesPopulationSize(t *testing.T) {
	sets := neat.New(2, 1, 30)
	r := neat.NewRandom(7)
	pop := NewPopulation(sets, r)

	for gen := 0; gen < 5; gen++ {
		for _, g := range pop.GetCitizens() {
			scoreXORForTest(g)
		}
		pop.NextGeneration()
		assert.Len(t, pop.GetCitizens(), int(sets.PopSize), "population size is restored every generation")
	}
}

func TestNextGenerationBestFitnessMonotonic(t *testing.T) {
	sets := neat.New(2, 1, 30)
	r := neat.NewRandom(13)
	pop := NewPopulation(sets, r)

	last := 0.0
	for gen := 0; gen < 10; gen++ {
		for _, g := range pop.GetCitizens() {
			scoreXORForTest(g)
		}
		pop.NextGeneration()
		assert.GreaterOrEqual(t, pop.BestFitness, last, "recorded best fitness never regresses")
		last = pop.BestFitness
	}
}

func TestNextGenerationMaintainsGenomeInvariants(t *testing.T) {
	sets := neat.New(2, 1, 25)
	r := neat.NewRandom(21)
	pop := NewPopulation(sets, r)

	for gen := 0; gen < 8; gen++ {
		for _, g := range pop.GetCitizens() {
			scoreXORForTest(g)
		}
		pop.NextGeneration()
	}

	for _, g := range pop.GetCitizens() {
		for i := 1; i < len(g.NodeGenes); i++ {
			assert.LessOrEqual(t, g.NodeGenes[i-1].X, g.NodeGenes[i].X)
		}
		for i := 1; i < len(g.Conns); i++ {
			assert.Less(t, g.Conns[i-1].Innov, g.Conns[i].Innov)
		}
		for _, c := range g.Conns {
			from, ok := g.NodeByInnov(c.From)
			assert.True(t, ok)
			to, ok := g.NodeByInnov(c.To)
			assert.True(t, ok)
			assert.Less(t, from.X, to.X)
		}
	}
}

func TestInnovationIdsReusedAcrossIndependentGenomes(t *testing.T) {
	sets := neat.New(2, 1, 2)
	r := neat.NewRandom(1)
	pop := NewPopulation(sets, r)
	hist := pop.hist

	a := New(2, 1, false, r)
	b := New(2, 1, false, r)

	ia := hist.RegisterConn(a.NodeGenes[0].Innov, a.NodeGenes[len(a.NodeGenes)-1].Innov)
	ib := hist.RegisterConn(b.NodeGenes[0].Innov, b.NodeGenes[len(b.NodeGenes)-1].Innov)

	assert.Equal(t, ia, ib, "the same structural mutation performed by two different genomes shares an innovation id")
}

func TestPopulationSpeciatesOnFirstGeneration(t *testing.T) {
	sets := neat.New(2, 1, 20)
	r := neat.NewRandom(1)
	pop := NewPopulation(sets, r)

	for _, g := range pop.GetCitizens() {
		scoreXORForTest(g)
	}
	pop.NextGeneration()

	assert.NotEmpty(t, pop.Species(), "at least one species exists after the first generation advance")
}
