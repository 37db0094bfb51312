package genetics

import "github.com/vspecky/hyper-darwin/neat"

// Crossover produces an offspring genome from two parents. The fitter
// parent ("male"; ties favour parent1) contributes every disjoint and
// excess gene — the less fit parent's unique genes are never inherited,
// matching the canonical NEAT paper's asymmetric treatment of excess and
// disjoint genes. Matching genes are inherited from either parent with
// equal probability. The offspring's node set is a clone of the male's,
// and its fitness starts at zero.
func Crossover(parent1, parent2 *Genome, sets *neat.Settings, r neat.Random) *Genome {
	male, female := parent1, parent2
	if parent2.Fitness > parent1.Fitness {
		male, female = parent2, parent1
	}

	femaleGenes := make(map[Id]Connection, len(female.Conns))
	for _, c := range female.Conns {
		femaleGenes[c.Innov] = c
	}

	offspringGenes := make([]Connection, 0, len(male.Conns))

	for _, mConn := range male.Conns {
		fConn, matched := femaleGenes[mConn.Innov]
		if !matched {
			offspringGenes = append(offspringGenes, mConn)
			continue
		}

		var gene Connection
		if r.Float64() < 0.5 {
			gene = fConn
		} else {
			gene = mConn
		}

		maleEnabled, femaleEnabled := mConn.Enabled, fConn.Enabled
		switch {
		case maleEnabled != femaleEnabled:
			gene.Enabled = r.Float64() < sets.OffGeneOnRate
		case !maleEnabled && !femaleEnabled:
			gene.Enabled = r.Float64() < sets.OffInBothOnRate
		}

		offspringGenes = append(offspringGenes, gene)
	}

	offspring := New(male.inputs, male.outputs, true, r)
	offspring.Conns = offspringGenes
	offspring.NodeGenes = make([]Node, len(male.NodeGenes))
	copy(offspring.NodeGenes, male.NodeGenes)

	return offspring
}
