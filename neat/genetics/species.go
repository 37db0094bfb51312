package genetics

import (
	"math"
	"sort"

	"github.com/vspecky/hyper-darwin/neat"
)

// Species is a cluster of genomes considered genetically compatible. Its
// Representative is a snapshot taken when the species was created and is
// used for compatibility testing for the species' entire lifetime, even as
// its membership churns every generation.
type Species struct {
	ID         uint32
	Genomes    []*Genome
	MaxFitness float64
	AvgFitness float64
	Stagnancy  uint32

	representative *Genome

	AssignedOffspring int
}

// NewSpecies creates a new species with id, seeded by head as both its
// first member and its compatibility representative.
func NewSpecies(id uint32, head *Genome) *Species {
	return &Species{
		ID:             id,
		Genomes:        []*Genome{head},
		MaxFitness:     head.Fitness,
		AvgFitness:     head.Fitness,
		representative: head.Clone(),
	}
}

// CanAccommodate reports whether genome is compatible enough with this
// species' representative to join it, per the NEAT compatibility distance
//
//	δ = c1*D/N + c2*E/N + c3*W/M + c4*A/N
//
// where D, E are disjoint/excess gene counts, W is the summed absolute
// weight difference over matching genes, M is the matching gene count, A
// is the count of matching-node activation mismatches, and N is the larger
// genome's gene count (floored to 1 for genomes smaller than 20 genes, the
// small-genome correction from the original NEAT paper). A genome with no
// genes in common with the representative never accommodates.
func (s *Species) CanAccommodate(genome *Genome, sets *neat.Settings) bool {
	repr := s.representative
	if len(repr.Conns) == 0 || len(genome.Conns) == 0 {
		return false
	}

	a := align(repr.Conns, genome.Conns)
	if a.matching == 0 {
		return false
	}

	n := math.Max(float64(len(repr.Conns)), float64(len(genome.Conns)))
	if n < 20 {
		n = 1
	}

	activ := activationMismatches(repr, genome)

	delta := sets.DisjointCoeff*a.disjoint/n +
		sets.ExcessCoeff*a.excess/n +
		sets.WeightCoeff*a.weightDiff/a.matching +
		sets.ActivationCoeff*activ/n

	return delta < sets.SpeciationThresh
}

// FitnessSharing divides every member's fitness by the species size
// (penalizing crowded niches) and records the post-division mean as
// AvgFitness.
func (s *Species) FitnessSharing() {
	size := float64(len(s.Genomes))

	total := 0.
	for _, g := range s.Genomes {
		g.Fitness /= size
		total += g.Fitness
	}

	s.AvgFitness = total / size
}

// selectParent performs fitness-proportional selection: a threshold is
// drawn uniformly on [0, totalFitness), and the first member whose running
// fitness sum strictly exceeds it is returned. Falls back to the first
// member if, due to floating point error, the scan completes without a
// selection.
func (s *Species) selectParent(r neat.Random) *Genome {
	total := 0.
	for _, g := range s.Genomes {
		total += g.Fitness
	}

	threshold := r.Range(0, total)

	running := 0.
	for _, g := range s.Genomes {
		running += g.Fitness
		if running > threshold {
			return g
		}
	}

	return s.Genomes[0]
}

// ProduceOffspring fills amt offspring slots. Each slot independently is,
// with probability sets.OnlyMutRate, a clone of a uniformly chosen member
// (the caller is expected to mutate it); otherwise it is the crossover
// child of two fitness-proportionally selected parents, which may coincide.
func (s *Species) ProduceOffspring(amt int, sets *neat.Settings, r neat.Random) []*Genome {
	offspring := make([]*Genome, 0, amt)

	for i := 0; i < amt; i++ {
		if r.Float64() < sets.OnlyMutRate {
			offspring = append(offspring, s.Genomes[r.IntN(len(s.Genomes))].Clone())
		} else {
			parent1 := s.selectParent(r)
			parent2 := s.selectParent(r)
			offspring = append(offspring, Crossover(parent1, parent2, sets, r))
		}
	}

	return offspring
}

// UpdateStagnancy compares the species' best member (Genomes[0], assuming
// SortGenomes has already run this generation) against the historic
// MaxFitness. A strict improvement resets Stagnancy to zero and raises
// MaxFitness; a tie or regression increments Stagnancy. An empty species
// saturates Stagnancy at its maximum value.
func (s *Species) UpdateStagnancy() {
	if len(s.Genomes) == 0 {
		s.Stagnancy = math.MaxUint32
		return
	}

	fitness := s.Genomes[0].Fitness
	if fitness <= s.MaxFitness {
		s.Stagnancy++
	} else {
		s.Stagnancy = 0
		s.MaxFitness = fitness
	}
}

// CullLowerHalf truncates the species to its fitness-sorted upper half
// (ceil(size/2) members), assuming SortGenomes has already run. Species of
// size two or fewer are left untouched.
func (s *Species) CullLowerHalf() {
	size := len(s.Genomes)
	if size <= 2 {
		return
	}

	keep := size / 2
	if size%2 != 0 {
		keep++
	}
	s.Genomes = s.Genomes[:keep]
}

// AddGenome appends genome to this species' current member list.
func (s *Species) AddGenome(genome *Genome) {
	s.Genomes = append(s.Genomes, genome)
}

// SortGenomes orders the species' members by fitness descending.
func (s *Species) SortGenomes() {
	sort.SliceStable(s.Genomes, func(i, j int) bool { return s.Genomes[i].Fitness > s.Genomes[j].Fitness })
}

// Clear empties the species' member list ahead of re-speciation, leaving
// its representative, stagnancy and fitness history untouched.
func (s *Species) Clear() {
	s.Genomes = s.Genomes[:0]
}
