package genetics

import (
	"sort"

	"github.com/vspecky/hyper-darwin/neat"
)

// Population is the top-level evolutionary driver: it seeds the initial
// genomes, exposes them to the host for fitness scoring, and advances them
// one generation at a time via speciation, fitness sharing, offspring
// allocation, reproduction and mutation.
type Population struct {
	sets *neat.Settings
	rand neat.Random

	population []*Genome
	species    []*Species
	hist       *History

	BestFitness float64
	BestGenome  *Genome
	Generations uint64

	nextSpeciesID uint32
}

// NewPopulation seeds a fresh population of sets.PopSize genomes for the
// input/output arity and tunables in sets, drawing randomness from r.
func NewPopulation(sets *neat.Settings, r neat.Random) *Population {
	p := &Population{
		sets:          sets,
		rand:          r,
		population:    make([]*Genome, 0, sets.PopSize),
		hist:          NewHistory(sets.Inputs, sets.Outputs),
		nextSpeciesID: 1,
	}

	for i := uint32(0); i < sets.PopSize; i++ {
		p.population = append(p.population, New(sets.Inputs, sets.Outputs, false, r))
	}

	return p
}

// GetCitizens exposes the current generation's genomes for the host to
// score: the host should iterate the slice, evaluate each genome via
// FeedForward/FeedForwardScalar, and report fitness via AddFitness.
// Re-entering NextGeneration while the host still holds this slice is
// undefined; release it first.
func (p *Population) GetCitizens() []*Genome {
	return p.population
}

// Species exposes the current species groupings, for diagnostics and tests.
func (p *Population) Species() []*Species {
	return p.species
}

// NextGeneration advances the population by one generation: it sorts by
// fitness, snapshots the champion, re-speciates, updates each species'
// stagnancy/fitness-sharing/culling, drops stagnant or under-allocated
// species, apportions offspring by share of average fitness, reproduces,
// mutates, and pads any shortfall from the champion so the new population
// always has exactly sets.PopSize members.
func (p *Population) NextGeneration() {
	sort.SliceStable(p.population, func(i, j int) bool { return p.population[i].Fitness > p.population[j].Fitness })

	thisChamp := p.population[0].Clone()
	if thisChamp.Fitness > p.BestFitness {
		p.BestFitness = thisChamp.Fitness
		p.BestGenome = thisChamp.Clone()
		neat.InfoLog("new population best genome recorded")
	}
	thisChamp.Fitness = 0

	p.speciate()

	for _, s := range p.species {
		s.SortGenomes()
		s.UpdateStagnancy()
		s.FitnessSharing()
		s.CullLowerHalf()
	}

	allowedStagnancy := p.sets.AllowedStagnancy
	p.species = filterSpecies(p.species, func(s *Species) bool { return s.Stagnancy < allowedStagnancy })

	totalAvgFitness := 0.
	for _, s := range p.species {
		totalAvgFitness += s.AvgFitness
	}

	popSize := p.sets.PopSize
	for _, s := range p.species {
		if totalAvgFitness > 0 {
			s.AssignedOffspring = int(s.AvgFitness / totalAvgFitness * float64(popSize))
		} else {
			s.AssignedOffspring = 0
		}
	}

	p.species = filterSpecies(p.species, func(s *Species) bool { return s.AssignedOffspring > 0 })

	progeny := make([]*Genome, 0, popSize)

	for _, s := range p.species {
		newOffspring := s.AssignedOffspring

		if len(s.Genomes) > 3 {
			champ := s.Genomes[0].Clone()
			champ.Fitness = 0
			progeny = append(progeny, champ)
			newOffspring--
		}

		for _, child := range s.ProduceOffspring(newOffspring, p.sets, p.rand) {
			child.Mutate(p.hist, p.sets, p.rand)
			child.Fitness = 0
			progeny = append(progeny, child)
		}
	}

	if uint32(len(progeny)) < popSize {
		neat.WarnLog("population fell short of target size; padding from champion")
	}
	for uint32(len(progeny)) < popSize {
		another := thisChamp.Clone()
		another.Mutate(p.hist, p.sets, p.rand)
		progeny = append(progeny, another)
	}

	p.population = progeny
	p.Generations++
}

// speciate clears every species' member list, then assigns each current
// population member to the first existing species whose representative
// accommodates it, creating a new species when none does. The population
// buffer is emptied once every member has migrated into a species bucket.
func (p *Population) speciate() {
	for _, s := range p.species {
		s.Clear()
	}

outer:
	for _, genome := range p.population {
		for _, s := range p.species {
			if s.CanAccommodate(genome, p.sets) {
				s.AddGenome(genome)
				continue outer
			}
		}

		newSpec := NewSpecies(p.nextSpeciesID, genome)
		p.nextSpeciesID++
		p.species = append(p.species, newSpec)
		neat.DebugLog("created new species")
	}

	p.population = p.population[:0]
}

func filterSpecies(species []*Species, keep func(*Species) bool) []*Species {
	out := species[:0]
	for _, s := range species {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
