// Command xor is a minimal host driver demonstrating the engine/host
// boundary described by the core: it owns fitness evaluation, the engine
// owns everything else. It evolves a population against the non-linearly
// separable XOR function until a genome crosses a fitness threshold or a
// generation budget is exhausted.
package main

import (
	"fmt"
	"os"

	"github.com/vspecky/hyper-darwin/neat"
	"github.com/vspecky/hyper-darwin/neat/genetics"
)

const (
	maxGenerations = 300
	fitnessGoal    = 3.5
	populationSize = 150
)

var xorCases = [][2]float64{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 1},
}

func main() {
	if err := neat.InitLogger("warn"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sets := neat.New(2, 1, populationSize)
	rng := neat.NewUnseededRandom()
	pop := genetics.NewPopulation(sets, rng)

	for gen := 0; gen < maxGenerations && pop.BestFitness <= fitnessGoal; gen++ {
		for _, genome := range pop.GetCitizens() {
			scoreXOR(genome)
		}
		pop.NextGeneration()
	}

	fmt.Printf("generations: %d\n", pop.Generations)
	fmt.Printf("best fitness: %.4f\n", pop.BestFitness)

	if pop.BestGenome == nil {
		fmt.Println("no solution found")
		return
	}

	for _, c := range xorCases {
		out, err := pop.BestGenome.FeedForward([]float64{c[0], c[1]})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%.0f xor %.0f = %.4f\n", c[0], c[1], out[0])
	}
}

// scoreXOR rewards a genome for matching the XOR truth table, exactly as
// this engine's reference implementation's XOR demo does: a perfect
// scorer accumulates 4.0 (1.0 per case), with (1 - out) credited for the
// two cases whose expected output is 0.
func scoreXOR(genome *genetics.Genome) {
	for i, c := range xorCases {
		out, err := genome.FeedForward([]float64{c[0], c[1]})
		if err != nil {
			neat.ErrorLog(err.Error())
			return
		}

		expectZero := i == 0 || i == 3
		if expectZero {
			genome.AddFitness(1 - out[0])
		} else {
			genome.AddFitness(out[0])
		}
	}
}
