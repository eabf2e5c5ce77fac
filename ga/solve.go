package ga

import (
	"math"

	"github.com/dispatchcraft/parcelopt/cargo"
	"github.com/dispatchcraft/parcelopt/rng"
	"golang.org/x/sync/errgroup"
)

// Solve evolves Params.Generations generations of protect-bit chromosomes
// against steps and baseRevenue (the cargo package's output for the tour
// under optimization), returning the best chromosome found and the
// per-generation best-fitness history.
func Solve(steps []cargo.Step, baseRevenue float64, params Params) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	l := len(steps)
	if l == 0 {
		history := make([]float64, params.Generations)
		for i := range history {
			history[i] = baseRevenue
		}
		return Result{ProtectBits: []int{}, History: history}, nil
	}

	r := rng.FromSeed(params.Seed)

	pop := make([]chromosome, params.Population)
	for i := range pop {
		pop[i] = chromosome{bits: randomChromosome(l, r)}
	}

	history := make([]float64, params.Generations)
	var bestBits []int
	bestFitness := math.Inf(-1)

	for gen := 0; gen < params.Generations; gen++ {
		if err := evaluateGeneration(pop, steps, baseRevenue, params.Parallel); err != nil {
			return Result{}, err
		}

		for _, c := range pop {
			if c.fitness > bestFitness {
				bestFitness = c.fitness
				bestBits = append([]int(nil), c.bits...)
				if params.Logger != nil {
					params.Logger.Debug().Int("generation", gen).Float64("fitness", bestFitness).Msg("ga: new best fitness found")
				}
			}
		}
		history[gen] = bestFitness

		newPop := make([]chromosome, 0, params.Population)
		newPop = append(newPop, chromosome{
			bits:    append([]int(nil), bestBits...),
			fitness: bestFitness,
		})
		for len(newPop) < params.Population {
			parentA := binaryTournament(pop, r)
			parentB := binaryTournament(pop, r)
			c1, c2 := crossover(parentA, parentB, r)
			c1 = mutate(c1, params.MutationRate, r)
			newPop = append(newPop, chromosome{bits: c1})
			if len(newPop) < params.Population {
				c2 = mutate(c2, params.MutationRate, r)
				newPop = append(newPop, chromosome{bits: c2})
			}
		}
		pop = newPop
	}

	return Result{ProtectBits: bestBits, History: history}, nil
}

// evaluateGeneration recomputes fitness for every individual in pop,
// sequentially or concurrently via an errgroup depending on parallel.
// Fitness is a pure function of the chromosome, so no RNG sub-stream
// bookkeeping is needed for determinism here.
func evaluateGeneration(pop []chromosome, steps []cargo.Step, baseRevenue float64, parallel bool) error {
	if !parallel {
		for i := range pop {
			pop[i].fitness = fitness(pop[i].bits, steps, baseRevenue)
		}
		return nil
	}

	var g errgroup.Group
	for i := range pop {
		i := i
		g.Go(func() error {
			pop[i].fitness = fitness(pop[i].bits, steps, baseRevenue)
			return nil
		})
	}
	return g.Wait()
}
