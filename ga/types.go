package ga

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Params configures one GA run.
type Params struct {
	// Population is the number of chromosomes per generation (P >= 1).
	// P == 1 degenerates to elitism only: no tournament or recombination
	// is needed since there is nothing to select between.
	Population int

	// Generations is the number of generations to run (G >= 1).
	Generations int

	// MutationRate is the per-bit flip probability, in [0, 1].
	MutationRate float64

	// Seed drives every deterministic random choice: chromosome
	// initialization, tournament draws, crossover points, and mutation.
	Seed int64

	// Parallel evaluates the fitness of every individual in a generation
	// concurrently via an errgroup. Selection/crossover/mutation always
	// runs serially afterwards as a barrier.
	Parallel bool

	// Logger receives progress events ("new best fitness found"). A nil
	// Logger disables logging.
	Logger *zerolog.Logger
}

// Validate checks Params against the constraints in spec §4.4/§7.
func (p Params) Validate() error {
	switch {
	case p.Population < 1:
		return fmt.Errorf("population must be >= 1, got %d: %w", p.Population, ErrInvalidParameters)
	case p.Generations < 1:
		return fmt.Errorf("generations must be >= 1, got %d: %w", p.Generations, ErrInvalidParameters)
	case p.MutationRate < 0 || p.MutationRate > 1:
		return fmt.Errorf("mutation rate must be in [0,1], got %v: %w", p.MutationRate, ErrInvalidParameters)
	}
	return nil
}

// Result is the output of Solve.
type Result struct {
	// ProtectBits is the best bitstring found: one 0/1 decision per tour
	// edge, length equal to the number of cargo steps.
	ProtectBits []int

	// History holds the best-fitness-so-far after each generation, in
	// order; len(History) == Params.Generations. Non-decreasing.
	History []float64
}
