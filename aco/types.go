package aco

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Implicit algorithm constants (spec §4.2).
const (
	// depositScale is Q, the pheromone deposit scaling factor.
	depositScale = 100.0

	// underflowThreshold is the minimum weight sum below which the
	// candidate distribution falls back to uniform sampling.
	underflowThreshold = 1e-12

	// heuristicEpsilon avoids a division by zero when a candidate is at
	// zero distance from the current city.
	heuristicEpsilon = 1e-6
)

// Params configures one ACO run. The zero value is not meaningful; every
// field must be set explicitly and passed through Validate.
type Params struct {
	// Iterations is the number of outer loop iterations (I >= 1).
	Iterations int

	// Ants is the number of ants simulated per iteration (A >= 1).
	Ants int

	// Alpha is the pheromone exponent (alpha > 0).
	Alpha float64

	// Beta is the heuristic (inverse-distance) exponent (beta > 0).
	Beta float64

	// Rho is the evaporation rate, in (0, 1).
	Rho float64

	// Seed drives every deterministic random choice in this run: each ant
	// draws from its own sub-stream derived from Seed and its (iteration,
	// ant index), whether or not Parallel is set.
	Seed int64

	// Parallel runs the Ants ant simulations within one iteration
	// concurrently via an errgroup, each seeded with its own derived
	// sub-stream. Pheromone evaporation/reinforcement always happens
	// serially afterwards as a barrier.
	Parallel bool

	// Logger receives progress events ("new best distance found").
	// A nil Logger disables logging.
	Logger *zerolog.Logger
}

// Validate checks Params against the constraints in spec §4.2/§7,
// returning ErrInvalidParameters wrapped with the offending field.
func (p Params) Validate() error {
	switch {
	case p.Iterations < 1:
		return fmt.Errorf("iterations must be >= 1, got %d: %w", p.Iterations, ErrInvalidParameters)
	case p.Ants < 1:
		return fmt.Errorf("ants must be >= 1, got %d: %w", p.Ants, ErrInvalidParameters)
	case p.Alpha <= 0:
		return fmt.Errorf("alpha must be > 0, got %v: %w", p.Alpha, ErrInvalidParameters)
	case p.Beta <= 0:
		return fmt.Errorf("beta must be > 0, got %v: %w", p.Beta, ErrInvalidParameters)
	case p.Rho <= 0 || p.Rho >= 1:
		return fmt.Errorf("rho must be in (0,1), got %v: %w", p.Rho, ErrInvalidParameters)
	}
	return nil
}

// eliteCount returns max(1, Ants/4), the number of top ants per iteration
// that reinforce the pheromone matrix.
func (p Params) eliteCount() int {
	n := p.Ants / 4
	if n < 1 {
		n = 1
	}
	return n
}

// Result is the output of Solve.
type Result struct {
	// BestTour is the expanded node sequence of the best tour found,
	// starting and ending at the base, with no two consecutive duplicate
	// cities.
	BestTour []int

	// BestDistance is the total distance of BestTour.
	BestDistance float64

	// History holds the best distance observed in each iteration, in
	// order; len(History) == Params.Iterations.
	History []float64

	// ParcelOrder is the permutation of parcel indices that produced
	// BestTour.
	ParcelOrder []int
}

// antResult is one ant's completed simulation.
type antResult struct {
	tour        []int
	distance    float64
	parcelOrder []int
}
