package aco

import (
	"fmt"
	"sort"

	"github.com/dispatchcraft/parcelopt/core"
	"github.com/dispatchcraft/parcelopt/matrix"
	"github.com/dispatchcraft/parcelopt/rng"
	"github.com/dispatchcraft/parcelopt/routegraph"
	"golang.org/x/sync/errgroup"
)

// Solve runs Params.Iterations rounds of ant construction and pheromone
// update over the preprocessed shortest-path graph, returning the best
// tour found, its distance, the parcel order that produced it, and the
// per-iteration best-distance history.
func Solve(sp *routegraph.ShortestPaths, parcels []core.Parcel, base int, params Params) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}
	if len(parcels) == 0 {
		return Result{}, ErrNoParcels
	}
	if err := core.ValidateParcels(parcels, sp.N()); err != nil {
		return Result{}, err
	}
	if err := core.ValidateBase(base, sp.N()); err != nil {
		return Result{}, err
	}

	tau, err := matrix.Fill(sp.N(), sp.N(), core.InitialPheromone)
	if err != nil {
		return Result{}, fmt.Errorf("aco: allocating pheromone matrix: %w", err)
	}

	history := make([]float64, params.Iterations)
	best := Result{BestDistance: core.Sentinel * 2}

	for iter := 0; iter < params.Iterations; iter++ {
		results, err := runIteration(sp, parcels, base, tau, params, iter)
		if err != nil {
			return Result{}, err
		}

		iterBest := core.Sentinel * 2
		for _, ar := range results {
			if ar.distance < iterBest {
				iterBest = ar.distance
			}
			if ar.distance < best.BestDistance {
				best.BestDistance = ar.distance
				best.BestTour = ar.tour
				best.ParcelOrder = ar.parcelOrder
				if params.Logger != nil {
					params.Logger.Debug().Int("iteration", iter).Float64("distance", ar.distance).Msg("aco: new best distance found")
				}
			}
		}
		history[iter] = iterBest

		evaporate(tau, params.Rho)
		reinforce(tau, results, parcels, base, params.eliteCount())
	}

	if err := assertParcelOrderConsistency(best.BestTour, best.ParcelOrder, parcels, base); err != nil {
		panic(fmt.Sprintf("aco: internal invariant violated: %v", err))
	}

	return best, nil
}

// runIteration simulates Params.Ants ants for one iteration, sequentially
// or concurrently depending on Params.Parallel. Each ant gets its own RNG
// sub-stream derived from (seed, iteration, ant index) so the outcome does
// not depend on scheduling order.
func runIteration(sp *routegraph.ShortestPaths, parcels []core.Parcel, base int, tau *matrix.Dense, params Params, iter int) ([]antResult, error) {
	results := make([]antResult, params.Ants)

	streamFor := func(antIdx int) uint64 {
		return uint64(iter)*uint64(params.Ants) + uint64(antIdx)
	}

	if !params.Parallel {
		for a := 0; a < params.Ants; a++ {
			r := rng.Sub(params.Seed, streamFor(a))
			results[a] = simulateAnt(sp, parcels, base, tau, params.Alpha, params.Beta, r)
		}
		return results, nil
	}

	var g errgroup.Group
	for a := 0; a < params.Ants; a++ {
		a := a
		g.Go(func() error {
			r := rng.Sub(params.Seed, streamFor(a))
			results[a] = simulateAnt(sp, parcels, base, tau, params.Alpha, params.Beta, r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// evaporate multiplies every pheromone entry by (1 - rho).
func evaporate(tau *matrix.Dense, rho float64) {
	tau.ScaleAll(1 - rho)
}

// reinforce deposits pheromone on the decision edges of the top eliteCount
// ants by distance, skipping any with a non-positive or sentinel-sized
// (effectively infinite) distance.
func reinforce(tau *matrix.Dense, results []antResult, parcels []core.Parcel, base int, eliteCount int) {
	ordered := make([]antResult, len(results))
	copy(ordered, results)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].distance < ordered[j].distance })

	if eliteCount > len(ordered) {
		eliteCount = len(ordered)
	}

	for _, ar := range ordered[:eliteCount] {
		if !(ar.distance > 0 && ar.distance < core.Sentinel) {
			continue
		}
		deposit := depositScale / ar.distance

		curr := base
		for _, parcelIdx := range ar.parcelOrder {
			p := parcels[parcelIdx]
			_ = tau.Add(curr, p.PickupCity, deposit)
			_ = tau.Add(p.PickupCity, p.DeliveryCity, deposit)
			curr = p.DeliveryCity
		}
		_ = tau.Add(curr, base, deposit)
	}
}
