package aco

import (
	"math"
	"math/rand"

	"github.com/dispatchcraft/parcelopt/core"
	"github.com/dispatchcraft/parcelopt/matrix"
	"github.com/dispatchcraft/parcelopt/rng"
	"github.com/dispatchcraft/parcelopt/routegraph"
)

// simulateAnt runs one ant's stateful construction of a full parcel tour:
// repeatedly picking a remaining parcel to serve (pickup then delivery),
// weighted by pheromone and inverse distance from the ant's current city,
// until every parcel has been served, then returning to base.
//
// tau is read-only here; pheromone mutation only happens in the serial
// reinforcement phase after every ant in an iteration has finished.
func simulateAnt(sp *routegraph.ShortestPaths, parcels []core.Parcel, base int, tau *matrix.Dense, alpha, beta float64, r *rand.Rand) antResult {
	current := base
	tour := []int{base}
	var parcelOrder []int
	var totalDist float64

	remaining := make([]int, len(parcels))
	for i := range parcels {
		remaining[i] = i
	}

	for len(remaining) > 0 {
		weights := make([]float64, len(remaining))
		for i, parcelIdx := range remaining {
			pickup := parcels[parcelIdx].PickupCity
			d := sp.Dist[current][pickup]
			if d >= core.Sentinel {
				weights[i] = 0
				continue
			}
			pheromone, _ := tau.At(current, pickup)
			tauVal := math.Pow(pheromone, alpha)
			eta := math.Pow(1.0/(d+heuristicEpsilon), beta)
			weights[i] = tauVal * eta
		}

		choice := rng.WeightedChoice(r, weights, underflowThreshold)
		parcelIdx := remaining[choice]
		remaining = append(remaining[:choice], remaining[choice+1:]...)
		parcelOrder = append(parcelOrder, parcelIdx)

		p := parcels[parcelIdx]
		pickupPath, errP := sp.Expand(current, p.PickupCity)
		if errP == nil {
			tour = append(tour, pickupPath[1:]...)
		}
		deliveryPath, errD := sp.Expand(p.PickupCity, p.DeliveryCity)
		if errD == nil {
			tour = append(tour, deliveryPath[1:]...)
		}

		totalDist += sp.Dist[current][p.PickupCity] + sp.Dist[p.PickupCity][p.DeliveryCity]
		current = p.DeliveryCity
	}

	if current != base {
		returnPath, err := sp.Expand(current, base)
		if err == nil {
			tour = append(tour, returnPath[1:]...)
		}
		totalDist += sp.Dist[current][base]
	}

	return antResult{
		tour:        collapseConsecutiveDuplicates(tour),
		distance:    totalDist,
		parcelOrder: parcelOrder,
	}
}

// collapseConsecutiveDuplicates removes adjacent repeats, e.g. when a
// delivery city is also the next pickup city.
func collapseConsecutiveDuplicates(tour []int) []int {
	if len(tour) == 0 {
		return tour
	}
	out := make([]int, 1, len(tour))
	out[0] = tour[0]
	for _, c := range tour[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
