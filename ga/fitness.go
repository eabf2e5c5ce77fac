package ga

import "github.com/dispatchcraft/parcelopt/cargo"

// fitness computes net = baseRevenue - sum(penalty(k)) for a chromosome
// against the cargo steps it protects. penalty(k) is the protection cost
// when bit k is 1, otherwise the expected robbery loss (cargo value times
// robbery probability). Fitness is not clipped and may be negative.
func fitness(chromosome []int, steps []cargo.Step, baseRevenue float64) float64 {
	net := baseRevenue
	for k, bit := range chromosome {
		s := steps[k]
		if bit == 1 {
			net -= s.ProtectionCost
		} else {
			net -= s.Value * s.RobberyProbability
		}
	}
	return net
}
