// Package core defines the shared domain types for parcelopt: cities,
// parcels, the partial distance table callers supply, and the route-edge
// records that bridge the routing stage (aco) and the protection-buying
// stage (ga).
//
// Nothing in this package performs optimization; it only declares the data
// contract described in the project's routing-with-protection problem and
// the sentinel errors every other package validates against.
package core

import "errors"

// Sentinel errors for domain-level validation. Every optimizer package
// wraps these with fmt.Errorf("...: %w", ...) when it needs to add context;
// callers should match with errors.Is.
var (
	// ErrInvalidGraph indicates a parcel or the base references a city
	// index outside [0, N).
	ErrInvalidGraph = errors.New("core: parcel or base references an out-of-range city")

	// ErrInvalidParameters names the invalid-parameter error kind. aco and
	// ga do not return it: their Params.Validate methods wrap their own
	// aco.ErrInvalidParameters and ga.ErrInvalidParameters sentinels, which
	// do not match this one under errors.Is.
	ErrInvalidParameters = errors.New("core: invalid optimizer parameters")

	// ErrSameCity indicates a parcel's pickup and delivery city are equal.
	ErrSameCity = errors.New("core: parcel pickup and delivery city are the same")
)

// Sentinel is the finite stand-in for "unreachable" used throughout the
// distance matrix and tour-construction logic. A finite value keeps
// arithmetic (sums, comparisons) uniform instead of special-casing +Inf.
const Sentinel = 1e9

// InitialPheromone is the uniform pheromone level every edge starts at.
const InitialPheromone = 0.1

// Parcel is a pickup-delivery job with a known reward. Position in the
// slice passed to a solver is the parcel's stable identifier.
type Parcel struct {
	// PickupCity is the city where the parcel must be collected.
	PickupCity int

	// DeliveryCity is the city where the parcel must be dropped off.
	DeliveryCity int

	// Reward is the revenue earned once the parcel is delivered.
	Reward float64
}

// DistanceTable is a partial symmetric adjacency matrix: DistanceTable[i][j]
// is the direct edge weight between city i and city j, or 0 when no direct
// edge exists (self-distance is always treated as absent/zero). Only
// positive values represent a real edge.
type DistanceTable [][]float64

// NumCities returns the number of cities encoded by the table.
func (d DistanceTable) NumCities() int {
	return len(d)
}

// RouteEdge is one edge of a concrete tour as consumed by the protection
// stage: the city the edge starts from, the probability of a robbery while
// traversing it, and the cost of buying protection for it. Building
// RouteEdge values from an ACO tour and an external edge-probability table
// is the responsibility of the caller (see spec §6) — this package only
// declares the shape.
type RouteEdge struct {
	// CurrentCity is the city this edge departs from.
	CurrentCity int

	// RobberyProbability is the chance of a robbery while traversing this
	// edge, in [0, 1].
	RobberyProbability float64

	// ProtectionCost is the price of buying protection for this edge.
	ProtectionCost float64
}

// ValidateParcels checks that every parcel references cities in [0, n) and
// that pickup and delivery differ. It returns ErrInvalidGraph or
// ErrSameCity wrapped with the offending parcel index.
func ValidateParcels(parcels []Parcel, n int) error {
	for i, p := range parcels {
		if p.PickupCity < 0 || p.PickupCity >= n || p.DeliveryCity < 0 || p.DeliveryCity >= n {
			return wrapf(ErrInvalidGraph, "parcel %d references a city outside [0,%d)", i, n)
		}
		if p.PickupCity == p.DeliveryCity {
			return wrapf(ErrSameCity, "parcel %d", i)
		}
	}
	return nil
}

// ValidateBase checks that base is a valid city index in [0, n).
func ValidateBase(base, n int) error {
	if base < 0 || base >= n {
		return wrapf(ErrInvalidGraph, "base city %d outside [0,%d)", base, n)
	}
	return nil
}
