package parcelopt

import (
	"github.com/dispatchcraft/parcelopt/aco"
	"github.com/dispatchcraft/parcelopt/cargo"
	"github.com/dispatchcraft/parcelopt/core"
	"github.com/dispatchcraft/parcelopt/ga"
	"github.com/dispatchcraft/parcelopt/routegraph"
)

// SolveRoute runs the Graph Preprocessor followed by the Ant Colony
// Optimizer: it expands distances into an all-pairs metric closure, then
// searches for a low-cost tour that visits every parcel's pickup and
// delivery exactly once and returns to base.
func SolveRoute(distances core.DistanceTable, parcels []core.Parcel, base int, params aco.Params) (aco.Result, error) {
	sp, err := routegraph.Preprocess(distances)
	if err != nil {
		return aco.Result{}, err
	}
	return aco.Solve(sp, parcels, base, params)
}

// SolveProtection runs the Cargo Simulator followed by the Genetic
// Optimizer: it reconstructs per-edge cargo values along a fixed tour (as
// described by routeData, one record per tour edge) and evolves a bitstring
// of protection-purchase decisions that maximizes expected net profit.
//
// routeData is supplied by the caller (see the project's UI contract): each
// entry pairs a tour edge's starting city with its robbery probability and
// protection cost. Constructing routeData from an aco.Result is the
// caller's responsibility; this package does not prescribe how protection
// cost is derived.
func SolveProtection(routeData []core.RouteEdge, parcels []core.Parcel, params ga.Params) (ga.Result, error) {
	steps, baseRevenue := cargo.Simulate(routeData, parcels)
	return ga.Solve(steps, baseRevenue, params)
}
