// Package parcelopt wires the project's two cooperating metaheuristics —
// Ant Colony Optimization for pickup-delivery routing and a Genetic
// Algorithm for robbery-protection purchase decisions — into the two
// external entry points described by the routing-with-protection contract:
// SolveRoute and SolveProtection.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/       — shared domain types (Parcel, DistanceTable, RouteEdge) and sentinel errors
//	routegraph/ — Floyd-Warshall all-pairs shortest paths with path reconstruction
//	rng/        — deterministic seeded RNG and SplitMix64 sub-stream derivation
//	aco/        — the Ant Colony routing optimizer
//	cargo/      — the cargo state simulator bridging routing and protection
//	ga/         — the Genetic Algorithm protection-purchase optimizer
//
// SolveRoute runs routegraph.Preprocess followed by aco.Solve.
// SolveProtection runs cargo.Simulate followed by ga.Solve. The two stages
// are sequential, not jointly optimized: this package does not reach back
// into routing once protection decisions are being made.
package parcelopt
