// Package aco implements Ant Colony Optimization for the pickup-delivery
// routing stage: given the shortest-path metric closure produced by
// routegraph, a list of parcels, and a base city, it iteratively improves a
// tour that visits every parcel's pickup then its delivery, starting and
// ending at the base.
//
// Each ant samples which remaining parcel to serve next using a pheromone-
// weighted, distance-discounted probability distribution (spec §4.2);
// after all ants in an iteration finish, the top elite quartile
// reinforces the pheromone matrix on the decision edges they actually
// chose (pickup/delivery transitions, not every hop of the expanded
// shortest path), and the matrix evaporates uniformly.
//
// Determinism: Solve requires a seed; ants within one iteration may run
// concurrently (see Params.Parallel), each with its own RNG sub-stream
// derived from the seed and its (iteration, ant index), so results are
// bit-identical across runs regardless of scheduling.
package aco
