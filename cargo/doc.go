// Package cargo implements the Cargo Simulator (CS): a single left-to-right
// pass over a concrete tour's edges that tracks what parcel, if any, is
// being carried at each step, and derives the base revenue the tour makes
// achievable.
//
// CS sits between aco and ga in the pipeline: it turns an ACO tour plus the
// parcel list into the per-edge cargo values ga's fitness function needs,
// and is itself a pure function of its inputs — running it twice on the
// same tour always yields the same annotations.
package cargo
