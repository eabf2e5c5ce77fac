// Package matrix provides Dense, a row-major float64 grid used as the
// backing storage for the pheromone matrix the ant colony optimizer reads
// and mutates every iteration.
package matrix
