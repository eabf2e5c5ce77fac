// Package ga implements the Genetic Optimizer (GO): it evolves a bitstring
// of per-edge protection-purchase decisions over a fixed tour, maximizing
// expected net profit under the cargo values the cargo package computes.
//
// A chromosome is a []int of 0/1 values, one per tour edge. Selection is
// binary tournament, recombination is single-point crossover, and survival
// is elitism of one: the best individual seen so far always carries over
// unmodified into the next generation.
package ga
