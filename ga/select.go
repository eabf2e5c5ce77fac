package ga

import "math/rand"

// randomChromosome returns a bitstring of length l with each bit uniform in
// {0,1}.
func randomChromosome(l int, r *rand.Rand) []int {
	c := make([]int, l)
	for i := range c {
		c[i] = r.Intn(2)
	}
	return c
}

// binaryTournament draws two individuals uniformly with replacement from
// pop and returns the fitter of the two chromosomes, ties favoring the
// first draw.
func binaryTournament(pop []chromosome, r *rand.Rand) []int {
	x := pop[r.Intn(len(pop))]
	y := pop[r.Intn(len(pop))]
	if y.fitness > x.fitness {
		return y.bits
	}
	return x.bits
}

// crossover performs single-point crossover at a cut drawn uniformly from
// {1, ..., len(p1)-1}, producing two offspring. A single-gene chromosome has
// no valid cut point, so the offspring are plain copies of the parents.
func crossover(p1, p2 []int, r *rand.Rand) ([]int, []int) {
	l := len(p1)
	if l < 2 {
		return append([]int(nil), p1...), append([]int(nil), p2...)
	}
	cut := 1 + r.Intn(l-1)

	c1 := make([]int, l)
	c2 := make([]int, l)
	copy(c1[:cut], p1[:cut])
	copy(c1[cut:], p2[cut:])
	copy(c2[:cut], p2[:cut])
	copy(c2[cut:], p1[cut:])
	return c1, c2
}

// mutate flips each bit of ind independently with probability rate,
// in place, and returns it.
func mutate(ind []int, rate float64, r *rand.Rand) []int {
	for i := range ind {
		if r.Float64() < rate {
			ind[i] = 1 - ind[i]
		}
	}
	return ind
}

// chromosome pairs a bitstring with its evaluated fitness.
type chromosome struct {
	bits    []int
	fitness float64
}
