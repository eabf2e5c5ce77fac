package rng_test

import (
	"testing"

	"github.com/dispatchcraft/parcelopt/rng"
	"github.com/stretchr/testify/require"
)

func TestFromSeed_Deterministic(t *testing.T) {
	a := rng.FromSeed(42)
	b := rng.FromSeed(42)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestFromSeed_ZeroMapsToDefault(t *testing.T) {
	a := rng.FromSeed(0)
	b := rng.FromSeed(1)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestSub_IndependentStreams(t *testing.T) {
	a := rng.Sub(1, 0)
	b := rng.Sub(1, 1)
	require.NotEqual(t, a.Int63(), b.Int63())
}

func TestSub_Deterministic(t *testing.T) {
	a := rng.Sub(7, 3)
	b := rng.Sub(7, 3)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestWeightedChoice_UnderflowFallsBackToUniform(t *testing.T) {
	r := rng.FromSeed(1)
	weights := []float64{0, 0, 0}
	idx := rng.WeightedChoice(r, weights, 1e-12)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, len(weights))
}

func TestWeightedChoice_PicksOnlyNonZero(t *testing.T) {
	r := rng.FromSeed(1)
	weights := []float64{0, 5, 0}
	for i := 0; i < 20; i++ {
		idx := rng.WeightedChoice(r, weights, 1e-12)
		require.Equal(t, 1, idx)
	}
}
