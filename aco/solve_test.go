package aco_test

import (
	"testing"

	"github.com/dispatchcraft/parcelopt/aco"
	"github.com/dispatchcraft/parcelopt/core"
	"github.com/dispatchcraft/parcelopt/routegraph"
	"github.com/stretchr/testify/require"
)

func mustPreprocess(t *testing.T, input core.DistanceTable) *routegraph.ShortestPaths {
	t.Helper()
	sp, err := routegraph.Preprocess(input)
	require.NoError(t, err)
	return sp
}

// Scenario A from the project's end-to-end scenarios: a trivial 3-city
// graph with one parcel, where the direct 0-2 edge is longer than the
// 0-1-2 detour.
func TestSolve_ScenarioA_TrivialGraphOneParcel(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{
		{0, 10, 30},
		{10, 0, 10},
		{30, 10, 0},
	})
	parcels := []core.Parcel{{PickupCity: 0, DeliveryCity: 2, Reward: 500}}

	params := aco.Params{Iterations: 5, Ants: 4, Alpha: 1, Beta: 2, Rho: 0.5, Seed: 1}
	result, err := aco.Solve(sp, parcels, 0, params)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 1, 0}, result.BestTour)
	require.Equal(t, 40.0, result.BestDistance)
	require.Equal(t, []int{0}, result.ParcelOrder)
	require.Len(t, result.History, 5)
	for _, h := range result.History {
		require.Equal(t, 40.0, h)
	}
}

func TestSolve_TourInvariants(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	parcels := []core.Parcel{
		{PickupCity: 0, DeliveryCity: 2, Reward: 10},
		{PickupCity: 1, DeliveryCity: 3, Reward: 10},
	}
	params := aco.Params{Iterations: 10, Ants: 6, Alpha: 1, Beta: 2, Rho: 0.3, Seed: 42}
	result, err := aco.Solve(sp, parcels, 0, params)
	require.NoError(t, err)

	require.Equal(t, 0, result.BestTour[0])
	require.Equal(t, 0, result.BestTour[len(result.BestTour)-1])
	for i := 1; i < len(result.BestTour); i++ {
		require.NotEqual(t, result.BestTour[i-1], result.BestTour[i])
	}
	require.ElementsMatch(t, []int{0, 1}, result.ParcelOrder)
	require.LessOrEqual(t, minFloat(result.History), result.BestDistance)
}

func TestSolve_Deterministic(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 8},
		{10, 4, 8, 0},
	})
	parcels := []core.Parcel{
		{PickupCity: 0, DeliveryCity: 3, Reward: 100},
		{PickupCity: 1, DeliveryCity: 2, Reward: 50},
	}
	params := aco.Params{Iterations: 8, Ants: 5, Alpha: 1, Beta: 2, Rho: 0.4, Seed: 7}

	r1, err := aco.Solve(sp, parcels, 0, params)
	require.NoError(t, err)
	r2, err := aco.Solve(sp, parcels, 0, params)
	require.NoError(t, err)

	require.Equal(t, r1.BestTour, r2.BestTour)
	require.Equal(t, r1.BestDistance, r2.BestDistance)
	require.Equal(t, r1.History, r2.History)
	require.Equal(t, r1.ParcelOrder, r2.ParcelOrder)
}

func TestSolve_DeterministicParallel(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 8},
		{10, 4, 8, 0},
	})
	parcels := []core.Parcel{
		{PickupCity: 0, DeliveryCity: 3, Reward: 100},
		{PickupCity: 1, DeliveryCity: 2, Reward: 50},
	}
	params := aco.Params{Iterations: 8, Ants: 5, Alpha: 1, Beta: 2, Rho: 0.4, Seed: 7, Parallel: true}

	r1, err := aco.Solve(sp, parcels, 0, params)
	require.NoError(t, err)
	r2, err := aco.Solve(sp, parcels, 0, params)
	require.NoError(t, err)

	require.Equal(t, r1.BestTour, r2.BestTour)
	require.Equal(t, r1.History, r2.History)
}

func TestSolve_InvalidParameters(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{{0, 1}, {1, 0}})
	parcels := []core.Parcel{{PickupCity: 0, DeliveryCity: 1, Reward: 1}}

	_, err := aco.Solve(sp, parcels, 0, aco.Params{Iterations: 0, Ants: 1, Alpha: 1, Beta: 1, Rho: 0.5})
	require.ErrorIs(t, err, aco.ErrInvalidParameters)

	_, err = aco.Solve(sp, parcels, 0, aco.Params{Iterations: 1, Ants: 1, Alpha: 1, Beta: 1, Rho: 1.5})
	require.ErrorIs(t, err, aco.ErrInvalidParameters)
}

func TestSolve_NoParcels(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{{0, 1}, {1, 0}})
	_, err := aco.Solve(sp, nil, 0, aco.Params{Iterations: 1, Ants: 1, Alpha: 1, Beta: 1, Rho: 0.5})
	require.ErrorIs(t, err, aco.ErrNoParcels)
}

func TestSolve_InvalidGraphReferences(t *testing.T) {
	sp := mustPreprocess(t, core.DistanceTable{{0, 1}, {1, 0}})
	parcels := []core.Parcel{{PickupCity: 0, DeliveryCity: 5, Reward: 1}}
	_, err := aco.Solve(sp, parcels, 0, aco.Params{Iterations: 1, Ants: 1, Alpha: 1, Beta: 1, Rho: 0.5})
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

func minFloat(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
