package parcelopt_test

import (
	"testing"

	"github.com/dispatchcraft/parcelopt"
	"github.com/dispatchcraft/parcelopt/aco"
	"github.com/dispatchcraft/parcelopt/core"
	"github.com/dispatchcraft/parcelopt/ga"
	"github.com/stretchr/testify/require"
)

func TestSolveRoute_EndToEnd(t *testing.T) {
	distances := core.DistanceTable{
		{0, 10, 30},
		{10, 0, 10},
		{30, 10, 0},
	}
	parcels := []core.Parcel{{PickupCity: 0, DeliveryCity: 2, Reward: 500}}

	result, err := parcelopt.SolveRoute(distances, parcels, 0, aco.Params{
		Iterations: 5, Ants: 4, Alpha: 1, Beta: 2, Rho: 0.5, Seed: 1,
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 1, 0}, result.BestTour)
	require.Equal(t, 40.0, result.BestDistance)
}

func TestSolveProtection_EndToEnd(t *testing.T) {
	routeData := []core.RouteEdge{
		{CurrentCity: 0, RobberyProbability: 0.1, ProtectionCost: 5},
		{CurrentCity: 1, RobberyProbability: 0.9, ProtectionCost: 10},
		{CurrentCity: 2, RobberyProbability: 0.1, ProtectionCost: 5},
	}
	parcels := []core.Parcel{{PickupCity: 0, DeliveryCity: 2, Reward: 500}}

	result, err := parcelopt.SolveProtection(routeData, parcels, ga.Params{
		Population: 10, Generations: 20, MutationRate: 0.1, Seed: 1,
	})
	require.NoError(t, err)
	require.Len(t, result.ProtectBits, len(routeData))
	require.Len(t, result.History, 20)
	for i := 1; i < len(result.History); i++ {
		require.GreaterOrEqual(t, result.History[i], result.History[i-1])
	}
}

func TestSolveRoute_InvalidDistances(t *testing.T) {
	distances := core.DistanceTable{{0, 1}, {1, 0, 2}}
	parcels := []core.Parcel{{PickupCity: 0, DeliveryCity: 1, Reward: 1}}
	_, err := parcelopt.SolveRoute(distances, parcels, 0, aco.Params{
		Iterations: 1, Ants: 1, Alpha: 1, Beta: 1, Rho: 0.5,
	})
	require.Error(t, err)
}
