package cargo

import "github.com/dispatchcraft/parcelopt/core"

// carrying describes the parcel currently in the vehicle, if any.
type carrying struct {
	parcelID     int
	deliveryCity int
	reward       float64
}

// Simulate runs the single left-to-right pass over edges described in the
// project's cargo bookkeeping rules: it tracks at most one carried parcel at
// a time, loading the first pending parcel (by original index) whose pickup
// matches the current edge's starting city, and unloading when the current
// city matches the carried parcel's delivery city.
//
// It returns one Step per edge, in order, plus the base revenue: the sum of
// rewards of every parcel loaded at least once during the scan. Simulate is
// a pure function of its inputs — calling it twice on the same arguments
// yields identical results.
func Simulate(edges []core.RouteEdge, parcels []core.Parcel) ([]Step, float64) {
	steps := make([]Step, len(edges))
	if len(edges) == 0 {
		return steps, 0
	}

	pending := make([]int, len(parcels))
	for i := range parcels {
		pending[i] = i
	}

	var current *carrying
	loaded := make(map[int]bool)

	for i, e := range edges {
		step := Step{
			CurrentCity:        e.CurrentCity,
			RobberyProbability: e.RobberyProbability,
			ProtectionCost:     e.ProtectionCost,
			ParcelID:           NoParcel,
			Action:             Empty,
		}

		switch {
		case current != nil && current.deliveryCity == e.CurrentCity:
			current = nil
			step.Action = Unload

		case current == nil:
			if idx, parcelIdx, ok := firstPendingAt(pending, parcels, e.CurrentCity); ok {
				p := parcels[parcelIdx]
				current = &carrying{parcelID: parcelIdx, deliveryCity: p.DeliveryCity, reward: p.Reward}
				pending = append(pending[:idx], pending[idx+1:]...)
				loaded[parcelIdx] = true
				step.Action = Load
				step.Value = p.Reward
				step.ParcelID = parcelIdx
			}

		default:
			step.Action = Carry
			step.Value = current.reward
			step.ParcelID = current.parcelID
		}

		steps[i] = step
	}

	var baseRevenue float64
	for parcelIdx := range loaded {
		baseRevenue += parcels[parcelIdx].Reward
	}
	return steps, baseRevenue
}

// firstPendingAt scans pending in order (preserving original parcel index
// order) and returns the position in pending and the parcel index of the
// first one whose pickup city matches city.
func firstPendingAt(pending []int, parcels []core.Parcel, city int) (pendingIdx, parcelIdx int, ok bool) {
	for idx, pIdx := range pending {
		if parcels[pIdx].PickupCity == city {
			return idx, pIdx, true
		}
	}
	return 0, 0, false
}
