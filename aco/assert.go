package aco

import (
	"fmt"

	"github.com/dispatchcraft/parcelopt/core"
)

// assertParcelOrderConsistency verifies the open question noted in the
// project's design notes: the expanded tour must visit pickups and
// deliveries in exactly the order recorded in parcelOrder. Since both are
// produced by the same construction step in simulateAnt this always holds
// by construction; this check exists to catch a future refactor that
// breaks that invariant, not a user-triggered condition, so it reports via
// a plain error for the caller to turn into a panic.
func assertParcelOrderConsistency(tour []int, parcelOrder []int, parcels []core.Parcel, base int) error {
	if len(tour) == 0 {
		if len(parcelOrder) == 0 {
			return nil
		}
		return fmt.Errorf("empty tour but non-empty parcel order")
	}

	idx := 0 // cursor into tour
	for _, parcelIdx := range parcelOrder {
		p := parcels[parcelIdx]

		for idx < len(tour) && tour[idx] != p.PickupCity {
			idx++
		}
		if idx == len(tour) {
			return fmt.Errorf("parcel %d pickup city %d not found in tour after cursor", parcelIdx, p.PickupCity)
		}
		pickupIdx := idx
		idx++

		for idx < len(tour) && tour[idx] != p.DeliveryCity {
			idx++
		}
		if idx == len(tour) {
			return fmt.Errorf("parcel %d delivery city %d not found after pickup at index %d", parcelIdx, p.DeliveryCity, pickupIdx)
		}
	}

	if tour[0] != base || tour[len(tour)-1] != base {
		return fmt.Errorf("tour does not start and end at base %d", base)
	}
	return nil
}
