package aco

import "errors"

// Sentinel errors for the routing optimizer.
var (
	// ErrInvalidParameters indicates Params.Validate failed.
	ErrInvalidParameters = errors.New("aco: invalid parameters")

	// ErrNoParcels indicates Solve was called with an empty parcel list;
	// there is nothing for an ant to do.
	ErrNoParcels = errors.New("aco: no parcels to route")
)
