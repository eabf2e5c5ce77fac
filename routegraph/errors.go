package routegraph

import "errors"

// Sentinel errors for the preprocessing stage.
var (
	// ErrNonSquare indicates the input distance table is not square.
	ErrNonSquare = errors.New("routegraph: distance table is not square")

	// ErrNegativeWeight indicates a negative direct-edge weight was supplied.
	ErrNegativeWeight = errors.New("routegraph: negative edge weight")

	// ErrAsymmetric indicates input[i][j] != input[j][i] for some i, j.
	ErrAsymmetric = errors.New("routegraph: distance table is not symmetric")

	// ErrUnreachable is returned by Expand when no path connects u and v.
	ErrUnreachable = errors.New("routegraph: no path between requested cities")
)
