package ga

import "errors"

// ErrInvalidParameters indicates Params failed validation.
var ErrInvalidParameters = errors.New("ga: invalid optimizer parameters")
