package core

import "fmt"

// wrapf wraps a sentinel error with a formatted message while keeping it
// matchable via errors.Is(err, sentinel). Mirrors the wrapping convention
// used across this module's packages.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
