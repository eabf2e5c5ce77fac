package cargo

// This package has no fallible entry points of its own: Simulate is a pure
// function over its slice arguments and never returns an error. Sentinel
// errors live in the packages that validate external input (core, aco, ga).
