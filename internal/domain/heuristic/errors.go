package heuristic

import "errors"

// Sentinel kinds for heuristic errors.
var (
	ErrInvalidGroupSize = errors.New("group size must be positive")
)
