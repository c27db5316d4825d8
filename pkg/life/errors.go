package life

import "errors"

var (
	// ErrInvalidDimensions is returned when an engine is requested with a
	// non-positive number of rows or columns.
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")
	// ErrOutOfRange is returned when a coordinate falls outside the grid.
	ErrOutOfRange = errors.New("life: coordinate out of range")
	// ErrInvalidProbability is returned by Randomize for a probability
	// outside [0, 1].
	ErrInvalidProbability = errors.New("life: probability out of range")
)
