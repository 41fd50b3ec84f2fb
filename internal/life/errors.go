package life

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned by New for non-positive sizes.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds is returned by Toggle for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
