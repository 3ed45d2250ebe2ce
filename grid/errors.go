package grid

import "errors"

var (
	// ErrBadShape indicates a declared grid shape with no rows or no columns.
	ErrBadShape = errors.New("grid: shape must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the declared shape.
	ErrOutOfBounds = errors.New("grid: position outside declared shape")
	// ErrUnknownDirection indicates a direction name that failed to parse.
	ErrUnknownDirection = errors.New("grid: unknown direction name")
)
