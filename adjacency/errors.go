package adjacency

import "errors"

var (
	// ErrBadTileCount indicates a non-positive tile vocabulary size.
	ErrBadTileCount = errors.New("adjacency: tile count must be positive")
	// ErrTileRange indicates a tile id outside the declared [0, tileCount) range.
	ErrTileRange = errors.New("adjacency: tile id outside declared range")
	// ErrBadSnapshot indicates a persisted model that failed validation on load.
	ErrBadSnapshot = errors.New("adjacency: malformed model snapshot")
)
