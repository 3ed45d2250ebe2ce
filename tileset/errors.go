package tileset

import "errors"

var (
	// ErrBadTileSize indicates non-positive tile dimensions.
	ErrBadTileSize = errors.New("tileset: tile dimensions must be positive")
	// ErrImageTooSmall indicates the source image covers no complete tile.
	ErrImageTooSmall = errors.New("tileset: image smaller than one tile")
	// ErrTileRange indicates a tile id outside the learned corpus.
	ErrTileRange = errors.New("tileset: tile id outside corpus")
)
