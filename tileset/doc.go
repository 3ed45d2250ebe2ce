// Package tileset bridges pixels and tile grids: it slices a tiled
// reference image into a deduplicated tile corpus plus a training grid,
// and composites generated grids back into images.
//
// What:
//
//   - Processor — wraps a source image cut into tileW×tileH cells;
//     identical cells share one TileID, assigned in first-seen order.
//   - Mapping — the Position→TileID training grid the adjacency model
//     consumes; TileCount is the vocabulary size.
//   - Render — composites any grid of the corpus back into pixels;
//     unfilled cells stay transparent, so partial grids (for instance
//     a ContradictionError's Partial) render too.
//   - Atlas — a tilesheet image of the corpus, 16 tiles per row by
//     default.
//
// Why:
//
//   - The generation core speaks only (tileCount, Grid); this package is
//     the sole place where pixels exist. Decoding and encoding image
//     files is the caller's business (register a codec and pass an
//     image.Image; png works well for pixel-art sources).
//
// Semantics:
//
//   - Partial trailing rows/columns of the source image are truncated,
//     matching integer division of image size by tile size.
//   - Dedup compares exact RGBA pixel content.
//
// Errors:
//
//   - ErrBadTileSize: non-positive tile dimensions.
//   - ErrImageTooSmall: the image does not cover even one tile.
//   - ErrTileRange: a grid references an id outside the corpus.
package tileset
