// Package grid defines the spatial vocabulary shared by the adjacency
// model and the generators: tile identifiers, cell positions, sparse
// tile grids with a declared rectangular shape, and the fixed table of
// eight neighbor directions.
//
// What:
//
//   - TileID — dense integer identifier for a tile in a learned corpus.
//   - Position — (X, Y) cell address; X grows rightward, Y grows downward.
//   - Grid — Position→TileID mapping annotated with (rows, cols); sparse
//     while a generator is filling it, complete when every cell is set.
//   - Direction — one of 8 named offsets with stable indices 0–7
//     (orthogonal first, then diagonal) and an explicit inverse table.
//
// Why:
//
//   - Training and generated maps share one representation, so the
//     adjacency model, the samplers and the renderers all speak Grid.
//   - Naming the eight offsets (instead of positional magic numbers)
//     makes "my neighbor's viewpoint of me" a table lookup: d.Inverse().
//
// Determinism:
//
//   - Positions() iterates row-major (Y outer, X inner), so any walk of a
//     Grid is reproducible regardless of map iteration order.
//
// Errors:
//
//   - ErrBadShape: a declared shape has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths passed to FromRows.
//   - ErrOutOfBounds: a Position outside the declared shape was set.
//   - ErrUnknownDirection: a direction name failed to parse.
package grid
