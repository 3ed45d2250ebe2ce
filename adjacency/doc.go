// Package adjacency learns tile-adjacency statistics from a training grid.
//
// What:
//
//   - Distribution — sparse TileID→count frequency table with a sorted,
//     deterministic Support.
//   - Model — for every (tile, direction) pair, the observed-frequency
//     distribution over neighboring tiles, built once by scanning every
//     cell of a training grid across all 8 neighbor directions.
//   - Save/Load — optional YAML snapshot of a model, so repeated
//     generation runs can skip re-scanning the training grid.
//
// Why:
//
//   - The model is the whole "memory" of the generator: it records which
//     tiles were ever seen next to which, and how often. Samplers draw
//     from these distributions; the constraint intersector combines them.
//
// Semantics:
//
//   - Tables are sparse: a (tile, direction, neighbor) triple that never
//     occurred in training is simply absent. Absence means zero evidence,
//     not a small default probability — unseen pairings can never be
//     generated.
//   - A Model is immutable after Build and safe to share across
//     concurrent generation runs.
//
// Complexity:
//
//   - Build: O(rows×cols×8) time, memory proportional to distinct
//     observed triples.
//   - At/Marginal: O(size of the returned table) (defensive copy).
//
// Errors:
//
//   - ErrBadTileCount: tileCount < 1.
//   - ErrTileRange: training (or a snapshot) references an id outside [0, n).
//   - grid.ErrBadShape: via grid validation on malformed training input.
package adjacency
