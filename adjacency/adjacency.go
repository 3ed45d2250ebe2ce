package adjacency

import (
	"fmt"

	"github.com/akilmarshall/tile-image-generator/grid"
)

// Model holds, for every (tile, direction) pair, the observed-frequency
// distribution over neighboring tile ids, plus the marginal occurrence
// counts of the tiles themselves. Immutable once built; accessors return
// defensive copies so no caller can perturb the learned statistics.
type Model struct {
	tileCount int
	// freq[tile][direction] — sparse neighbor frequency table.
	freq [][grid.NumDirections]Distribution
	// marginal[tile] — occurrence count of tile in the training grid.
	marginal Distribution
}

// Build scans every filled cell of training and, for each of the 8
// neighbor directions whose target cell is filled, increments the count
// for the observed (tile, direction, neighbor) triple. Sparse and edge
// cells simply contribute fewer observations.
//
// Returns ErrBadTileCount if tileCount < 1, ErrTileRange if training
// references an id outside [0, tileCount). Deterministic: identical input
// yields identical tables.
// Complexity: O(rows×cols×8) time.
func Build(training *grid.Grid, tileCount int) (*Model, error) {
	if tileCount < 1 {
		return nil, ErrBadTileCount
	}

	m := &Model{
		tileCount: tileCount,
		freq:      make([][grid.NumDirections]Distribution, tileCount),
		marginal:  make(Distribution, tileCount),
	}
	for _, p := range training.Positions() {
		tile, ok := training.At(p)
		if !ok {
			continue
		}
		if tile < 0 || int(tile) >= tileCount {
			return nil, fmt.Errorf("adjacency: Build at %v: tile %d: %w", p, tile, ErrTileRange)
		}
		m.marginal[tile]++
		for _, d := range grid.Directions() {
			neighbor, present := training.At(p.Shift(d))
			if !present {
				continue
			}
			if neighbor < 0 || int(neighbor) >= tileCount {
				return nil, fmt.Errorf("adjacency: Build at %v: neighbor %d: %w", p, neighbor, ErrTileRange)
			}
			if m.freq[tile][d] == nil {
				m.freq[tile][d] = make(Distribution)
			}
			m.freq[tile][d][neighbor]++
		}
	}

	return m, nil
}

// TileCount returns the size n of the tile vocabulary; valid ids are [0, n).
func (m *Model) TileCount() int { return m.tileCount }

// At returns the observed neighbor distribution for (tile, d). The result
// may be empty: the pairing was never seen in training and carries no
// probability mass. The returned table is a copy.
// Complexity: O(k) for k observed neighbors.
func (m *Model) At(tile grid.TileID, d grid.Direction) Distribution {
	if tile < 0 || int(tile) >= m.tileCount {
		return Distribution{}
	}

	return m.freq[tile][d].Clone()
}

// Marginal returns the overall tile occurrence counts from training,
// usable as an unconstrained sampling distribution. The returned table is
// a copy.
// Complexity: O(n).
func (m *Model) Marginal() Distribution {
	return m.marginal.Clone()
}
