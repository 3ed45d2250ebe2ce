package collapse

import (
	"golang.org/x/exp/rand"

	"github.com/akilmarshall/tile-image-generator/adjacency"
	"github.com/akilmarshall/tile-image-generator/grid"
)

// Constraint states that an already-placed neighbor Tile, looking along
// its own direction Dir, sees the cell being resolved. Dir is the
// neighbor's viewpoint: a cell's left neighbor constrains it with
// Dir=Right.
type Constraint struct {
	Tile grid.TileID
	Dir  grid.Direction
}

// Resolve picks a tile compatible with every constraint simultaneously.
//
// Algorithm:
//  1. Fetch each constraint's frequency table from the model.
//  2. Intersect the candidate id sets — only ids present in every table
//     survive.
//  3. Sum each survivor's counts across all tables, accumulating evidence
//     strength rather than mere presence.
//  4. Draw from the summed table (Dirichlet-smoothed, see Draw).
//
// Returns ErrNoConstraints for an empty constraint list and
// ErrContradiction when the intersection is empty — the cell cannot be
// filled consistently and the caller must decide how to recover.
// Complexity: O(c×k) for c constraints over tables of ≤k candidates.
func Resolve(constraints []Constraint, m *adjacency.Model, rng *rand.Rand) (grid.TileID, error) {
	if len(constraints) == 0 {
		return 0, ErrNoConstraints
	}
	if rng == nil {
		return 0, ErrNeedRandSource
	}

	tables := make([]adjacency.Distribution, len(constraints))
	for i, c := range constraints {
		tables[i] = m.At(c.Tile, c.Dir)
	}

	// Candidates of the first table, filtered by membership in the rest,
	// with counts summed over every table they survive.
	merged := make(adjacency.Distribution, len(tables[0]))
	for id, n := range tables[0] {
		total := n
		compatible := true
		for _, table := range tables[1:] {
			v, present := table[id]
			if !present {
				compatible = false
				break
			}
			total += v
		}
		if compatible {
			merged[id] = total
		}
	}
	if len(merged) == 0 {
		return 0, ErrContradiction
	}

	return Draw(merged, rng)
}
