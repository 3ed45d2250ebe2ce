// Package adjacency: the Distribution frequency table.
package adjacency

import (
	"sort"

	"github.com/akilmarshall/tile-image-generator/grid"
)

// Distribution is a sparse frequency table over tile ids. Only observed
// ids are present; every stored count is positive.
type Distribution map[grid.TileID]int

// Support returns the ids carrying evidence, sorted ascending. The fixed
// order gives samplers a deterministic index space over the table.
// Complexity: O(k log k) for k observed ids.
func (d Distribution) Support() []grid.TileID {
	ids := make([]grid.TileID, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Total returns the sum of all counts.
// Complexity: O(k).
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}

	return total
}

// Clone returns an independent copy of d.
// Complexity: O(k).
func (d Distribution) Clone() Distribution {
	cp := make(Distribution, len(d))
	for id, n := range d {
		cp[id] = n
	}

	return cp
}
