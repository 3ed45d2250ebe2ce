package adjacency_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/akilmarshall/tile-image-generator/adjacency"
	"github.com/akilmarshall/tile-image-generator/grid"
)

// BenchmarkBuild measures model construction on a 256×256 training grid
// with a 32-tile vocabulary.
// Complexity: O(rows×cols×8)
func BenchmarkBuild(b *testing.B) {
	const (
		side      = 256
		tileCount = 32
	)
	rng := rand.New(rand.NewSource(42))
	rows := make([][]grid.TileID, side)
	for y := range rows {
		rows[y] = make([]grid.TileID, side)
		for x := range rows[y] {
			rows[y][x] = grid.TileID(rng.Intn(tileCount))
		}
	}
	training, err := grid.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = adjacency.Build(training, tileCount); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
