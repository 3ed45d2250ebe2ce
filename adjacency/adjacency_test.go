package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akilmarshall/tile-image-generator/adjacency"
	"github.com/akilmarshall/tile-image-generator/grid"
)

const (
	tileA = grid.TileID(0)
	tileB = grid.TileID(1)
)

// checkerboardModel builds the alternating-columns fixture:
//
//	A B
//	A B
func checkerboardModel(t *testing.T) *adjacency.Model {
	t.Helper()
	training, err := grid.FromRows([][]grid.TileID{
		{tileA, tileB},
		{tileA, tileB},
	})
	require.NoError(t, err)
	m, err := adjacency.Build(training, 2)
	require.NoError(t, err)

	return m
}

func TestBuild_Errors(t *testing.T) {
	training, err := grid.FromRows([][]grid.TileID{{0, 1}})
	require.NoError(t, err)

	_, err = adjacency.Build(training, 0)
	require.ErrorIs(t, err, adjacency.ErrBadTileCount)

	// Tile 1 exceeds a vocabulary of size 1.
	_, err = adjacency.Build(training, 1)
	require.ErrorIs(t, err, adjacency.ErrTileRange)
}

// TestBuild_CheckerboardCounts pins the learned tables of the 2×2
// alternating-column fixture, direction by direction.
func TestBuild_CheckerboardCounts(t *testing.T) {
	m := checkerboardModel(t)

	require.Equal(t, 2, m.TileCount())
	require.Equal(t, adjacency.Distribution{tileB: 2}, m.At(tileA, grid.Right))
	require.Equal(t, adjacency.Distribution{tileA: 1}, m.At(tileA, grid.Down))
	require.Equal(t, adjacency.Distribution{tileA: 1}, m.At(tileA, grid.Up))
	require.Equal(t, adjacency.Distribution{tileA: 2}, m.At(tileB, grid.Left))
	require.Equal(t, adjacency.Distribution{tileB: 1}, m.At(tileA, grid.DownRight))
	// A has no left neighbor anywhere in training: zero evidence, empty table.
	require.Empty(t, m.At(tileA, grid.Left))

	require.Equal(t, adjacency.Distribution{tileA: 2, tileB: 2}, m.Marginal())
}

// TestBuild_Determinism: building twice from the same input must yield
// identical tables.
func TestBuild_Determinism(t *testing.T) {
	training, err := grid.FromRows([][]grid.TileID{
		{0, 1, 2},
		{2, 0, 1},
		{1, 2, 0},
	})
	require.NoError(t, err)

	m1, err := adjacency.Build(training, 3)
	require.NoError(t, err)
	m2, err := adjacency.Build(training, 3)
	require.NoError(t, err)

	for tile := grid.TileID(0); tile < 3; tile++ {
		for _, d := range grid.Directions() {
			require.Equal(t, m1.At(tile, d), m2.At(tile, d), "tile %d dir %s", tile, d)
		}
	}
	require.Equal(t, m1.Marginal(), m2.Marginal())
}

// TestBuild_SparseTraining: absent cells contribute no observations on
// either side of the pairing.
func TestBuild_SparseTraining(t *testing.T) {
	training, err := grid.NewGrid(1, 3)
	require.NoError(t, err)
	require.NoError(t, training.Set(grid.Position{X: 0, Y: 0}, tileA))
	require.NoError(t, training.Set(grid.Position{X: 2, Y: 0}, tileB))

	m, err := adjacency.Build(training, 2)
	require.NoError(t, err)

	for _, d := range grid.Directions() {
		require.Empty(t, m.At(tileA, d), "tile A dir %s", d)
		require.Empty(t, m.At(tileB, d), "tile B dir %s", d)
	}
	require.Equal(t, adjacency.Distribution{tileA: 1, tileB: 1}, m.Marginal())
}

// TestModel_Immutable: mutating an accessor's result must not leak into
// the model.
func TestModel_Immutable(t *testing.T) {
	m := checkerboardModel(t)

	got := m.At(tileA, grid.Right)
	got[tileA] = 99
	require.Equal(t, adjacency.Distribution{tileB: 2}, m.At(tileA, grid.Right))

	marg := m.Marginal()
	delete(marg, tileA)
	require.Equal(t, adjacency.Distribution{tileA: 2, tileB: 2}, m.Marginal())
}

func TestDistribution_SupportTotal(t *testing.T) {
	d := adjacency.Distribution{5: 1, 1: 3, 3: 2}
	require.Equal(t, []grid.TileID{1, 3, 5}, d.Support())
	require.Equal(t, 6, d.Total())
	require.Empty(t, adjacency.Distribution{}.Support())
}
