package grid_test

import (
	"errors"
	"testing"

	"github.com/akilmarshall/tile-image-generator/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects degenerate shapes.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.NewGrid(tc.rows, tc.cols); !errors.Is(err, grid.ErrBadShape) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrBadShape", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestFromRows verifies shape inference and rectangularity checks.
func TestFromRows(t *testing.T) {
	if _, err := grid.FromRows(nil); !errors.Is(err, grid.ErrBadShape) {
		t.Errorf("FromRows(nil) error = %v; want ErrBadShape", err)
	}
	if _, err := grid.FromRows([][]grid.TileID{{0, 1}, {2}}); !errors.Is(err, grid.ErrNonRectangular) {
		t.Errorf("FromRows(ragged) error = %v; want ErrNonRectangular", err)
	}

	g, err := grid.FromRows([][]grid.TileID{{0, 1, 0}, {1, 0, 1}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("shape = (%d,%d); want (2,3)", g.Rows(), g.Cols())
	}
	if !g.Complete() {
		t.Error("FromRows grid not complete")
	}
	if tile, ok := g.At(grid.Position{X: 2, Y: 1}); !ok || tile != 1 {
		t.Errorf("At(2,1) = (%d,%v); want (1,true)", tile, ok)
	}
}

//----------------------------------------------------------------------------//
// Cell Access Tests
//----------------------------------------------------------------------------//

// TestSetAt exercises sparse fill, bounds checks and Complete.
func TestSetAt(t *testing.T) {
	g, err := grid.NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if _, ok := g.At(grid.Position{}); ok {
		t.Error("At on empty grid reported a filled cell")
	}
	if err = g.Set(grid.Position{X: 2, Y: 0}, 0); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Set out of bounds error = %v; want ErrOutOfBounds", err)
	}

	for i, p := range g.Positions() {
		if g.Complete() {
			t.Fatalf("Complete() true after %d of 4 cells", i)
		}
		if err = g.Set(p, grid.TileID(i)); err != nil {
			t.Fatalf("Set(%v) error: %v", p, err)
		}
	}
	if !g.Complete() || g.Len() != 4 {
		t.Errorf("Complete=%v Len=%d after full fill; want true, 4", g.Complete(), g.Len())
	}
}

// TestPositionsOrder pins the row-major walk order generators rely on.
func TestPositionsOrder(t *testing.T) {
	g, err := grid.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	want := []grid.Position{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}
	got := g.Positions()
	if len(got) != len(want) {
		t.Fatalf("len(Positions()) = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestClone verifies deep-copy independence.
func TestClone(t *testing.T) {
	g, _ := grid.FromRows([][]grid.TileID{{0, 1}, {1, 0}})
	cp := g.Clone()
	if err := cp.Set(grid.Position{X: 0, Y: 0}, 5); err != nil {
		t.Fatalf("Set on clone error: %v", err)
	}
	if tile, _ := g.At(grid.Position{X: 0, Y: 0}); tile != 0 {
		t.Errorf("mutating clone leaked into original: At(0,0) = %d; want 0", tile)
	}
}
