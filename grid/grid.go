package grid

// Grid is a Position→TileID mapping with a declared rectangular shape.
// It may be sparse: a generator fills it one cell at a time, and training
// grids are allowed to omit cells (absent cells simply contribute no
// adjacency observations). A Grid with exactly rows×cols entries is
// complete.
type Grid struct {
	rows, cols int
	cells      map[Position]TileID
}

// NewGrid allocates an empty grid with the given shape.
// Returns ErrBadShape if rows or cols is not positive.
// Complexity: O(1).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}

	return &Grid{rows: rows, cols: cols, cells: make(map[Position]TileID, rows*cols)}, nil
}

// FromRows builds a complete grid from row-major tile rows.
// Returns ErrBadShape on empty input, ErrNonRectangular if any row length
// differs from the first.
// Complexity: O(rows×cols).
func FromRows(rows [][]TileID) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	g, err := NewGrid(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for x, t := range row {
			g.cells[Position{X: x, Y: y}] = t
		}
	}

	return g, nil
}

// Rows returns the declared row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the declared column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the declared shape.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Set stores a tile at p. Returns ErrOutOfBounds if p lies outside the
// declared shape; overwriting an existing cell is allowed.
// Complexity: O(1).
func (g *Grid) Set(p Position, t TileID) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.cells[p] = t

	return nil
}

// At returns the tile at p and whether the cell is filled. Absent cells
// (including out-of-bounds positions) report false.
// Complexity: O(1).
func (g *Grid) At(p Position) (TileID, bool) {
	t, ok := g.cells[p]

	return t, ok
}

// Len returns the number of filled cells.
func (g *Grid) Len() int { return len(g.cells) }

// Complete reports whether every cell of the declared shape is filled.
func (g *Grid) Complete() bool { return len(g.cells) == g.rows*g.cols }

// Positions returns every position of the declared shape in row-major
// order (Y outer, X inner), filled or not. The fixed order makes walks
// over a Grid reproducible.
// Complexity: O(rows×cols).
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, g.rows*g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}

	return out
}

// Clone returns an independent deep copy of g.
// Complexity: O(len).
func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make(map[Position]TileID, len(g.cells))}
	for p, t := range g.cells {
		cp.cells[p] = t
	}

	return cp
}
