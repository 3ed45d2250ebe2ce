// Package grid: core value types — TileID, Position, Direction.
package grid

// TileID identifies a tile in a learned corpus. IDs are dense in [0, n)
// where n is the corpus size fixed by the model that owns them.
type TileID int

// Position addresses a cell: X is the column (grows rightward), Y is the
// row (grows downward, image convention).
type Position struct {
	X, Y int
}

// Shift returns the position one step away along d.
// Complexity: O(1).
func (p Position) Shift(d Direction) Position {
	off := d.Offset()
	return Position{X: p.X + off[0], Y: p.Y + off[1]}
}

// Direction names one of the 8 fixed neighbor offsets. Indices are stable:
// 0–3 are the orthogonal directions, 4–7 the diagonals. The numbering and
// offset vectors match the adjacency model's frequency-table layout, so a
// Direction doubles as a table index.
type Direction int

const (
	// Right is offset (+1, 0).
	Right Direction = iota
	// Up is offset (0, -1); Y grows downward.
	Up
	// Left is offset (-1, 0).
	Left
	// Down is offset (0, +1).
	Down
	// UpRight is offset (+1, -1).
	UpRight
	// UpLeft is offset (-1, -1).
	UpLeft
	// DownLeft is offset (-1, +1).
	DownLeft
	// DownRight is offset (+1, +1).
	DownRight
)

// NumDirections is the size of the direction table.
const NumDirections = 8

// offsets holds the (dx, dy) vector per Direction, indexed by its value.
var offsets = [NumDirections][2]int{
	{1, 0},   // Right
	{0, -1},  // Up
	{-1, 0},  // Left
	{0, 1},   // Down
	{1, -1},  // UpRight
	{-1, -1}, // UpLeft
	{-1, 1},  // DownLeft
	{1, 1},   // DownRight
}

// inverses maps each Direction to its geometric opposite:
//
//	Right↔Left, Up↔Down, UpRight↔DownLeft, UpLeft↔DownRight.
//
// Used to translate "my neighbor at d" into "their viewpoint of me".
var inverses = [NumDirections]Direction{
	Left, Down, Right, Up,
	DownLeft, DownRight, UpRight, UpLeft,
}

var names = [NumDirections]string{
	"right", "up", "left", "down",
	"up-right", "up-left", "down-left", "down-right",
}

// Offset returns the (dx, dy) vector of d.
// Complexity: O(1).
func (d Direction) Offset() [2]int { return offsets[d] }

// Inverse returns the opposite direction; Inverse is an involution.
// Complexity: O(1).
func (d Direction) Inverse() Direction { return inverses[d] }

// Diagonal reports whether d is one of the four diagonal directions.
// Complexity: O(1).
func (d Direction) Diagonal() bool { return d >= UpRight }

// String returns the lowercase name of d ("right", "up-left", ...).
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return "invalid"
	}
	return names[d]
}

// ParseDirection maps a name produced by Direction.String back to its
// Direction. Returns ErrUnknownDirection for anything else.
// Complexity: O(NumDirections).
func ParseDirection(s string) (Direction, error) {
	for i, n := range names {
		if n == s {
			return Direction(i), nil
		}
	}
	return 0, ErrUnknownDirection
}

// Orthogonal returns the four orthogonal directions in index order.
// The slice is freshly allocated; callers may modify it.
func Orthogonal() []Direction {
	return []Direction{Right, Up, Left, Down}
}

// Diagonals returns the four diagonal directions in index order.
// The slice is freshly allocated; callers may modify it.
func Diagonals() []Direction {
	return []Direction{UpRight, UpLeft, DownLeft, DownRight}
}

// Directions returns all eight directions in table-index order.
func Directions() []Direction {
	return []Direction{Right, Up, Left, Down, UpRight, UpLeft, DownLeft, DownRight}
}
