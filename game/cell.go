package game

import "fmt"

// Cell is a single board square as it appears in a snapshot grid.
type Cell byte

const (
	Empty    Cell = '.'
	Obstacle Cell = '#'
)

// MaxPlayers is the number of distinct color tags (A-D).
const MaxPlayers = 4

func (c Cell) IsEmpty() bool       { return c == Empty }
func (c Cell) IsObstacle() bool    { return c == Obstacle }
func (c Cell) IsActiveColor() bool { return c >= 'A' && c < 'A'+MaxPlayers }
func (c Cell) IsSealedColor() bool { return c >= 'a' && c < 'a'+MaxPlayers }

// IsBlocked reports whether the cell can never be entered again.
func (c Cell) IsBlocked() bool { return c.IsObstacle() || c.IsSealedColor() }

// Sealed returns the permanent form of the cell once its ring closes.
func (c Cell) Sealed() Cell {
	switch {
	case c.IsEmpty():
		return Obstacle
	case c.IsActiveColor():
		return c - 'A' + 'a'
	default:
		return c
	}
}

func (c Cell) valid() bool {
	return c.IsEmpty() || c.IsObstacle() || c.IsActiveColor() || c.IsSealedColor()
}

// Color is a player's uppercase tag.
type Color byte

// ColorOf returns the color for the i-th player in a fresh game.
func ColorOf(i int) Color { return Color('A' + i) }

func (c Color) Cell() Cell  { return Cell(c) }
func (c Color) Valid() bool { return Cell(c).IsActiveColor() }

func (c Color) String() string { return string(rune(c)) }

// Point addresses a cell. X is the row and Y the column, matching the
// snapshot file layout.
type Point struct {
	X, Y int
}

// Unplaced marks a player that has no position on the board.
var Unplaced = Point{-1, -1}

func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Distance is the Manhattan distance between two points.
func Distance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

var (
	Up    = Point{-1, 0}
	Down  = Point{1, 0}
	Left  = Point{0, -1}
	Right = Point{0, 1}
)

// Directions lists the cardinal steps in generation order.
var Directions = [4]Point{Up, Down, Left, Right}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
