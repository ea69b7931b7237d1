package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// FromRows builds a state from ASCII rows, one string per board row. Cells may
// be separated by whitespace as in snapshot files.
func FromRows(shrinkPeriod int, rows ...string) (*GameState, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSnapshot)
	}

	cols := -1
	grid := make([]Cell, 0, len(rows)*len(rows[0]))
	for x, row := range rows {
		row = strings.Join(strings.Fields(row), "")
		if cols < 0 {
			cols = len(row)
		}
		if len(row) != cols || cols == 0 {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, x, len(row), cols)
		}
		for y := 0; y < len(row); y++ {
			c := Cell(row[y])
			if !c.valid() {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrInvalidSnapshot, c, x, y)
			}
			grid = append(grid, c)
		}
	}

	gs := NewGameState(len(rows), cols, shrinkPeriod, nil)
	gs.Grid = grid
	return gs, nil
}

// String renders the grid one row per line.
func (gs *GameState) String() string {
	var b strings.Builder
	for x := 0; x < gs.Rows; x++ {
		b.WriteString(string(cellBytes(gs.Grid[x*gs.Cols : (x+1)*gs.Cols])))
		b.WriteByte('\n')
	}
	return b.String()
}

// GenerateMap creates a board with point-symmetric random obstacles, so that
// no corner has an advantage over another.
func GenerateMap(rows, cols, shrinkPeriod int, obstacleRatio float64, seed uint64) *GameState {
	gs := NewGameState(rows, cols, shrinkPeriod, nil)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < len(gs.Grid)/2; i++ {
		if rng.Float64() >= obstacleRatio {
			continue
		}
		gs.Grid[i] = Obstacle
		gs.Grid[len(gs.Grid)-1-i] = Obstacle
	}
	return gs
}

// MovableCells lists the empty cells with no item on them.
func (gs *GameState) MovableCells() []Point {
	cells := []Point{}
	for i, c := range gs.Grid {
		p := gs.point(i)
		if c.IsEmpty() && gs.ItemAt(p) < 0 {
			cells = append(cells, p)
		}
	}
	return cells
}
