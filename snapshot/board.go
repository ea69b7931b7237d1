package snapshot

import (
	"fmt"
	"io"
	"os"

	"territory/game"
)

// ReadBoard parses an engine board file: "M N K" followed by M rows.
func ReadBoard(r io.Reader) (*game.GameState, error) {
	t := newTokens(r)
	rows, err := t.number("rows")
	if err != nil {
		return nil, err
	}
	cols, err := t.number("cols")
	if err != nil {
		return nil, err
	}
	k, err := t.number("shrink period")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 || k < 0 {
		return nil, fmt.Errorf("%w: header %d %d %d", ErrMalformedInput, rows, cols, k)
	}

	grid, err := t.rows(rows, cols)
	if err != nil {
		return nil, err
	}
	gs, err := game.FromRows(k, grid...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}
	return gs, nil
}

func ReadBoardFile(path string) (*game.GameState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board file: %w", err)
	}
	defer f.Close()
	return ReadBoard(f)
}

// WriteMove writes the chosen target as "x y".
func WriteMove(w io.Writer, a game.Action) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", a.Target.X, a.Target.Y); err != nil {
		return fmt.Errorf("failed to write move: %w", err)
	}
	return nil
}

// ReadMove parses a MOVE.OUT written by WriteMove.
func ReadMove(r io.Reader) (game.Point, error) {
	t := newTokens(r)
	x, err := t.number("move row")
	if err != nil {
		return game.Unplaced, err
	}
	y, err := t.number("move col")
	if err != nil {
		return game.Unplaced, err
	}
	return game.Point{X: x, Y: y}, nil
}
