package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, shrinkPeriod, turn int, rows ...string) *GameState {
	t.Helper()
	gs, err := FromRows(shrinkPeriod, rows...)
	require.NoError(t, err, "Test board should parse")
	gs.Turn = turn
	return gs
}

func emptyRows(rows, cols int) []string {
	out := make([]string, rows)
	for i := range out {
		b := make([]byte, cols)
		for j := range b {
			b[j] = '.'
		}
		out[i] = string(b)
	}
	return out
}

func targets(moves []Action) []Point {
	out := make([]Point, len(moves))
	for i, m := range moves {
		out[i] = m.Target
	}
	return out
}
