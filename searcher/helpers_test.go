package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"territory/game"
)

func emptyBoard(t *testing.T, rows, cols, shrinkPeriod, turn int) *game.GameState {
	t.Helper()
	lines := make([]string, rows)
	for i := range lines {
		b := make([]byte, cols)
		for j := range b {
			b[j] = '.'
		}
		lines[i] = string(b)
	}
	gs, err := game.FromRows(shrinkPeriod, lines...)
	require.NoError(t, err)
	gs.Turn = turn
	return gs
}

// immediateBest is the first legal move with the highest score right after
// the move is applied.
func immediateBest(gs *game.GameState, player int, evaluate game.Evaluator) game.Action {
	moves := gs.LegalMoves(player)
	best := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		child := gs.Copy()
		child.ApplyMove(move)
		if s := evaluate(child, player); s > bestScore {
			best, bestScore = move, s
		}
	}
	return best
}
