package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"territory/game"
)

func TestGreedy(t *testing.T) {
	t.Run("matches the best immediate greedy score", func(t *testing.T) {
		gs := emptyBoard(t, 7, 7, 0, 1)
		self := gs.AddPlayer(game.Point{X: 3, Y: 3})
		gs.AddPlayer(game.Point{X: 0, Y: 0})
		gs.Items = []game.Item{{Pos: game.Point{X: 5, Y: 3}, Kind: game.OilSlick, TTL: 5}}

		got := NewGreedy().BestMove(gs, self, time.Time{})

		require.Equal(t, immediateBest(gs, self, game.EvaluateGreedy), got)
		require.Equal(t, game.Point{X: 4, Y: 3}, got.Target, "Greedy should step toward the item")
	})

	t.Run("custom evaluator is honored", func(t *testing.T) {
		gs := emptyBoard(t, 5, 5, 0, 1)
		self := gs.AddPlayer(game.Point{X: 2, Y: 2})
		preferLeft := func(gs *game.GameState, player int) float64 {
			return -float64(gs.Players[player].Pos.Y)
		}

		got := NewGreedy(WithEvaluator(preferLeft)).BestMove(gs, self, time.Time{})

		require.Equal(t, game.Point{X: 2, Y: 1}, got.Target)
	})
}
