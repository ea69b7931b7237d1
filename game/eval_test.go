package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateTerritory(t *testing.T) {
	t.Run("eliminated viewer scores the floor", func(t *testing.T) {
		gs := newState(t, 0, 1, "AA.", "...", "...")
		id := gs.AddPlayer(Point{0, 0})
		gs.Players[id].Eliminated = true

		require.Equal(t, EliminatedScore, EvaluateTerritory(gs, id))
	})

	t.Run("more tiles score higher", func(t *testing.T) {
		small := newState(t, 0, 1, "A..", "...", "...")
		small.AddPlayer(Point{0, 0})
		large := newState(t, 0, 1, "AAA", "...", "...")
		large.AddPlayer(Point{0, 0})

		require.Greater(t, EvaluateTerritory(large, 0), EvaluateTerritory(small, 0))
	})

	t.Run("standing on a ring about to seal is penalized", func(t *testing.T) {
		gs := newState(t, 5, 5, emptyRows(5, 5)...)
		edge := gs.AddPlayer(Point{0, 2})
		center := gs.AddPlayer(Point{2, 2})

		require.Equal(t, -DefaultWeights.SealImminent, EvaluateTerritory(gs, edge))
		require.Greater(t, EvaluateTerritory(gs, center), EvaluateTerritory(gs, edge))
	})

	t.Run("seal pressure grows as the ring's turn approaches", func(t *testing.T) {
		early := newState(t, 5, 1, emptyRows(7, 7)...)
		early.AddPlayer(Point{1, 3})
		late := early.Copy()
		late.Turn = 9

		require.Greater(t, EvaluateTerritory(early, 0), EvaluateTerritory(late, 0))
	})

	t.Run("held power-ups add value", func(t *testing.T) {
		gs := newState(t, 0, 1, emptyRows(5, 5)...)
		plain := gs.AddPlayer(Point{2, 2})
		boosted := gs.AddPlayer(Point{2, 2})
		gs.Players[boosted].SpeedBoostTurns = 3

		require.Equal(t, EvaluateTerritory(gs, plain)+3*DefaultWeights.SpeedBoostTurn, EvaluateTerritory(gs, boosted))
	})

	t.Run("unplaced player scores tiles only", func(t *testing.T) {
		gs := newState(t, 0, 0, "A..", "...", "...")
		gs.AddPlayer(Unplaced)

		require.Equal(t, DefaultWeights.Tile, EvaluateTerritory(gs, 0))
	})
}

func TestEvaluateGreedy(t *testing.T) {
	gs := newState(t, 0, 1, emptyRows(5, 5)...)
	near := gs.AddPlayer(Point{2, 2})
	far := gs.AddPlayer(Point{2, 2})
	gs.Players[far].Pos = Point{0, 0}
	gs.Players[near].Pos = Point{2, 2}
	gs.Items = []Item{{Pos: Point{2, 3}, Kind: SpeedBoost, TTL: 5}}

	require.Greater(t, EvaluateGreedy(gs, near)-EvaluateTerritory(gs, near), 0.0,
		"Greedy evaluator should be attracted to nearby items")
	require.Equal(t, EvaluateGreedy(gs, far)-EvaluateTerritory(gs, far), 0.0,
		"Items out of range add nothing")
}

func TestScoreAll(t *testing.T) {
	gs := newState(t, 0, 1, "AB.", "...", "...")
	gs.AddPlayer(Point{0, 0})
	gs.AddPlayer(Point{0, 1})
	gs.Players[1].Eliminated = true

	scores := ScoreAll(gs, EvaluateTerritory)

	require.Len(t, scores, 2)
	require.Equal(t, EvaluateTerritory(gs, 0), scores[0])
	require.Equal(t, EliminatedScore, scores[1])
}
