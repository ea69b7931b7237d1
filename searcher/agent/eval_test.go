package agent

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"territory/game"
	"territory/searcher"
)

type stubStrategy struct {
	action game.Action
}

func (s stubStrategy) Name() string { return "stub" }

func (s stubStrategy) BestMove(*game.GameState, int, time.Time) game.Action { return s.action }

func board(t *testing.T, rows ...string) *game.GameState {
	t.Helper()
	gs, err := game.FromRows(0, rows...)
	require.NoError(t, err)
	return gs
}

// captureLog redirects the global logger for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.WarnLevel)
	t.Cleanup(func() { log.Logger = saved })
	return &buf
}

func TestFindMove(t *testing.T) {
	t.Run("opening turn places on the deepest cell", func(t *testing.T) {
		gs := board(t, ".....", ".....", ".....", ".....", ".....")
		self := gs.AddPlayer(game.Unplaced)
		gs.AddPlayer(game.Unplaced)

		decision, _ := NewEvaluationAgent(searcher.NewGreedy(), nil, 0, 1).FindMove(gs, self)

		require.Equal(t, game.Point{X: 2, Y: 2}, decision.Action.Target)
		require.Equal(t, game.PowerUps{}, decision.PowerUps)
	})

	t.Run("placement skips item cells", func(t *testing.T) {
		gs := board(t, ".....", ".....", ".....", ".....", ".....")
		self := gs.AddPlayer(game.Unplaced)
		gs.Items = []game.Item{{Pos: game.Point{X: 2, Y: 2}, Kind: game.SpeedBoost, TTL: 10}}

		decision, _ := NewEvaluationAgent(searcher.NewGreedy(), nil, 0, 7).FindMove(gs, self)

		require.NotEqual(t, game.Point{X: 2, Y: 2}, decision.Action.Target)
		require.Equal(t, 1, gs.Ring(decision.Action.Target))
	})

	t.Run("eliminated player stays", func(t *testing.T) {
		gs := board(t, "...", "...", "...")
		self := gs.AddPlayer(game.Point{X: 1, Y: 1})
		gs.Players[self].Eliminated = true

		decision, metrics := NewEvaluationAgent(searcher.NewGreedy(), nil, 0, 1).FindMove(gs, self)

		require.Equal(t, game.Stay(gs.Players[self]), decision.Action)
		require.Equal(t, searcher.MoveMetrics{}, metrics)
	})

	t.Run("search result carries metrics and next power-ups", func(t *testing.T) {
		gs := board(t, ".....", ".....", ".....", ".....", ".....")
		self := gs.AddPlayer(game.Point{X: 2, Y: 2})
		gs.AddPlayer(game.Point{X: 0, Y: 0})
		gs.Players[self].SpeedBoostTurns = 3
		collector := searcher.NewMetricsCollector()
		greedy := searcher.NewGreedy(searcher.WithMetrics(collector))

		decision, metrics := NewEvaluationAgent(greedy, collector, time.Second, 1).FindMove(gs, self)

		require.True(t, gs.IsLegal(decision.Action))
		require.Equal(t, "greedy", metrics.Strategy)
		require.Equal(t, 2, decision.PowerUps.SpeedBoostTurns)
	})

	t.Run("illegal strategy output falls back", func(t *testing.T) {
		gs := board(t, "...", "...", "...")
		self := gs.AddPlayer(game.Point{X: 1, Y: 1})
		illegal := game.Action{Player: self, Target: game.Point{X: 5, Y: 5}, Steps: 1}

		logs := captureLog(t)

		decision, _ := NewEvaluationAgent(stubStrategy{action: illegal}, nil, 0, 1).FindMove(gs, self)

		require.Equal(t, gs.LegalMoves(self)[0], decision.Action)
		require.Contains(t, logs.String(), "illegal move")
	})

	t.Run("trapped player stays without a warning", func(t *testing.T) {
		gs := board(t, "#.#", "#.#", "###")
		self := gs.AddPlayer(game.Point{X: 1, Y: 1})
		gs.Set(game.Point{X: 0, Y: 1}, game.Cell('b'))
		gs.ShrinkPeriod, gs.Turn = 1, 2 // Own cell seals this turn
		stay := game.Stay(gs.Players[self])
		require.Empty(t, gs.CandidateMoves(self), "Board should leave no admissible move")
		logs := captureLog(t)

		decision, _ := NewEvaluationAgent(searcher.NewGreedy(), nil, 0, 1).FindMove(gs, self)

		require.Equal(t, stay, decision.Action)
		require.Empty(t, logs.String())
	})
}
