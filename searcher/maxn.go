package searcher

import (
	"time"

	"golang.org/x/exp/slices"

	"territory/game"
	"territory/meta"
)

// MaxN searches every live player's decision in index order, each player
// maximizing its own component of the score vector. Depth is counted in full
// turns.
type MaxN struct {
	config
}

func NewMaxN(options ...Option) *MaxN {
	return &MaxN{config: newConfig(meta.MAXN_DEPTH, game.EvaluateTerritory, options)}
}

func (m *MaxN) Name() string { return "maxn" }

func (m *MaxN) BestMove(root *game.GameState, player int, deadline time.Time) game.Action {
	m.metrics.Start(m.Name())
	if !root.Players[player].Live() {
		return fallback(root, player)
	}
	c := newClock(deadline)
	order := turnOrder(root, -1)

	best, ok := deepen(c, m.maxDepth, m.metrics, func(depth int) (game.Action, bool) {
		_, line := m.search(root, depth, order, 0, make([]game.Action, len(root.Players)), c)
		return line[player], !c.expired()
	})
	if !ok {
		return fallback(root, player)
	}
	return best
}

// search returns the score vector of the best line and the actions chosen for
// the current simulated turn. When every player in order has moved, gs is a
// branch-owned copy and is resolved in place.
func (m *MaxN) search(gs *game.GameState, depth int, order []int, pos int, line []game.Action, c clock) ([]float64, []game.Action) {
	m.metrics.AddNode()
	if c.expired() {
		return game.ScoreAll(gs, m.evaluate), line
	}

	if pos == len(order) {
		gs.Advance()
		if depth <= 1 || gs.LiveCount() <= 1 {
			return game.ScoreAll(gs, m.evaluate), line
		}
		scores, _ := m.search(gs, depth-1, turnOrder(gs, -1), 0, make([]game.Action, len(gs.Players)), c)
		return scores, line
	}

	id := order[pos]
	var best []float64
	var bestLine []game.Action
	for _, move := range gs.LegalMoves(id) {
		child := gs.Copy()
		child.ApplyMove(move)
		next := slices.Clone(line)
		next[id] = move

		scores, chosen := m.search(child, depth, order, pos+1, next, c)
		if best == nil || scores[id] > best[id] {
			best, bestLine = scores, chosen
		}
		if c.expired() {
			break
		}
	}
	return best, bestLine
}
