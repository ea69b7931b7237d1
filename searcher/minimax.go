package searcher

import (
	"cmp"
	"math"
	"time"

	"golang.org/x/exp/slices"

	"territory/game"
	"territory/meta"
)

// Minimax is alpha-beta search against a single adversary: the nearest live
// opponent. Other opponents stand still. Depth is counted in plies.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(meta.MINIMAX_DEPTH, game.EvaluateTerritory, options)}
}

func (m *Minimax) Name() string { return "minimax" }

func (m *Minimax) BestMove(root *game.GameState, player int, deadline time.Time) game.Action {
	m.metrics.Start(m.Name())
	c := newClock(deadline)
	opponent := nearestOpponent(root, player)

	best, ok := deepen(c, m.maxDepth, m.metrics, func(depth int) (game.Action, bool) {
		return m.searchRoot(root, player, opponent, depth, c)
	})
	if !ok {
		return fallback(root, player)
	}
	return best
}

func (m *Minimax) searchRoot(root *game.GameState, self, opponent, depth int, c clock) (game.Action, bool) {
	moves := m.order(root, root.LegalMoves(self), self, false)
	alpha, beta := math.Inf(-1), math.Inf(1)

	best := moves[0]
	bestValue := math.Inf(-1)
	for _, move := range moves {
		v := m.afterMax(m.play(root, move), self, opponent, depth-1, alpha, beta, c)
		if v > bestValue {
			bestValue = v
			best = move
		}
		alpha = max(alpha, v)
		if c.expired() {
			return best, false
		}
	}
	return best, true
}

// afterMax continues once self has moved: the opponent replies, or the turn
// resolves when there is nobody to reply.
func (m *Minimax) afterMax(gs *game.GameState, self, opponent, depth int, alpha, beta float64, c clock) float64 {
	if opponent < 0 {
		if depth > 0 {
			gs.Advance()
		}
		return m.maxValue(gs, self, opponent, depth, alpha, beta, c)
	}
	return m.minValue(gs, self, opponent, depth, alpha, beta, c)
}

func (m *Minimax) maxValue(gs *game.GameState, self, opponent, depth int, alpha, beta float64, c clock) float64 {
	m.metrics.AddNode()
	if depth <= 0 || c.expired() || gs.LiveCount() <= 1 {
		return m.evaluate(gs, self)
	}

	v := math.Inf(-1)
	for _, move := range m.order(gs, gs.LegalMoves(self), self, false) {
		v = max(v, m.afterMax(m.play(gs, move), self, opponent, depth-1, alpha, beta, c))
		if v >= beta {
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func (m *Minimax) minValue(gs *game.GameState, self, opponent, depth int, alpha, beta float64, c clock) float64 {
	m.metrics.AddNode()
	if depth <= 0 || c.expired() || gs.LiveCount() <= 1 {
		return m.evaluate(gs, self)
	}

	v := math.Inf(1)
	for _, move := range m.order(gs, gs.LegalMoves(opponent), self, true) {
		child := m.play(gs, move)
		child.Advance()
		v = min(v, m.maxValue(child, self, opponent, depth-1, alpha, beta, c))
		if v <= alpha {
			return v
		}
		beta = min(beta, v)
	}
	return v
}

func (m *Minimax) play(gs *game.GameState, move game.Action) *game.GameState {
	child := gs.Copy()
	child.ApplyMove(move)
	return child
}

// order sorts moves by the viewer's 1-ply score, best first for the
// maximizer and worst first for the minimizer. Ties keep generation order.
func (m *Minimax) order(gs *game.GameState, moves []game.Action, viewer int, ascending bool) []game.Action {
	type scored struct {
		move  game.Action
		score float64
	}
	list := make([]scored, len(moves))
	for i, move := range moves {
		list[i] = scored{move: move, score: m.evaluate(m.play(gs, move), viewer)}
	}
	slices.SortStableFunc(list, func(a, b scored) int {
		if ascending {
			return cmp.Compare(a.score, b.score)
		}
		return cmp.Compare(b.score, a.score)
	})

	ordered := make([]game.Action, len(list))
	for i, s := range list {
		ordered[i] = s.move
	}
	return ordered
}

// nearestOpponent returns the live opponent closest to player, lowest index
// first on ties, or -1 when nobody is left.
func nearestOpponent(gs *game.GameState, player int) int {
	best, bestDistance := -1, math.MaxInt
	me := gs.Players[player]
	for i, p := range gs.Players {
		if i == player || !p.Live() {
			continue
		}
		if d := game.Distance(me.Pos, p.Pos); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best
}
