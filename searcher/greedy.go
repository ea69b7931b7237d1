package searcher

import (
	"math"
	"time"

	"territory/game"
)

// Greedy picks the move with the best immediate score under an evaluator that
// is attracted to nearby items and opponent tiles.
type Greedy struct {
	config
}

func NewGreedy(options ...Option) *Greedy {
	return &Greedy{config: newConfig(1, game.EvaluateGreedy, options)}
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) BestMove(root *game.GameState, player int, deadline time.Time) game.Action {
	g.metrics.Start(g.Name())
	c := newClock(deadline)

	moves := root.LegalMoves(player)
	best := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		if c.expired() {
			g.metrics.SetTimedOut()
			break
		}
		child := root.Copy()
		child.ApplyMove(move)
		g.metrics.AddNode()
		if score := g.evaluate(child, player); score > bestScore {
			best, bestScore = move, score
		}
	}
	g.metrics.SetDepth(1)
	return best
}
