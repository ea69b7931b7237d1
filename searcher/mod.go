package searcher

import (
	"time"

	"territory/game"
)

// Strategy picks a move for one player of the root state before the deadline.
// The root state is never mutated. A zero deadline means the search is bounded
// by its depth or episode caps only.
type Strategy interface {
	Name() string
	BestMove(root *game.GameState, player int, deadline time.Time) game.Action
}

// fallback is the move used when a search produces nothing: the first legal
// move, or a degenerate stay for an immobile player.
func fallback(gs *game.GameState, player int) game.Action {
	return gs.LegalMoves(player)[0]
}

// clock is the search context threaded through every recursive call.
type clock struct {
	deadline time.Time
}

func newClock(deadline time.Time) clock {
	return clock{deadline: deadline}
}

func (c clock) expired() bool {
	return !c.deadline.IsZero() && !time.Now().Before(c.deadline)
}

// turnOrder lists the live players acting in a simulated turn, first player
// leading and the rest by index. A negative first keeps plain index order.
func turnOrder(gs *game.GameState, first int) []int {
	order := make([]int, 0, len(gs.Players))
	if first >= 0 && gs.Players[first].Live() {
		order = append(order, first)
	}
	for i, p := range gs.Players {
		if i != first && p.Live() {
			order = append(order, i)
		}
	}
	return order
}
