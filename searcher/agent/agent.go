package agent

import (
	"territory/game"
	"territory/searcher"
)

// Decision is everything a bot invocation produces: the committed action and
// the power-up counters to persist for the next invocation.
type Decision struct {
	Action   game.Action
	PowerUps game.PowerUps
}

type Agent interface {
	// FindMove returns the player's decision for the state and the metrics (if
	// collected) of the search that produced it
	FindMove(state *game.GameState, player int) (Decision, searcher.MoveMetrics)
}
