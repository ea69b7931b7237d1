package searcher

import (
	"errors"
	"fmt"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists the names accepted by New.
var Strategies = []string{"minimax", "maxn", "mcts", "greedy"}

// New builds a strategy by name.
func New(name string, options ...Option) (Strategy, error) {
	switch name {
	case "minimax":
		return NewMinimax(options...), nil
	case "maxn":
		return NewMaxN(options...), nil
	case "mcts":
		return NewMCTS(options...), nil
	case "greedy":
		return NewGreedy(options...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
