package agent

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"territory/game"
	"territory/searcher"
	"territory/utils"
)

type evaluationAgent struct {
	strategy searcher.Strategy
	metrics  searcher.MetricsCollector
	budget   time.Duration
	rng      *rand.Rand
}

// NewEvaluationAgent returns an agent for actual game play. The metrics
// collector must be the one the strategy was built with; a zero budget leaves
// the strategy bounded by its own caps.
func NewEvaluationAgent(strategy searcher.Strategy, metrics searcher.MetricsCollector, budget time.Duration, seed uint64) Agent {
	if metrics == nil {
		metrics = searcher.NewNoMetricsCollector()
	}
	return &evaluationAgent{
		strategy: strategy,
		metrics:  metrics,
		budget:   budget,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *evaluationAgent) FindMove(state *game.GameState, player int) (Decision, searcher.MoveMetrics) {
	p := state.Players[player]
	if p.Eliminated {
		return Decision{Action: game.Stay(p)}, searcher.MoveMetrics{}
	}
	if !p.Placed() {
		target := place(state, player, a.rng)
		log.Debug().Int("player", player).Stringer("cell", target).Msg("placing")
		return Decision{Action: game.Action{Player: player, Target: target}}, searcher.MoveMetrics{}
	}

	var deadline time.Time
	if a.budget > 0 {
		deadline = time.Now().Add(a.budget)
	}
	action := a.strategy.BestMove(state, player, deadline)
	metrics := a.metrics.Complete()

	// A trapped player only has the degenerate stay, which LegalMoves includes
	legal := state.LegalMoves(player)
	if utils.FindIndex(legal, action) < 0 {
		log.Warn().Stringer("action", action).Str("strategy", a.strategy.Name()).Msg("strategy returned an illegal move, falling back")
		action = legal[0]
	}
	return Decision{Action: action, PowerUps: state.PowerUpsAfter(action)}, metrics
}
