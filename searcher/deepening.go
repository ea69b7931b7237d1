package searcher

import (
	"github.com/rs/zerolog/log"

	"territory/game"
)

// depthSearch runs one bounded search and reports whether it finished before
// the deadline.
type depthSearch func(depth int) (action game.Action, complete bool)

// deepen runs search at increasing depths. Only a depth that completes before
// the deadline replaces the accepted move; a depth cut short is discarded.
func deepen(c clock, maxDepth int, metrics MetricsCollector, search depthSearch) (game.Action, bool) {
	var best game.Action
	found := false
	for depth := 1; depth <= maxDepth; depth++ {
		if c.expired() {
			metrics.SetTimedOut()
			break
		}
		action, complete := search(depth)
		if !complete {
			metrics.SetTimedOut()
			log.Debug().Int("depth", depth).Msg("discarding incomplete depth")
			break
		}
		best, found = action, true
		metrics.SetDepth(depth)
		log.Debug().Int("depth", depth).Stringer("action", action).Msg("deepening-iteratively")
	}
	return best, found
}
