package searcher

import (
	"territory/game"
	"territory/meta"
)

type Option func(c *config)

// config is shared by every strategy; each one reads the fields it needs.
type config struct {
	maxDepth    int
	episodes    int
	cutoff      int
	exploration float64
	evaluate    game.Evaluator
	seed        uint64
	metrics     MetricsCollector
}

func newConfig(maxDepth int, evaluate game.Evaluator, options []Option) config {
	c := config{ // Default values
		maxDepth:    maxDepth,
		cutoff:      meta.ROLLOUT_TURNS,
		exploration: Exploration,
		evaluate:    evaluate,
		seed:        meta.SEED,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(c *config) {
		if episodes > 0 {
			c.episodes = episodes
		}
	}
}

// WithCutoff sets the number of simulated turns per rollout.
func WithCutoff(turns int) Option {
	return func(c *config) {
		if turns > 0 {
			c.cutoff = turns
		}
	}
}

func WithExploration(constant float64) Option {
	return func(c *config) {
		if constant > 0 {
			c.exploration = constant
		}
	}
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func WithMetrics(metrics MetricsCollector) Option {
	return func(c *config) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}
