package metrics

import (
	"time"

	"territory/searcher"
)

// AgentConfig describes one contestant of an experiment. Zero values keep the
// strategy's defaults.
type AgentConfig struct {
	ID       int
	Strategy string
	Budget   time.Duration // Per move; zero searches to the caps only
	MaxDepth int
	Episodes int
	Cutoff   int
}

type MoveMetric struct {
	Turn   int
	Player int // Index in the game's roster
	searcher.MoveMetrics
}

type GameMetric struct {
	Winner    int // Player index
	Turns     int
	Tiles     []int // Per player at the end of the game
	Survivors int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
