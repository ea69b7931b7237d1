package engine

import "territory/experiments/metrics"

type Engine interface {
	// Run plays a game till one player is left, the board is full or the turn
	// cap is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
