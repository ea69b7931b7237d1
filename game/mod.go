package game

// Evaluator scores a state from one player's point of view. Higher is better
// for that player; an eliminated player scores EliminatedScore.
type Evaluator func(gs *GameState, player int) float64

// ScoreAll evaluates the state once per roster entry, each player as its own
// viewer. The scores do not sum to zero.
func ScoreAll(gs *GameState, evaluate Evaluator) []float64 {
	scores := make([]float64, len(gs.Players))
	for i := range gs.Players {
		scores[i] = evaluate(gs, i)
	}
	return scores
}
