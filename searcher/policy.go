package searcher

import "math"

// Hyperparameters for MCTS

const Exploration = 1.414 // UCT exploration constant C

// RewardScale is the score margin that moves a rollout reward from 0.5 to
// about 0.73.
const RewardScale = 500.0

type uct struct {
	numerator float64
}

func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * c * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + c*sqrt(ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// rewards squashes evaluator scores into [0, 1]: the logistic of a player's
// margin over its best live rival, zero once eliminated.
func rewards(scores []float64, live []bool) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		if !live[i] {
			continue
		}
		rival := math.Inf(-1)
		for j, o := range scores {
			if j != i && live[j] && o > rival {
				rival = o
			}
		}
		if math.IsInf(rival, -1) { // Sole survivor
			out[i] = 1
			continue
		}
		out[i] = 1 / (1 + math.Exp(-(s-rival)/RewardScale))
	}
	return out
}
