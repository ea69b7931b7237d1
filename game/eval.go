package game

// EliminatedScore is what any evaluator returns for an eliminated viewer.
const EliminatedScore = -1e9

// Weights parameterizes the static evaluator.
type Weights struct {
	Tile           float64 // Per owned tile
	SealImminent   float64 // Penalty for standing on the ring closing this turn
	SealPressure   float64 // Per turn of pressure once the ring closes within one period
	Depth          float64 // Per ring of distance from the original edge
	OilSlick       float64 // Flat bonus for holding a slick
	OilSlickTurn   float64 // Per remaining slick turn
	SpeedBoostTurn float64 // Per remaining boost turn
	ItemNearby     float64 // Attraction to claimable items within two steps
	OpponentNearby float64 // Attraction to opponent tiles within two steps
}

var DefaultWeights = Weights{
	Tile:           100,
	SealImminent:   5000,
	SealPressure:   80,
	Depth:          5,
	OilSlick:       100,
	OilSlickTurn:   10,
	SpeedBoostTurn: 50,
}

// GreedyWeights adds short-range attraction terms for shallow searchers.
var GreedyWeights = Weights{
	Tile:           100,
	SealImminent:   5000,
	SealPressure:   80,
	Depth:          5,
	OilSlick:       100,
	OilSlickTurn:   10,
	SpeedBoostTurn: 50,
	ItemNearby:     30,
	OpponentNearby: 10,
}

// EvaluateTerritory is the default evaluator used by the deep searchers.
func EvaluateTerritory(gs *GameState, player int) float64 {
	return DefaultWeights.Score(gs, player)
}

// EvaluateGreedy includes item and opponent attraction.
func EvaluateGreedy(gs *GameState, player int) float64 {
	return GreedyWeights.Score(gs, player)
}

func (w Weights) Score(gs *GameState, player int) float64 {
	p := gs.Players[player]
	if p.Eliminated {
		return EliminatedScore
	}

	score := float64(gs.TileCount(p.Color)) * w.Tile
	if !p.Placed() {
		return score
	}

	score += w.safety(gs, p.Pos)
	if p.HasOilSlick {
		score += w.OilSlick + float64(p.OilSlickTurns)*w.OilSlickTurn
	}
	score += float64(p.SpeedBoostTurns) * w.SpeedBoostTurn

	if w.ItemNearby != 0 && p.CanPickUp() {
		for _, item := range gs.Items {
			if d := Distance(p.Pos, item.Pos); d <= 2 {
				score += float64(3-d) * w.ItemNearby
			}
		}
	}
	if w.OpponentNearby != 0 {
		score += w.opponentAttraction(gs, p)
	}
	return score
}

// safety penalizes rings about to close and rewards depth otherwise.
func (w Weights) safety(gs *GameState, pos Point) float64 {
	ring := gs.Ring(pos)
	k := gs.ShrinkPeriod
	if k <= 0 {
		return float64(ring) * w.Depth
	}

	due := (ring+1)*k - gs.Turn
	switch {
	case due <= 0:
		return -w.SealImminent
	case due <= k:
		return -float64(k-due+1) * w.SealPressure
	default:
		return float64(ring) * w.Depth
	}
}

func (w Weights) opponentAttraction(gs *GameState, p Player) float64 {
	score := 0.0
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			q := Point{p.Pos.X + dx, p.Pos.Y + dy}
			c := gs.At(q)
			if c.IsActiveColor() && c != p.Color.Cell() {
				score += w.OpponentNearby / float64(1+Distance(p.Pos, q))
			}
		}
	}
	return score
}
