package agent

import (
	"golang.org/x/exp/rand"

	"territory/game"
)

// place picks an opening cell: deep inside the board so it seals late, with
// room to move, away from already placed opponents. Item cells are avoided
// so the first move can still pick them up.
func place(gs *game.GameState, player int, rng *rand.Rand) game.Point {
	best := []game.Point{}
	bestScore := -1
	for _, p := range gs.MovableCells() {
		if occupied(gs, p) {
			continue
		}
		score := 3*gs.Ring(p) + freeNeighbours(gs, p) + opponentDistance(gs, player, p)
		switch {
		case score > bestScore:
			best, bestScore = append(best[:0], p), score
		case score == bestScore:
			best = append(best, p)
		}
	}
	if len(best) == 0 {
		return game.Unplaced
	}
	return best[rng.Intn(len(best))]
}

func occupied(gs *game.GameState, p game.Point) bool {
	for _, pl := range gs.Players {
		if pl.Live() && pl.Pos == p {
			return true
		}
	}
	return false
}

func freeNeighbours(gs *game.GameState, p game.Point) int {
	n := 0
	for _, d := range game.Directions {
		if gs.CanLand(p.Add(d)) {
			n++
		}
	}
	return n
}

// opponentDistance is the distance to the nearest placed opponent, capped so
// that depth stays the main criterion.
func opponentDistance(gs *game.GameState, player int, p game.Point) int {
	const limit = 4
	nearest := limit
	for i, pl := range gs.Players {
		if i != player && pl.Live() {
			nearest = min(nearest, game.Distance(pl.Pos, p))
		}
	}
	return nearest
}
