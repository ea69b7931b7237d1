package game

import (
	"fmt"

	"territory/utils"
)

// Action is one player's move for a turn.
type Action struct {
	Player       int
	Target       Point
	UsesOilSlick bool
	Steps        int // 0 stays, 1 or 2 moves
}

func (a Action) String() string {
	if a.UsesOilSlick {
		return fmt.Sprintf("p%d->%v/%d+oil", a.Player, a.Target, a.Steps)
	}
	return fmt.Sprintf("p%d->%v/%d", a.Player, a.Target, a.Steps)
}

// Stay returns the action keeping the player where it is.
func Stay(p Player) Action {
	return Action{Player: p.ID, Target: p.Pos}
}

// CandidateMoves enumerates every admissible action for the player. The result
// is empty for eliminated or unplaced players and for players with no safe
// cell in reach.
func (gs *GameState) CandidateMoves(id int) []Action {
	if id < 0 || id >= len(gs.Players) {
		return nil
	}
	p := gs.Players[id]
	if !p.Live() {
		return nil
	}

	moves := make([]Action, 0, 9)
	seen := make(map[Action]bool, 9)
	add := func(a Action) {
		if !seen[a] {
			seen[a] = true
			moves = append(moves, a)
		}
	}

	for _, d := range Directions {
		if next := p.Pos.Add(d); gs.CanLand(next) {
			add(Action{Player: id, Target: next, Steps: 1})
		}
	}
	if gs.CanLand(p.Pos) {
		add(Stay(p))
	}

	if p.SpeedBoostTurns > 0 {
		oil := p.HasOilSlick && p.OilSlickTurns > 0
		for _, d := range Directions {
			mid := p.Pos.Add(d)
			target := mid.Add(d)
			if !gs.CanLand(target) {
				continue
			}
			switch {
			case gs.CanLand(mid):
				add(Action{Player: id, Target: target, Steps: 2})
			case oil && gs.InBounds(mid) && gs.At(mid).IsBlocked() && !gs.WillSeal(mid, gs.Turn):
				add(Action{Player: id, Target: target, Steps: 2, UsesOilSlick: true})
			}
		}
	}
	return moves
}

// LegalMoves is CandidateMoves with a degenerate stay injected when nothing is
// admissible, so callers always have an action to simulate.
func (gs *GameState) LegalMoves(id int) []Action {
	moves := gs.CandidateMoves(id)
	if len(moves) > 0 {
		return moves
	}
	if id < 0 || id >= len(gs.Players) {
		return []Action{{Player: id, Target: Unplaced}}
	}
	return []Action{Stay(gs.Players[id])}
}

// IsLegal reports whether a is one of the player's candidate moves.
func (gs *GameState) IsLegal(a Action) bool {
	return utils.FindIndex(gs.CandidateMoves(a.Player), a) >= 0
}
