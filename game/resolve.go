package game

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// ApplyMove commits one player's movement and any item it claims on landing.
// Actions from eliminated or unplaced players, or actions that cannot be
// committed, leave the state untouched and report false.
func (gs *GameState) ApplyMove(a Action) bool {
	if a.Player < 0 || a.Player >= len(gs.Players) {
		log.Debug().Int("player", a.Player).Msg("rejected action for unknown player")
		return false
	}
	p := &gs.Players[a.Player]
	if !p.Live() {
		log.Debug().Int("player", a.Player).Bool("eliminated", p.Eliminated).Msg("rejected action from inactive player")
		return false
	}
	if !gs.InBounds(a.Target) || gs.At(a.Target).IsBlocked() {
		log.Debug().Stringer("action", a).Msg("rejected action onto blocked cell")
		return false
	}
	if a.UsesOilSlick && !p.HasOilSlick {
		log.Debug().Stringer("action", a).Msg("rejected oil slick move without a slick")
		return false
	}

	eligible := p.CanPickUp()
	p.Pos = a.Target
	if a.UsesOilSlick {
		p.HasOilSlick = false
		p.OilSlickTurns = 0
	}
	if eligible {
		if i := gs.ItemAt(a.Target); i >= 0 {
			gs.claim(a.Player, i)
		}
	}
	return true
}

func (gs *GameState) claim(id, i int) {
	item := gs.Items[i]
	gs.Items = slices.Delete(gs.Items, i, i+1)

	p := &gs.Players[id]
	switch item.Kind {
	case SpeedBoost:
		p.SpeedBoostTurns = gs.Rules.SpeedBoostTurns
	case OilSlick:
		p.HasOilSlick = true
		p.OilSlickTurns = gs.Rules.OilSlickTurns
	case PaintBomb:
		gs.paintArea(item.Pos, p.Color)
	}
}

// paintArea repaints the square around center, skipping cells held by a
// differently colored player or shared by several players.
func (gs *GameState) paintArea(center Point, color Color) {
	r := gs.Rules.PaintBombRadius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			q := Point{center.X + dx, center.Y + dy}
			if !gs.InBounds(q) || gs.At(q).IsBlocked() {
				continue
			}
			if gs.contested(q, color) {
				continue
			}
			gs.Set(q, color.Cell())
		}
	}
}

func (gs *GameState) contested(q Point, color Color) bool {
	n := 0
	for _, pl := range gs.Players {
		if !pl.Live() || pl.Pos != q {
			continue
		}
		n++
		if pl.Color != color {
			return true
		}
	}
	return n > 1
}

// EndOfTurn resolves a turn once every player has committed its move. The
// steps run in a fixed order: painting, enclosures, shrink, timers.
func (gs *GameState) EndOfTurn(turn int) {
	gs.Paint()
	gs.ResolveEnclosures(turn)
	gs.Shrink(turn)
	gs.TickItems()
}

// Advance resolves the current turn and moves the clock forward.
func (gs *GameState) Advance() {
	gs.EndOfTurn(gs.Turn)
	gs.Turn++
}

// Paint colors every cell held by exactly one live player.
func (gs *GameState) Paint() {
	for _, p := range gs.Players {
		if !p.Live() || gs.At(p.Pos).IsBlocked() {
			continue
		}
		if gs.occupants(p.Pos) == 1 {
			gs.Set(p.Pos, p.Color.Cell())
		}
	}
}

// ringsSealedBefore is the number of rings closed before the shrink of turn.
func (gs *GameState) ringsSealedBefore(turn int) int {
	if gs.ShrinkPeriod <= 0 || turn <= 1 {
		return 0
	}
	return (turn - 1) / gs.ShrinkPeriod
}

// ResolveEnclosures fills every empty region cut off from the open border and
// bounded by a single color, eliminating intruders caught inside.
func (gs *GameState) ResolveEnclosures(turn int) {
	open := gs.ringsSealedBefore(turn)
	visited := make([]bool, len(gs.Grid))
	queue := make([]int, 0, len(gs.Grid))

	for start, cell := range gs.Grid {
		if visited[start] || !cell.IsEmpty() {
			continue
		}

		queue = append(queue[:0], start)
		visited[start] = true
		border := false
		mixed := false
		var fill Cell

		for head := 0; head < len(queue); head++ {
			p := gs.point(queue[head])
			if gs.Ring(p) <= open {
				border = true
			}
			for _, d := range Directions {
				q := p.Add(d)
				if !gs.InBounds(q) {
					border = true
					continue
				}
				j := gs.index(q)
				switch c := gs.Grid[j]; {
				case c.IsEmpty():
					if !visited[j] {
						visited[j] = true
						queue = append(queue, j)
					}
				case c.IsActiveColor():
					if fill == 0 {
						fill = c
					} else if c != fill {
						mixed = true
					}
				}
			}
		}

		if border || mixed || fill == 0 {
			continue
		}
		for _, i := range queue {
			gs.Grid[i] = fill
		}
		gs.eliminateInside(queue, Color(fill))
	}
}

func (gs *GameState) eliminateInside(region []int, owner Color) {
	for i := range gs.Players {
		p := &gs.Players[i]
		if !p.Live() || p.Color == owner {
			continue
		}
		if slices.Contains(region, gs.index(p.Pos)) {
			log.Debug().Int("player", p.ID).Stringer("owner", owner).Msg("player enclosed")
			p.eliminate()
		}
	}
}

// Shrink seals the ring due at the end of turn, if any.
func (gs *GameState) Shrink(turn int) {
	ring := gs.ShrinkRing(turn)
	if ring < 0 {
		return
	}

	for i, c := range gs.Grid {
		if gs.Ring(gs.point(i)) == ring {
			gs.Grid[i] = c.Sealed()
		}
	}
	gs.Items = slices.DeleteFunc(gs.Items, func(item Item) bool {
		return gs.Ring(item.Pos) == ring
	})
	for i := range gs.Players {
		p := &gs.Players[i]
		if p.Live() && gs.Ring(p.Pos) == ring {
			log.Debug().Int("player", p.ID).Int("ring", ring).Msg("player sealed")
			p.eliminate()
		}
	}
}

// TickItems advances held power-ups and unclaimed map items by one turn.
func (gs *GameState) TickItems() {
	for i := range gs.Players {
		gs.Players[i].tick()
	}

	for i := range gs.Items {
		gs.Items[i].TTL--
	}
	gs.Items = slices.DeleteFunc(gs.Items, func(item Item) bool {
		return item.TTL <= 0
	})
}

func (p *Player) tick() {
	if p.Eliminated {
		return
	}
	if p.SpeedBoostTurns > 0 {
		p.SpeedBoostTurns--
	}
	if p.HasOilSlick {
		p.OilSlickTurns--
		if p.OilSlickTurns <= 0 {
			p.HasOilSlick = false
			p.OilSlickTurns = 0
		}
	}
}
