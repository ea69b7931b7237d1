package game

// PowerUps is the per-player state carried between invocations, since
// snapshots do not include it.
type PowerUps struct {
	SpeedBoostTurns int
	HasOilSlick     bool
	OilSlickTurns   int
}

// Sanitize drops inconsistent counters. A malformed record means no active
// power-up.
func (p PowerUps) Sanitize(rules *Rules) PowerUps {
	switch {
	case p.SpeedBoostTurns < 0, p.OilSlickTurns < 0:
		return PowerUps{}
	case p.SpeedBoostTurns > rules.SpeedBoostTurns, p.OilSlickTurns > rules.OilSlickTurns:
		return PowerUps{}
	case p.HasOilSlick && p.SpeedBoostTurns > 0:
		// Only one category can be active at a time.
		return PowerUps{}
	case p.HasOilSlick && p.OilSlickTurns == 0, !p.HasOilSlick:
		return PowerUps{SpeedBoostTurns: p.SpeedBoostTurns}
	}
	return p
}

// LoadPowerUps installs externally persisted counters for a player.
func (gs *GameState) LoadPowerUps(id int, p PowerUps) {
	p = p.Sanitize(gs.Rules)
	pl := &gs.Players[id]
	pl.SpeedBoostTurns = p.SpeedBoostTurns
	pl.HasOilSlick = p.HasOilSlick
	pl.OilSlickTurns = p.OilSlickTurns
}

// PowerUpsAfter predicts the player's counters once action is committed and
// the turn's timers have ticked.
func (gs *GameState) PowerUpsAfter(a Action) PowerUps {
	if a.Player < 0 || a.Player >= len(gs.Players) {
		return PowerUps{}
	}
	next := gs.Copy()
	next.ApplyMove(a)
	next.Players[a.Player].tick()
	return next.Players[a.Player].PowerUps()
}
