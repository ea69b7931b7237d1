package game

// Place puts an unplaced player on its opening cell. The cell must be free of
// obstacles and sealed tiles.
func (gs *GameState) Place(id int, p Point) bool {
	if id < 0 || id >= len(gs.Players) {
		return false
	}
	pl := &gs.Players[id]
	if pl.Eliminated || pl.Placed() || !gs.InBounds(p) || gs.At(p).IsBlocked() {
		return false
	}
	pl.Pos = p
	return true
}

// ViewFor returns what a player sees in a snapshot file: the board, every
// position and item, but only its own power-up counters. Item lifetimes are
// not published either, so every item reads as freshly spawned.
func (gs *GameState) ViewFor(id int) *GameState {
	view := gs.Copy()
	for i := range view.Players {
		if i != id {
			view.Players[i].SpeedBoostTurns = 0
			view.Players[i].HasOilSlick = false
			view.Players[i].OilSlickTurns = 0
		}
	}
	for i := range view.Items {
		view.Items[i].TTL = view.Rules.ItemLifetime
	}
	return view
}

// Winner returns the live player holding the most tiles, or the best player
// overall once nobody is left. Ties go to the lower index.
func (gs *GameState) Winner() int {
	winner, best, live := -1, -1, false
	for i, p := range gs.Players {
		if live && !p.Live() {
			continue
		}
		tiles := gs.TileCount(p.Color)
		if p.Live() && !live {
			winner, best, live = i, tiles, true
			continue
		}
		if tiles > best {
			winner, best = i, tiles
		}
	}
	return winner
}
