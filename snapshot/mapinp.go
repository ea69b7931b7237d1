package snapshot

import (
	"bufio"
	"fmt"
	"io"

	"territory/game"
)

type player struct {
	pos   game.Point
	color byte
}

// ReadMap parses a MAP.INP snapshot into a state with the reading player at
// index 0. A position of -1 -1 marks a player that has not been placed yet on
// turn 0 and an eliminated player on later turns. Snapshots carry no item
// lifetimes, so every item gets the full lifetime of the rules.
func ReadMap(r io.Reader, rules *game.Rules) (*game.GameState, error) {
	if rules == nil {
		rules = game.NewStandardRules()
	}
	t := newTokens(r)

	header := [4]int{}
	for i, field := range []string{"rows", "cols", "shrink period", "turn"} {
		v, err := t.number(field)
		if err != nil {
			return nil, err
		}
		header[i] = v
	}
	rows, cols, k, turn := header[0], header[1], header[2], header[3]
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: board is %dx%d", ErrMalformedInput, rows, cols)
	}

	self, err := readPlayer(t, "self")
	if err != nil {
		return nil, err
	}
	count, err := t.number("player count")
	if err != nil {
		return nil, err
	}
	if count < 0 || count >= game.MaxPlayers {
		return nil, fmt.Errorf("%w: %d other players", ErrMalformedInput, count)
	}
	players := []player{self}
	for i := 0; i < count; i++ {
		p, err := readPlayer(t, fmt.Sprintf("player %d", i+1))
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	grid, err := t.rows(rows, cols)
	if err != nil {
		return nil, err
	}
	gs, err := game.FromRows(k, grid...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid: %w", err)
	}
	gs.Turn = turn
	gs.Rules = rules

	for _, p := range players {
		id := gs.AddPlayer(p.pos)
		gs.Players[id].Color = game.Color(p.color)
		if p.pos == game.Unplaced && turn > 0 {
			gs.Players[id].Eliminated = true
		}
	}

	items, err := t.number("item count")
	if err != nil {
		return nil, err
	}
	if items < 0 {
		return nil, fmt.Errorf("%w: %d items", ErrMalformedInput, items)
	}
	for i := 0; i < items; i++ {
		item, err := readItem(t, i, rules.ItemLifetime)
		if err != nil {
			return nil, err
		}
		gs.Items = append(gs.Items, item)
	}

	if err := gs.Validate(); err != nil {
		return nil, err
	}
	return gs, nil
}

func readPlayer(t *tokens, name string) (player, error) {
	x, err := t.number(name + " row")
	if err != nil {
		return player{}, err
	}
	y, err := t.number(name + " col")
	if err != nil {
		return player{}, err
	}
	c, err := t.char(name + " color")
	if err != nil {
		return player{}, err
	}
	return player{pos: game.Point{X: x, Y: y}, color: c}, nil
}

func readItem(t *tokens, i, ttl int) (game.Item, error) {
	name := fmt.Sprintf("item %d", i)
	x, err := t.number(name + " row")
	if err != nil {
		return game.Item{}, err
	}
	y, err := t.number(name + " col")
	if err != nil {
		return game.Item{}, err
	}
	c, err := t.char(name + " kind")
	if err != nil {
		return game.Item{}, err
	}
	return game.Item{Pos: game.Point{X: x, Y: y}, Kind: game.ItemKind(c), TTL: ttl}, nil
}

// WriteMap renders the snapshot a player would receive for gs, in the same
// format ReadMap accepts.
func WriteMap(w io.Writer, gs *game.GameState, self int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d %d\n", gs.Rows, gs.Cols, gs.ShrinkPeriod, gs.Turn)

	writePlayer := func(p game.Player) {
		pos := p.Pos
		if p.Eliminated {
			pos = game.Unplaced
		}
		fmt.Fprintf(bw, "%d %d %c\n", pos.X, pos.Y, p.Color)
	}
	writePlayer(gs.Players[self])
	fmt.Fprintf(bw, "%d\n", len(gs.Players)-1)
	for i, p := range gs.Players {
		if i != self {
			writePlayer(p)
		}
	}

	for x := 0; x < gs.Rows; x++ {
		for y := 0; y < gs.Cols; y++ {
			if y > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(byte(gs.At(game.Point{X: x, Y: y})))
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "%d\n", len(gs.Items))
	for _, item := range gs.Items {
		fmt.Fprintf(bw, "%d %d %c\n", item.Pos.X, item.Pos.Y, item.Kind)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write map: %w", err)
	}
	return nil
}
