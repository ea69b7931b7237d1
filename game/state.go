package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

type StateHash uint64

// Player is a roster entry. Eliminated players keep their slot so indices stay
// stable for the whole game.
type Player struct {
	ID              int
	Pos             Point // Unplaced before the first placement
	Color           Color
	Eliminated      bool
	SpeedBoostTurns int
	HasOilSlick     bool
	OilSlickTurns   int
}

func (p Player) Placed() bool { return p.Pos != Unplaced }

// Live reports whether the player is on the board and still in the game.
func (p Player) Live() bool { return !p.Eliminated && p.Placed() }

// CanPickUp reports whether the player may claim an item. Only one power-up
// category can be active at a time.
func (p Player) CanPickUp() bool {
	return p.SpeedBoostTurns <= 0 && !p.HasOilSlick
}

func (p Player) PowerUps() PowerUps {
	return PowerUps{
		SpeedBoostTurns: p.SpeedBoostTurns,
		HasOilSlick:     p.HasOilSlick,
		OilSlickTurns:   p.OilSlickTurns,
	}
}

func (p *Player) eliminate() {
	p.Eliminated = true
	p.SpeedBoostTurns = 0
	p.HasOilSlick = false
	p.OilSlickTurns = 0
}

// GameState is a full snapshot of a match. Search code never shares a
// GameState between branches: every branch works on its own Copy.
type GameState struct {
	Rows, Cols   int
	ShrinkPeriod int // K; zero disables shrinking
	Turn         int
	Grid         []Cell // Row-major, Rows*Cols
	Players      []Player
	Items        []Item
	Rules        *Rules
}

// NewGameState returns an empty board with no players or items.
func NewGameState(rows, cols, shrinkPeriod int, rules *Rules) *GameState {
	if rules == nil {
		rules = NewStandardRules()
	}
	grid := make([]Cell, rows*cols)
	for i := range grid {
		grid[i] = Empty
	}
	return &GameState{
		Rows:         rows,
		Cols:         cols,
		ShrinkPeriod: shrinkPeriod,
		Grid:         grid,
		Rules:        rules,
	}
}

// AddPlayer appends a player with the next free color and returns its index.
func (gs *GameState) AddPlayer(pos Point) int {
	id := len(gs.Players)
	gs.Players = append(gs.Players, Player{ID: id, Pos: pos, Color: ColorOf(id)})
	return id
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Rows:         gs.Rows,
		Cols:         gs.Cols,
		ShrinkPeriod: gs.ShrinkPeriod,
		Turn:         gs.Turn,
		Grid:         slices.Clone(gs.Grid),
		Players:      slices.Clone(gs.Players),
		Items:        slices.Clone(gs.Items),
		Rules:        gs.Rules, // Assuming Rules is immutable
	}
}

func (gs *GameState) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gs.Rows && p.Y >= 0 && p.Y < gs.Cols
}

func (gs *GameState) index(p Point) int { return p.X*gs.Cols + p.Y }

func (gs *GameState) point(i int) Point { return Point{i / gs.Cols, i % gs.Cols} }

// At returns the cell at p. Out-of-bounds points read as obstacles.
func (gs *GameState) At(p Point) Cell {
	if !gs.InBounds(p) {
		return Obstacle
	}
	return gs.Grid[gs.index(p)]
}

func (gs *GameState) Set(p Point, c Cell) {
	gs.Grid[gs.index(p)] = c
}

// Ring returns the concentric layer of p, 0 being the outer edge.
func (gs *GameState) Ring(p Point) int {
	return min(p.X, gs.Rows-1-p.X, p.Y, gs.Cols-1-p.Y)
}

// ShrinkRing returns the ring sealed at the end of turn, or -1 when turn does
// not shrink the board.
func (gs *GameState) ShrinkRing(turn int) int {
	if gs.ShrinkPeriod <= 0 || turn <= 0 || turn%gs.ShrinkPeriod != 0 {
		return -1
	}
	return turn/gs.ShrinkPeriod - 1
}

// WillSeal reports whether p is on the ring closing at the end of turn.
func (gs *GameState) WillSeal(p Point, turn int) bool {
	ring := gs.ShrinkRing(turn)
	return ring >= 0 && gs.Ring(p) == ring
}

// CanLand reports whether a player may end a step on p during the current
// turn.
func (gs *GameState) CanLand(p Point) bool {
	return gs.InBounds(p) && !gs.At(p).IsBlocked() && !gs.WillSeal(p, gs.Turn)
}

func (gs *GameState) ItemAt(p Point) int {
	for i, item := range gs.Items {
		if item.Pos == p {
			return i
		}
	}
	return -1
}

func (gs *GameState) LiveCount() int {
	n := 0
	for _, p := range gs.Players {
		if p.Live() {
			n++
		}
	}
	return n
}

// occupants counts live players on p.
func (gs *GameState) occupants(p Point) int {
	n := 0
	for _, pl := range gs.Players {
		if pl.Live() && pl.Pos == p {
			n++
		}
	}
	return n
}

func (gs *GameState) TileCount(c Color) int {
	n := 0
	for _, cell := range gs.Grid {
		if cell == c.Cell() {
			n++
		}
	}
	return n
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	hasher.Write(cellBytes(gs.Grid))

	for _, p := range gs.Players {
		binary.Write(hasher, binary.LittleEndian, [6]int64{
			int64(p.Pos.X), int64(p.Pos.Y), int64(p.SpeedBoostTurns),
			int64(p.OilSlickTurns), boolInt(p.HasOilSlick), boolInt(p.Eliminated),
		})
	}

	for _, item := range gs.Items {
		binary.Write(hasher, binary.LittleEndian, [4]int64{
			int64(item.Pos.X), int64(item.Pos.Y), int64(item.Kind), int64(item.TTL),
		})
	}

	return StateHash(hasher.Sum64())
}

func cellBytes(grid []Cell) []byte {
	b := make([]byte, len(grid))
	for i, c := range grid {
		b[i] = byte(c)
	}
	return b
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Validate checks a freshly loaded snapshot before any search touches it.
func (gs *GameState) Validate() error {
	if gs.Rows <= 0 || gs.Cols <= 0 {
		return fmt.Errorf("%w: board is %dx%d", ErrInvalidSnapshot, gs.Rows, gs.Cols)
	}
	if len(gs.Grid) != gs.Rows*gs.Cols {
		return fmt.Errorf("%w: grid has %d cells, want %d", ErrInvalidSnapshot, len(gs.Grid), gs.Rows*gs.Cols)
	}
	if gs.ShrinkPeriod < 0 {
		return fmt.Errorf("%w: negative shrink period %d", ErrInvalidSnapshot, gs.ShrinkPeriod)
	}
	if gs.Turn < 0 {
		return fmt.Errorf("%w: negative turn %d", ErrInvalidSnapshot, gs.Turn)
	}
	if gs.Rules == nil {
		return fmt.Errorf("%w: missing rules", ErrInvalidSnapshot)
	}
	for i, c := range gs.Grid {
		if !c.valid() {
			return fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidSnapshot, c, gs.point(i))
		}
	}

	if len(gs.Players) == 0 || len(gs.Players) > MaxPlayers {
		return fmt.Errorf("%w: %d players", ErrInvalidSnapshot, len(gs.Players))
	}
	seen := map[Color]bool{}
	for i, p := range gs.Players {
		if p.ID != i {
			return fmt.Errorf("%w: player %d has id %d", ErrInvalidSnapshot, i, p.ID)
		}
		if !p.Color.Valid() || seen[p.Color] {
			return fmt.Errorf("%w: player %d has bad or duplicate color %q", ErrInvalidSnapshot, i, p.Color)
		}
		seen[p.Color] = true
		if p.Placed() && !gs.InBounds(p.Pos) {
			return fmt.Errorf("%w: player %d at %v is off the board", ErrInvalidSnapshot, i, p.Pos)
		}
		if p.SpeedBoostTurns < 0 || p.OilSlickTurns < 0 {
			return fmt.Errorf("%w: player %d has negative power-up counters", ErrInvalidSnapshot, i)
		}
	}

	for _, item := range gs.Items {
		if !item.Kind.Valid() {
			return fmt.Errorf("%w: unknown item %q at %v", ErrInvalidSnapshot, item.Kind, item.Pos)
		}
		if !gs.InBounds(item.Pos) {
			return fmt.Errorf("%w: item %v is off the board", ErrInvalidSnapshot, item.Pos)
		}
	}
	return nil
}
