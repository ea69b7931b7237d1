package engine

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"territory/experiments/metrics"
	"territory/game"
	"territory/meta"
	"territory/searcher/agent"
)

type LocalEngine struct {
	State    *game.GameState
	Agents   []agent.Agent
	MaxTurns int
	rng      *rand.Rand
}

// NewLocalEngine seats one player per agent on a copy of board. Players start
// unplaced and pick their cells on turn 0.
func NewLocalEngine(board *game.GameState, agents []agent.Agent, seed uint64) *LocalEngine {
	if len(agents) < 2 {
		panic("need at least two agents")
	}
	if len(agents) > game.MaxPlayers {
		panic("too many agents")
	}

	state := board.Copy()
	state.Turn = 0
	state.Players = nil
	state.Items = nil
	for range agents {
		state.AddPlayer(game.Unplaced)
	}

	return &LocalEngine{
		State:    state,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run executes the entire game loop until the game is over.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	log.Info().Msgf("starting game with %d agents on a %dx%d board", len(e.Agents), e.State.Rows, e.State.Cols)

	var moveMetrics []metrics.MoveMetric
	for !e.over() {
		moveMetrics = append(moveMetrics, e.step()...)
	}

	winner := e.State.Winner()
	tiles := make([]int, len(e.State.Players))
	for i, p := range e.State.Players {
		tiles[i] = e.State.TileCount(p.Color)
	}
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:    winner,
		Turns:     e.State.Turn,
		Tiles:     tiles,
		Survivors: e.State.LiveCount(),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	log.Info().Int("winner", winner).Int("turns", e.State.Turn).Ints("tiles", tiles).Msg("game over")
	return winner, gameMetric, moveMetrics
}

// step plays one turn. Moves are decided on the same pre-turn state, while
// opening cells are taken in seat order so that later players see the cells
// already claimed.
func (e *LocalEngine) step() []metrics.MoveMetric {
	if e.State.ShrinkPeriod > 0 && e.State.Turn%e.State.ShrinkPeriod == 0 {
		e.spawnItems()
	}

	var moveMetrics []metrics.MoveMetric
	decisions := make([]*agent.Decision, len(e.Agents))
	for i, a := range e.Agents {
		p := e.State.Players[i]
		if p.Eliminated {
			continue
		}
		decision, m := a.FindMove(e.State.ViewFor(i), i)
		if !p.Placed() {
			e.place(i, decision.Action.Target)
			continue
		}
		decisions[i] = &decision
		if m.Strategy != "" {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{Turn: e.State.Turn, Player: i, MoveMetrics: m})
		}
	}
	e.commit(decisions)

	log.Debug().Int("turn", e.State.Turn).Int("alive", e.State.LiveCount()).Msg("turn resolved")
	e.State.Advance()
	return moveMetrics
}

func (e *LocalEngine) place(i int, cell game.Point) {
	if !e.State.Place(i, cell) {
		log.Warn().Int("player", i).Stringer("cell", cell).Msg("placement refused")
		e.State.Players[i].Eliminated = true
	}
}

// commit applies the turn's moves in index order.
func (e *LocalEngine) commit(decisions []*agent.Decision) {
	for _, d := range decisions {
		if d == nil {
			continue
		}
		if !e.State.ApplyMove(d.Action) {
			log.Warn().Stringer("action", d.Action).Msg("move refused")
		}
	}
}

func (e *LocalEngine) over() bool {
	if e.State.Turn >= e.MaxTurns {
		return true
	}
	if e.State.Turn > 0 && e.State.LiveCount() <= 1 {
		return true
	}
	for _, c := range e.State.Grid {
		if !c.IsBlocked() {
			return false
		}
	}
	return true
}

// spawnItems drops distinct item kinds on random free cells.
func (e *LocalEngine) spawnItems() {
	cells := e.State.MovableCells()
	free := cells[:0]
	for _, c := range cells {
		if !e.occupied(c) {
			free = append(free, c)
		}
	}

	kinds := game.ItemKinds
	e.rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
	for _, kind := range kinds[:min(e.State.Rules.ItemsPerSpawn, len(kinds))] {
		if len(free) == 0 {
			return
		}
		i := e.rng.Intn(len(free))
		e.State.Items = append(e.State.Items, game.Item{Pos: free[i], Kind: kind, TTL: e.State.Rules.ItemLifetime})
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]
	}
}

func (e *LocalEngine) occupied(p game.Point) bool {
	for _, pl := range e.State.Players {
		if pl.Live() && pl.Pos == p {
			return true
		}
	}
	return false
}
