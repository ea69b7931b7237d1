package experiments

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"territory/engine"
	"territory/experiments/metrics"
	"territory/game"
	"territory/searcher"
	"territory/searcher/agent"
	"territory/snapshot"
)

var ErrInvalidConfig = errors.New("invalid agent config")

const (
	NumGames   = 20 // Per match up
	TimeBudget = 20 * time.Millisecond
)

// Board describes the generated maps games are played on.
type Board struct {
	Rows, Cols    int
	ShrinkPeriod  int
	ObstacleRatio float64
}

var DefaultBoard = Board{Rows: 15, Cols: 15, ShrinkPeriod: 5, ObstacleRatio: 0.08}

type Experiment struct {
	Name        string
	Games       int // Per match up
	Board       Board
	BoardFile   string // Fixed board for every game instead of generated ones
	Parallelism int // Concurrent games; zero means one
	OutDir      string
	Seed        uint64
}

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: "minimax", Budget: TimeBudget},
	{ID: 2, Strategy: "maxn", Budget: TimeBudget},
	{ID: 3, Strategy: "mcts", Budget: TimeBudget},
	{ID: 4, Strategy: "greedy"},
}

// RunStrategyExperiment plays every strategy against every other one.
func RunStrategyExperiment(outDir, boardFile string, parallelism int, seed uint64) error {
	x := Experiment{
		Name:        "strategies",
		Games:       NumGames,
		Board:       DefaultBoard,
		BoardFile:   boardFile,
		Parallelism: parallelism,
		OutDir:      outDir,
		Seed:        seed,
	}
	return x.Run(strategyConfigs, RoundRobin(strategyConfigs))
}

// RunBudgetExperiment pits each strategy with a growing time budget against
// the greedy baseline.
func RunBudgetExperiment(outDir, boardFile string, parallelism int, seed uint64) error {
	baseline := metrics.AgentConfig{ID: 0, Strategy: "greedy"}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	id := 1
	for _, strategy := range []string{"minimax", "maxn", "mcts"} {
		for _, budget := range []time.Duration{5 * time.Millisecond, 20 * time.Millisecond, 80 * time.Millisecond} {
			config := metrics.AgentConfig{ID: id, Strategy: strategy, Budget: budget}
			configs = append(configs, config)
			matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
			id++
		}
	}

	x := Experiment{
		Name:        "budget",
		Games:       NumGames,
		Board:       DefaultBoard,
		BoardFile:   boardFile,
		Parallelism: parallelism,
		OutDir:      outDir,
		Seed:        seed,
	}
	return x.Run(configs, matchUps)
}

// RoundRobin pairs every config with every later one.
func RoundRobin(configs []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

// Run plays every match up, then stores the configs, game results and move
// metrics under OutDir.
func (x Experiment) Run(configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	for _, config := range configs {
		if err := validate(config); err != nil {
			return err
		}
	}

	var fixed *game.GameState
	if x.BoardFile != "" {
		board, err := snapshot.ReadBoardFile(x.BoardFile)
		if err != nil {
			return err
		}
		fixed = board
	}

	log.Info().Msgf("starting %s experiment with %d match ups...", x.Name, len(matchUps))

	var (
		mu          sync.Mutex
		gameRecords []metrics.GameRecord
		moveRecords []metrics.MoveRecord
	)
	g := errgroup.Group{}
	g.SetLimit(max(x.Parallelism, 1))

	for mi, matchUp := range matchUps {
		for i := 0; i < x.Games; i++ {
			seats := seating(matchUp, i)
			seed := x.Seed + uint64(mi*x.Games+i)
			g.Go(func() error {
				id := uuid.NewString()
				log.Info().Msgf("starting match up %d of %d game %d of %d...", mi+1, len(matchUps), i+1, x.Games)

				gameRecord, moves, err := x.runGame(id, mi, seats, fixed, seed)
				if err != nil {
					return fmt.Errorf("failed to run match up %d game %d: %w", mi+1, i+1, err)
				}

				mu.Lock()
				defer mu.Unlock()
				gameRecords = append(gameRecords, gameRecord)
				moveRecords = append(moveRecords, moves...)
				log.Info().Msgf("completed match up %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, gameRecord.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msgf("completed %s experiment", x.Name)
	return x.store(configs, gameRecords, moveRecords)
}

// runGame plays one game on board, or on a freshly generated board when board
// is nil. The engine works on its own copy, so board is shared between games.
func (x Experiment) runGame(id string, matchUp int, seats []metrics.AgentConfig, board *game.GameState, seed uint64) (metrics.GameRecord, []metrics.MoveRecord, error) {
	agents := make([]agent.Agent, len(seats))
	ids := make([]int, len(seats))
	for i, config := range seats {
		a, err := NewAgent(config, seed+uint64(i))
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		agents[i] = a
		ids[i] = config.ID
	}

	if board == nil {
		board = game.GenerateMap(x.Board.Rows, x.Board.Cols, x.Board.ShrinkPeriod, x.Board.ObstacleRatio, seed)
	}
	_, gameMetric, moveMetrics := engine.NewLocalEngine(board, agents, seed).Run()

	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, m := range moveMetrics {
		moves[i] = metrics.NewMoveRecord(id, ids[m.Player], m)
	}
	return metrics.GameRecord{ID: id, Matchup: matchUp, Agents: ids, GameMetric: gameMetric}, moves, nil
}

func (x Experiment) store(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// seating rotates the seats every game so no config keeps the first index,
// which decides commit order.
func seating(matchUp []metrics.AgentConfig, round int) []metrics.AgentConfig {
	seats := make([]metrics.AgentConfig, len(matchUp))
	for i := range matchUp {
		seats[i] = matchUp[(i+round)%len(matchUp)]
	}
	return seats
}

func validate(config metrics.AgentConfig) error {
	if config.Strategy == "mcts" && config.Budget <= 0 && config.Episodes <= 0 {
		return fmt.Errorf("%w: mcts agent %d needs a budget or an episode cap", ErrInvalidConfig, config.ID)
	}
	return nil
}

// NewAgent builds a fresh agent for one game. Agents are never shared between
// games since strategies keep per-search state.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if err := validate(config); err != nil {
		return nil, err
	}
	collector := searcher.NewMetricsCollector()
	strategy, err := searcher.New(config.Strategy,
		searcher.WithMaxDepth(config.MaxDepth),
		searcher.WithEpisodes(config.Episodes),
		searcher.WithCutoff(config.Cutoff),
		searcher.WithSeed(seed),
		searcher.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}
	return agent.NewEvaluationAgent(strategy, collector, config.Budget, seed), nil
}
