package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"territory/experiments"
	"territory/experiments/metrics"
	"territory/meta"
	"territory/snapshot"
)

func main() {
	mode := flag.String("mode", "bot", "bot plays one turn from files, experiment runs a tournament")
	strategy := flag.String("strategy", "minimax", "Search strategy: minimax, maxn, mcts or greedy")
	budget := flag.Duration("budget", meta.TimeBudget, "Search time per move")
	depth := flag.Int("depth", 0, "Depth cap, zero keeps the strategy default")
	episodes := flag.Int("episodes", 0, "MCTS episode cap, zero searches until the budget runs out")
	seed := flag.Uint64("seed", meta.SEED, "Pseudo-random seed")
	mapPath := flag.String("map", "MAP.INP", "Snapshot to read")
	statePath := flag.String("state", "STATE.DAT", "Power-up state carried between turns")
	movePath := flag.String("move", "MOVE.OUT", "Where to write the chosen move")
	experiment := flag.String("experiment", "strategies", "Experiment to run: strategies or budget")
	outDir := flag.String("out", "results", "Experiment output directory")
	boardPath := flag.String("board", "", "Board file for experiment games, generated boards when empty")
	parallel := flag.Int("parallel", runtime.NumCPU(), "Concurrent experiment games")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "bot":
		config := metrics.AgentConfig{Strategy: *strategy, Budget: *budget, MaxDepth: *depth, Episodes: *episodes}
		err = playTurn(config, *seed, *mapPath, *statePath, *movePath)
	case "experiment":
		err = runExperiment(*experiment, *outDir, *boardPath, *parallel, *seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("failed")
	}
}

// playTurn is one bot invocation: read the snapshot, decide, write the move
// and the power-ups to carry into the next turn.
func playTurn(config metrics.AgentConfig, seed uint64, mapPath, statePath, movePath string) error {
	f, err := os.Open(mapPath)
	if err != nil {
		return fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	gs, err := snapshot.ReadMap(f, nil)
	if err != nil {
		return fmt.Errorf("failed to read map: %w", err)
	}
	gs.LoadPowerUps(0, snapshot.LoadPowerUps(statePath))

	a, err := experiments.NewAgent(config, seed)
	if err != nil {
		return err
	}
	decision, m := a.FindMove(gs, 0)
	log.Debug().
		Int("turn", gs.Turn).
		Stringer("action", decision.Action).
		Int64("depth", m.Depth).
		Int64("nodes", m.Nodes).
		Int64("episodes", m.Episodes).
		Dur("took", m.Duration).
		Msg("decided")

	out, err := os.Create(movePath)
	if err != nil {
		return fmt.Errorf("failed to create move file: %w", err)
	}
	defer out.Close()
	if err := snapshot.WriteMove(out, decision.Action); err != nil {
		return err
	}
	return snapshot.SavePowerUps(statePath, decision.PowerUps)
}

func runExperiment(name, outDir, boardPath string, parallel int, seed uint64) error {
	switch name {
	case "strategies":
		return experiments.RunStrategyExperiment(outDir, boardPath, parallel, seed)
	case "budget":
		return experiments.RunBudgetExperiment(outDir, boardPath, parallel, seed)
	}
	return fmt.Errorf("unknown experiment %q", name)
}
