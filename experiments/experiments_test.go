package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"

	"territory/experiments/metrics"
)

func TestRoundRobin(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1}, {ID: 2}, {ID: 3}}

	matchUps := RoundRobin(configs)

	require.Len(t, matchUps, 3)
	require.Equal(t, []metrics.AgentConfig{{ID: 1}, {ID: 2}}, matchUps[0])
	require.Equal(t, []metrics.AgentConfig{{ID: 2}, {ID: 3}}, matchUps[2])
}

func TestSeating(t *testing.T) {
	matchUp := []metrics.AgentConfig{{ID: 1}, {ID: 2}}

	require.Equal(t, matchUp, seating(matchUp, 0))
	require.Equal(t, []metrics.AgentConfig{{ID: 2}, {ID: 1}}, seating(matchUp, 1))
}

func TestNewAgent(t *testing.T) {
	_, err := NewAgent(metrics.AgentConfig{ID: 3, Strategy: "mcts"}, 1)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewAgent(metrics.AgentConfig{ID: 4, Strategy: "random"}, 1)
	require.Error(t, err)

	a, err := NewAgent(metrics.AgentConfig{ID: 5, Strategy: "mcts", Episodes: 10}, 1)
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestExperimentRun(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: "greedy"},
		{ID: 2, Strategy: "minimax", MaxDepth: 1},
		{ID: 3, Strategy: "mcts", Episodes: 8, Cutoff: 2},
	}
	x := Experiment{
		Name:        "smoke",
		Games:       2,
		Board:       Board{Rows: 7, Cols: 7, ShrinkPeriod: 2},
		Parallelism: 3,
		OutDir:      t.TempDir(),
		Seed:        1,
	}

	require.NoError(t, x.Run(configs, RoundRobin(configs)))

	dirs, err := os.ReadDir(filepath.Join(x.OutDir, "smoke"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	dir := filepath.Join(x.OutDir, "smoke", dirs[0].Name())
	require.FileExists(t, filepath.Join(dir, "agent_configs.csv"))
	require.FileExists(t, filepath.Join(dir, "game_records.csv"))

	moves, err := parquet.ReadFile[metrics.MoveRecord](filepath.Join(dir, "move_records.parquet"))
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		require.Contains(t, []int32{1, 2, 3}, m.Agent)
		require.NotEmpty(t, m.Game)
	}
}

func TestExperimentBoardFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(path, []byte("5 5 2\n.....\n.#...\n.....\n...#.\n.....\n"), 0o644))
	configs := []metrics.AgentConfig{{ID: 1, Strategy: "greedy"}, {ID: 2, Strategy: "greedy"}}
	x := Experiment{Name: "fixed", Games: 1, BoardFile: path, OutDir: dir, Seed: 1}

	require.NoError(t, x.Run(configs, RoundRobin(configs)))

	x.BoardFile = filepath.Join(dir, "missing.txt")
	require.Error(t, x.Run(configs, RoundRobin(configs)))
}
