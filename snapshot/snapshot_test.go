package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"territory/game"
)

const mapInput = `5 6 5 7
1 2 B
2
3 3 A
-1 -1 C
. . . . . .
. A B . # .
. . b B . .
. . . A . .
. . . . . .
2
0 0 G
4 5 F
`

func TestReadMap(t *testing.T) {
	t.Run("self first with colors from the file", func(t *testing.T) {
		gs, err := ReadMap(strings.NewReader(mapInput), nil)
		require.NoError(t, err)

		require.Equal(t, 5, gs.Rows)
		require.Equal(t, 6, gs.Cols)
		require.Equal(t, 5, gs.ShrinkPeriod)
		require.Equal(t, 7, gs.Turn)
		require.Len(t, gs.Players, 3)
		require.Equal(t, game.Point{X: 1, Y: 2}, gs.Players[0].Pos)
		require.Equal(t, game.Color('B'), gs.Players[0].Color)
		require.Equal(t, game.Color('A'), gs.Players[1].Color)
		require.True(t, gs.Players[2].Eliminated, "-1 -1 after turn 0 means eliminated")
		require.Equal(t, game.Cell('b'), gs.At(game.Point{X: 2, Y: 2}))
		require.Equal(t, game.Obstacle, gs.At(game.Point{X: 1, Y: 4}))
		require.Equal(t, []game.Item{
			{Pos: game.Point{X: 0, Y: 0}, Kind: game.SpeedBoost, TTL: gs.Rules.ItemLifetime},
			{Pos: game.Point{X: 4, Y: 5}, Kind: game.OilSlick, TTL: gs.Rules.ItemLifetime},
		}, gs.Items)
	})

	t.Run("unplaced on the opening turn", func(t *testing.T) {
		input := "3 3 0 0\n-1 -1 A\n1\n-1 -1 B\n...\n...\n...\n0\n"

		gs, err := ReadMap(strings.NewReader(input), nil)
		require.NoError(t, err)

		for _, p := range gs.Players {
			require.False(t, p.Placed())
			require.False(t, p.Eliminated)
		}
	})

	t.Run("rejects broken snapshots", func(t *testing.T) {
		cases := map[string]string{
			"truncated":     "5 6 5",
			"not a number":  "5 x 5 7",
			"short row":     "2 3 0 1\n0 0 A\n0\n. . .\n. .\n0\n",
			"unknown cell":  "2 2 0 1\n0 0 A\n0\n. ?\n. .\n0\n",
			"unknown item":  "2 2 0 1\n0 0 A\n0\n. .\n. .\n1\n1 1 Z\n",
			"off the board": "2 2 0 1\n5 5 A\n0\n. .\n. .\n0\n",
			"duplicate":     "2 2 0 1\n0 0 A\n1\n1 1 A\n. .\n. .\n0\n",
		}
		for name, input := range cases {
			_, err := ReadMap(strings.NewReader(input), nil)
			require.Error(t, err, name)
		}

		_, err := ReadMap(strings.NewReader("5 x 5 7"), nil)
		require.ErrorIs(t, err, ErrMalformedInput)
		_, err = ReadMap(strings.NewReader("2 2 0 1\n0 0 A\n0\n. ?\n. .\n0\n"), nil)
		require.ErrorIs(t, err, game.ErrInvalidSnapshot)
	})

	t.Run("written maps read back", func(t *testing.T) {
		gs, err := ReadMap(strings.NewReader(mapInput), nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteMap(&buf, gs, 0))
		again, err := ReadMap(&buf, nil)
		require.NoError(t, err)

		require.Equal(t, gs.Hash(), again.Hash())
	})
}

func TestReadBoard(t *testing.T) {
	gs, err := ReadBoard(strings.NewReader("3 4 2\n....\n.#..\n. . . .\n"))
	require.NoError(t, err)

	require.Equal(t, 3, gs.Rows)
	require.Equal(t, 4, gs.Cols)
	require.Equal(t, 2, gs.ShrinkPeriod)
	require.Equal(t, game.Obstacle, gs.At(game.Point{X: 1, Y: 1}))
	require.Empty(t, gs.Players)

	_, err = ReadBoard(strings.NewReader("3 4 -1\n"))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestMove(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMove(&buf, game.Action{Target: game.Point{X: 3, Y: 4}, Steps: 1}))
	require.Equal(t, "3 4\n", buf.String())

	p, err := ReadMove(&buf)
	require.NoError(t, err)
	require.Equal(t, game.Point{X: 3, Y: 4}, p)
}

func TestPowerUpState(t *testing.T) {
	dir := t.TempDir()

	t.Run("saved counters load back", func(t *testing.T) {
		path := filepath.Join(dir, "STATE.DAT")
		want := game.PowerUps{HasOilSlick: true, OilSlickTurns: 3}

		require.NoError(t, SavePowerUps(path, want))

		require.Equal(t, want, LoadPowerUps(path))
	})

	t.Run("missing file means no power-up", func(t *testing.T) {
		require.Equal(t, game.PowerUps{}, LoadPowerUps(filepath.Join(dir, "absent.dat")))
	})

	t.Run("malformed file means no power-up", func(t *testing.T) {
		for i, content := range []string{"", "1 2", "a b c", "1 2 7"} {
			path := filepath.Join(dir, "bad"+string(rune('0'+i))+".dat")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			require.Equal(t, game.PowerUps{}, LoadPowerUps(path), "content %q", content)
		}
	})
}
