package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"territory/game"
)

func TestDeepen(t *testing.T) {
	action := func(depth int) game.Action {
		return game.Action{Target: game.Point{X: depth}}
	}

	t.Run("keeps the deepest completed depth", func(t *testing.T) {
		metrics := NewMetricsCollector()
		metrics.Start("test")

		got, ok := deepen(newClock(time.Time{}), 3, metrics, func(depth int) (game.Action, bool) {
			return action(depth), true
		})

		require.True(t, ok)
		require.Equal(t, action(3), got)
		require.Equal(t, int64(3), metrics.Complete().Depth)
	})

	t.Run("discards a depth cut short by the deadline", func(t *testing.T) {
		metrics := NewMetricsCollector()
		metrics.Start("test")
		calls := 0

		got, ok := deepen(newClock(time.Time{}), 5, metrics, func(depth int) (game.Action, bool) {
			calls++
			return action(depth), depth < 3
		})

		require.True(t, ok)
		require.Equal(t, action(2), got, "Incomplete depth 3 should not replace depth 2")
		require.Equal(t, 3, calls, "No depth should start after an incomplete one")
		require.True(t, metrics.Complete().TimedOut)
	})

	t.Run("reports nothing when no depth completes", func(t *testing.T) {
		_, ok := deepen(newClock(time.Now().Add(-time.Second)), 5, NewNoMetricsCollector(), func(int) (game.Action, bool) {
			t.Fatal("search should not start after the deadline")
			return game.Action{}, true
		})

		require.False(t, ok)
	})
}

func TestClock(t *testing.T) {
	require.False(t, newClock(time.Time{}).expired(), "Zero deadline never expires")
	require.True(t, newClock(time.Now().Add(-time.Millisecond)).expired())
	require.False(t, newClock(time.Now().Add(time.Hour)).expired())
}
