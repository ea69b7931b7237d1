package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsCollector(t *testing.T) {
	t.Run("counts and resets on start", func(t *testing.T) {
		m := NewMetricsCollector()
		m.Start("mcts")
		m.AddEpisode()
		m.AddEpisode()
		m.AddFullPlayout()
		m.AddNode()
		m.SetDepth(2)
		m.SetTimedOut()

		got := m.Complete()
		require.Equal(t, "mcts", got.Strategy)
		require.Equal(t, int64(2), got.Episodes)
		require.Equal(t, int64(1), got.FullPlayouts)
		require.Equal(t, int64(1), got.Nodes)
		require.Equal(t, int64(2), got.Depth)
		require.True(t, got.TimedOut)

		m.Start("maxn")
		reset := m.Complete()
		require.Equal(t, "maxn", reset.Strategy)
		require.Zero(t, reset.Episodes, "Start should reset every counter")
		require.Zero(t, reset.FullPlayouts)
		require.Zero(t, reset.Nodes)
		require.Zero(t, reset.Depth)
		require.False(t, reset.TimedOut)
	})

	t.Run("no-op collector reports nothing", func(t *testing.T) {
		m := NewNoMetricsCollector()
		m.Start("mcts")
		m.AddEpisode()

		require.Equal(t, MoveMetrics{}, m.Complete())
	})
}
