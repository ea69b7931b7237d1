package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, name := range Strategies {
		s, err := New(name)
		require.NoError(t, err)
		require.Equal(t, name, s.Name())
	}

	_, err := New("alphazero")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}
