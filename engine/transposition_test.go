package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chess-opponent/board"
)

func TestTransTableLookup(t *testing.T) {
	tt := NewTransTable()
	key := board.Key(0xdeadbeef)

	_, ok := tt.Lookup(key, 0)
	require.False(t, ok)

	tt.Store(key, 3, 1.5)
	for depth := 0; depth <= 3; depth++ {
		score, ok := tt.Lookup(key, depth)
		require.True(t, ok, "depth %d", depth)
		require.Equal(t, Score(1.5), score)
	}

	_, ok = tt.Lookup(key, 4)
	require.False(t, ok, "a shallower entry must not answer a deeper request")
}

func TestTransTableStoreReplaces(t *testing.T) {
	tt := NewTransTable()
	tt.Store(1, 5, 10)
	tt.Store(1, 2, -3)

	score, ok := tt.Lookup(1, 2)
	require.True(t, ok)
	require.Equal(t, Score(-3), score)
	_, ok = tt.Lookup(1, 5)
	require.False(t, ok)
	require.Equal(t, 1, tt.Len())
}

func TestTransTableClear(t *testing.T) {
	tt := NewTransTable()
	tt.Store(1, 1, 1)
	tt.Store(2, 1, 2)
	require.Equal(t, 2, tt.Len())

	tt.Clear()
	require.Zero(t, tt.Len())
	_, ok := tt.Lookup(1, 0)
	require.False(t, ok)
}

func TestTransTableBounds(t *testing.T) {
	tt := NewTransTable()

	require.Equal(t, int8(AlphaFlag), boundFlag(-1, 0, 5))
	require.Equal(t, int8(BetaFlag), boundFlag(5, 0, 5))
	require.Equal(t, int8(ExactFlag), boundFlag(2, 0, 5))

	tt.storeEntry(1, 2, 4, AlphaFlag)
	_, ok := tt.Lookup(1, 0)
	require.False(t, ok, "Lookup only answers with exact scores")

	score, ok := tt.useEntry(1, 2, 5, 10)
	require.True(t, ok, "upper bound below alpha fails low")
	require.Equal(t, Score(4), score)
	_, ok = tt.useEntry(1, 2, 3, 10)
	require.False(t, ok)

	tt.storeEntry(2, 2, 8, BetaFlag)
	_, ok = tt.useEntry(2, 1, 0, 7)
	require.True(t, ok, "lower bound above beta fails high")
	_, ok = tt.useEntry(2, 1, 0, 9)
	require.False(t, ok)
	_, ok = tt.useEntry(2, 3, 0, 7)
	require.False(t, ok, "entry too shallow")
}
