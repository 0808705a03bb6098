package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chess-opponent/board"
	"chess-opponent/engine"
)

func TestLoadSuite(t *testing.T) {
	suite, err := loadSuite("testdata/suite.yaml")
	require.NoError(t, err)
	require.Len(t, suite.Positions, 4)

	require.Equal(t, Entry{Name: "start", FEN: board.StartFEN, Depth: 2}, suite.Positions[0])
	require.Equal(t, 3, suite.Positions[2].Depth)
	require.Equal(t, 1, suite.Positions[3].Depth)
}

func TestParseSuiteErrors(t *testing.T) {
	cases := map[string]string{
		"not yaml":    "positions: [",
		"empty":       "depth: 3\n",
		"missing fen": "depth: 3\npositions:\n  - name: x\n",
		"no depth":    "positions:\n  - fen: 8/8/8/8/8/8/8/K1k5 w - - 0 1\n",
		"bad depth":   "depth: -2\npositions:\n  - fen: 8/8/8/8/8/8/8/K1k5 w - - 0 1\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseSuite([]byte(data))
			require.ErrorIs(t, err, errBadSuite)
		})
	}
}

func TestParseSuiteNamesUnnamed(t *testing.T) {
	suite, err := parseSuite([]byte("depth: 1\npositions:\n  - fen: 8/8/8/8/8/8/8/K1k5 w - - 0 1\n"))
	require.NoError(t, err)
	require.Equal(t, "#1", suite.Positions[0].Name)
}

func TestSelectSuite(t *testing.T) {
	suite, err := selectSuite("", "", 3)
	require.NoError(t, err)
	require.Equal(t, board.StartFEN, suite.Positions[0].FEN)

	_, err = selectSuite("", "", 0)
	require.ErrorIs(t, err, engine.ErrInvalidDepth)
}

func TestRunSuite(t *testing.T) {
	suite, err := loadSuite("testdata/suite.yaml")
	require.NoError(t, err)
	for _, backend := range board.Backends {
		for _, entry := range suite.Positions {
			nodes, err := run(entry, backend, 1, []engine.Option{engine.WithSeed(1)})
			require.NoError(t, err)
			require.NotZero(t, nodes)
		}
	}
	_, err = run(suite.Positions[0], "nope", 1, nil)
	require.ErrorIs(t, err, board.ErrUnknownBackend)
}
