package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chess-opponent/board"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

type backend struct {
	name string
	open func(fen string) (board.Position, error)
}

var backends = []backend{
	{"dragontoothmg", func(fen string) (board.Position, error) { return board.NewDragon(fen) }},
	{"notnil", func(fen string) (board.Position, error) { return board.NewNotnil(fen) }},
}

func mustOpen(t testing.TB, b backend, fen string) board.Position {
	t.Helper()
	pos, err := b.open(fen)
	require.NoError(t, err)
	return pos
}

func mustDragon(t testing.TB, fen string) board.Position {
	t.Helper()
	return mustOpen(t, backends[0], fen)
}

func mustMove(t testing.TB, s string) board.Move {
	t.Helper()
	m, err := board.ParseMove(s)
	require.NoError(t, err)
	return m
}

func TestEvaluateStartPositionIsLevel(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			require.Equal(t, Score(0), Evaluate(mustOpen(t, b, board.StartFEN)))
		})
	}
}

func TestEvaluateKnownScore(t *testing.T) {
	// Queen on d1 is worth 90 - 0.5; the kings mirror each other.
	pos := mustDragon(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.Equal(t, Score(89.5), Evaluate(pos))
}

func TestEvaluateColourSymmetry(t *testing.T) {
	fens := []string{
		board.StartFEN,
		kiwipete,
		"4k3/8/8/8/8/8/8/3QK3 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		"rnbqkb1r/pp1p1ppp/4pn2/2p5/2PP4/2N5/PP2PPPP/R1BQKBNR w KQkq - 0 4",
	}
	for _, b := range backends {
		for _, fen := range fens {
			t.Run(b.name+"/"+fen, func(t *testing.T) {
				mirrored, err := board.MirrorFEN(fen)
				require.NoError(t, err)
				require.Equal(t, -Evaluate(mustOpen(t, b, fen)), Evaluate(mustOpen(t, b, mirrored)))
			})
		}
	}
}

func TestEvaluateBackendsAgree(t *testing.T) {
	for _, fen := range []string{board.StartFEN, kiwipete, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"} {
		want := Evaluate(mustOpen(t, backends[0], fen))
		for _, b := range backends[1:] {
			require.Equal(t, want, Evaluate(mustOpen(t, b, fen)), "%s on %s", b.name, fen)
		}
	}
}
