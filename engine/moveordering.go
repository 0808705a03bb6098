package engine

import (
	"slices"

	"chess-opponent/board"
)

// Shuffler is an injected random source; *rand.Rand from golang.org/x/exp/rand
// and math/rand both satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type move struct {
	move  board.Move
	score int
}

/*
	Move ordering only changes how fast alpha-beta cuts, and which of several
	equally scored moves is found first.
	- Captures come before quiet moves, ranked by MVV-LVA: 100*victim - attacker.
	- Quiet moves keep the order they came in, shuffled first if a Shuffler is set.
*/

// captureScore returns the MVV-LVA score of m, or false for a quiet move.
func captureScore(pos board.Position, m board.Move) (int, bool) {
	attacker := pos.PieceAt(m.From)
	victim := pos.PieceAt(m.To)
	if victim.IsEmpty() {
		// En passant: a pawn moving diagonally onto an empty square.
		if attacker.Type != board.Pawn || m.From.File() == m.To.File() {
			return 0, false
		}
		victim = board.Piece{Type: board.Pawn, Color: attacker.Color.Other()}
	}
	return 100*PieceValues[victim.Type] - PieceValues[attacker.Type], true
}

// OrderMoves returns moves with captures first, best MVV-LVA first. The input
// slice is not modified.
func OrderMoves(pos board.Position, moves []board.Move, shuffler Shuffler) []board.Move {
	scored := make([]move, len(moves))
	for i, m := range moves {
		scored[i].move = m
	}
	if shuffler != nil {
		shuffler.Shuffle(len(scored), func(i, j int) { scored[i], scored[j] = scored[j], scored[i] })
	}

	for i := range scored {
		// Every capture scores at least 100*10 - 90, so quiet moves stay below.
		if score, ok := captureScore(pos, scored[i].move); ok {
			scored[i].score = score
		}
	}
	slices.SortStableFunc(scored, func(a, b move) int { return b.score - a.score })

	ordered := make([]board.Move, len(scored))
	for i := range scored {
		ordered[i] = scored[i].move
	}
	return ordered
}
