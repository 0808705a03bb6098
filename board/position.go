package board

import "errors"

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

// Key identifies a position for transposition purposes: piece placement,
// side to move, castling rights and en-passant target.
type Key uint64

type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	Repetition
	FiftyMoveRule
)

var statusNames = [...]string{"ongoing", "checkmate", "stalemate", "insufficient material", "repetition", "fifty-move rule"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsOver reports any game-over condition, checkmate included.
func (s Status) IsOver() bool { return s != Ongoing }

// Position is the rules collaborator the search core drives. Implementations
// mutate in place: Apply plays a legal move and returns the closure that
// restores the exact prior state. Undo closures must run in LIFO order.
type Position interface {
	SideToMove() Color
	LegalMoves() []Move
	Apply(m Move) (undo func())
	Status() Status
	PieceAt(sq Square) Piece
	Key() Key
	FEN() string
}
