package board

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Dragon is a Position backed by dragontoothmg's bitboard move generator.
type Dragon struct {
	board   dragontoothmg.Board
	history history
	// legal[ply] caches the generated moves of the position at that ply; it is
	// reset whenever the ply is entered from its parent.
	legal [][]dragontoothmg.Move
}

func NewDragon(fen string) (d *Dragon, err error) {
	if len(strings.Fields(fen)) < 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	defer func() {
		if r := recover(); r != nil {
			d, err = nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, r)
		}
	}()
	d = &Dragon{board: dragontoothmg.ParseFen(fen)}
	d.history = newHistory(d.Key(), int(d.board.Halfmoveclock))
	return d, nil
}

func (d *Dragon) SideToMove() Color {
	if d.board.Wtomove {
		return White
	}
	return Black
}

func (d *Dragon) LegalMoves() []Move {
	generated := d.generated()
	moves := make([]Move, len(generated))
	for i, m := range generated {
		moves[i] = fromDragonMove(m)
	}
	return moves
}

func (d *Dragon) Apply(m Move) func() {
	dm, ok := d.find(m)
	if !ok {
		panic(fmt.Sprintf("board: illegal move %s in %s", m, d.FEN()))
	}
	ply := d.history.depth()
	unapply := d.board.Apply(dm)
	d.history.push(d.Key(), int(d.board.Halfmoveclock))
	d.resetCache(ply + 1)

	undone := false
	return func() {
		if undone {
			panic("board: move undone twice")
		}
		if d.history.depth() != ply+1 {
			panic("board: undo out of order")
		}
		undone = true
		d.history.pop()
		unapply()
		d.resetCache(ply + 1)
	}
}

func (d *Dragon) Status() Status {
	if len(d.generated()) == 0 {
		if d.board.OurKingInCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if insufficientMaterial(d.PieceAt) {
		return InsufficientMaterial
	}
	return d.history.drawStatus()
}

func (d *Dragon) PieceAt(sq Square) Piece {
	if pt, ok := pieceTypeAt(sq, &d.board.White); ok {
		return Piece{Type: pt, Color: White}
	}
	if pt, ok := pieceTypeAt(sq, &d.board.Black); ok {
		return Piece{Type: pt, Color: Black}
	}
	return NoPiece
}

func (d *Dragon) Key() Key { return Key(d.board.Hash()) }

func (d *Dragon) FEN() string { return d.board.ToFen() }

// Ply is the number of moves applied and not yet undone.
func (d *Dragon) Ply() int { return d.history.depth() }

func (d *Dragon) generated() []dragontoothmg.Move {
	ply := d.history.depth()
	for len(d.legal) <= ply {
		d.legal = append(d.legal, nil)
	}
	if d.legal[ply] == nil {
		d.legal[ply] = d.board.GenerateLegalMoves()
	}
	return d.legal[ply]
}

func (d *Dragon) resetCache(ply int) {
	for len(d.legal) <= ply {
		d.legal = append(d.legal, nil)
	}
	d.legal[ply] = nil
}

func (d *Dragon) find(m Move) (dragontoothmg.Move, bool) {
	for _, dm := range d.generated() {
		if fromDragonMove(dm) == m {
			return dm, true
		}
	}
	return 0, false
}

func fromDragonMove(m dragontoothmg.Move) Move {
	return Move{From: Square(m.From()), To: Square(m.To()), Promote: PieceType(m.Promote())}
}

func pieceTypeAt(sq Square, bitboards *dragontoothmg.Bitboards) (PieceType, bool) {
	bit := uint64(1) << sq
	if bitboards.All&bit == 0 {
		return NoPieceType, false
	}
	switch {
	case bitboards.Pawns&bit != 0:
		return Pawn, true
	case bitboards.Knights&bit != 0:
		return Knight, true
	case bitboards.Bishops&bit != 0:
		return Bishop, true
	case bitboards.Rooks&bit != 0:
		return Rook, true
	case bitboards.Queens&bit != 0:
		return Queen, true
	case bitboards.Kings&bit != 0:
		return King, true
	}
	return NoPieceType, false
}
