package board

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// Notnil is a Position backed by notnil/chess. Positions there are immutable,
// so Apply pushes the successor onto a stack and undo pops it.
type Notnil struct {
	stack   []*chess.Position
	history history
}

func NewNotnil(fen string) (*Notnil, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	n := &Notnil{stack: []*chess.Position{chess.NewGame(opt).Position()}}
	n.history = newHistory(n.Key(), n.halfmoveClock())
	return n, nil
}

func (n *Notnil) current() *chess.Position { return n.stack[len(n.stack)-1] }

func (n *Notnil) SideToMove() Color {
	if n.current().Turn() == chess.Black {
		return Black
	}
	return White
}

func (n *Notnil) LegalMoves() []Move {
	valid := n.current().ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = fromNotnilMove(m)
	}
	return moves
}

func (n *Notnil) Apply(m Move) func() {
	var found *chess.Move
	for _, vm := range n.current().ValidMoves() {
		if fromNotnilMove(vm) == m {
			found = vm
			break
		}
	}
	if found == nil {
		panic(fmt.Sprintf("board: illegal move %s in %s", m, n.FEN()))
	}
	depth := len(n.stack)
	n.stack = append(n.stack, n.current().Update(found))
	n.history.push(n.Key(), n.halfmoveClock())

	undone := false
	return func() {
		if undone {
			panic("board: move undone twice")
		}
		if len(n.stack) != depth+1 {
			panic("board: undo out of order")
		}
		undone = true
		n.history.pop()
		n.stack = n.stack[:depth]
	}
}

func (n *Notnil) Status() Status {
	switch n.current().Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	}
	if insufficientMaterial(n.PieceAt) {
		return InsufficientMaterial
	}
	return n.history.drawStatus()
}

func (n *Notnil) PieceAt(sq Square) Piece {
	p := n.current().Board().Piece(chess.Square(sq))
	if p == chess.NoPiece {
		return NoPiece
	}
	color := White
	if p.Color() == chess.Black {
		color = Black
	}
	return Piece{Type: fromNotnilType(p.Type()), Color: color}
}

// Key hashes the placement, side, castling and en-passant FEN fields.
func (n *Notnil) Key() Key {
	fields := strings.Fields(n.FEN())
	if len(fields) > 4 {
		fields = fields[:4]
	}
	h := fnv.New64a()
	h.Write([]byte(strings.Join(fields, " ")))
	return Key(h.Sum64())
}

func (n *Notnil) FEN() string { return n.current().String() }

// Ply is the number of moves applied and not yet undone.
func (n *Notnil) Ply() int { return len(n.stack) - 1 }

func (n *Notnil) halfmoveClock() int {
	fields := strings.Fields(n.FEN())
	if len(fields) < 5 {
		return 0
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return clock
}

func fromNotnilMove(m *chess.Move) Move {
	return Move{From: Square(m.S1()), To: Square(m.S2()), Promote: fromNotnilType(m.Promo())}
}

func fromNotnilType(pt chess.PieceType) PieceType {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	}
	return NoPieceType
}
