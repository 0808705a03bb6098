package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType values follow dragontoothmg's ordering so bitboard lookups map 1:1.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceLetters = [7]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	if pt > King {
		return "?"
	}
	return string(pieceLetters[pt])
}

type Piece struct {
	Type  PieceType
	Color Color
}

var NoPiece = Piece{}

func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

// Square index = rank*8 + file, a1 = 0, h8 = 63.
type Square uint8

func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) Rank() int { return int(sq) / 8 }
func (sq Square) File() int { return int(sq) % 8 }

func (sq Square) String() string {
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("%w: bad square %q", ErrInvalidMove, s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

type Move struct {
	From    Square
	To      Square
	Promote PieceType
}

// NoMove is a1a1, which is never legal.
var NoMove = Move{}

func (m Move) IsNull() bool { return m == NoMove }

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promote != NoPieceType {
		s += m.Promote.String()
	}
	return s
}

// ParseMove reads coordinate notation (e2e4, e7e8q).
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promote = Queen
		case 'r':
			m.Promote = Rook
		case 'b':
			m.Promote = Bishop
		case 'n':
			m.Promote = Knight
		default:
			return NoMove, fmt.Errorf("%w: bad promotion in %q", ErrInvalidMove, s)
		}
	}
	return m, nil
}
