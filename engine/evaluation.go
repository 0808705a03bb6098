package engine

import (
	"chess-opponent/board"
)

// PieceValues is the material value per piece type. The king is never traded,
// so it carries no material.
var PieceValues = [7]int{
	board.Pawn:   10,
	board.Knight: 30,
	board.Bishop: 30,
	board.Rook:   50,
	board.Queen:  90,
	board.King:   0,
}

// Piece-square tables in tenths of a score unit, indexed [row][file]. Rows are
// White's ranks; Black looks them up with the rank mirrored.
var pieceSquareTables = [7][8][8]int{
	board.King: {
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	},
	board.Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	board.Rook: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	},
	board.Bishop: {
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	},
	board.Knight: {
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 17, 17, 15, 5, -30},
		{-30, 0, 15, 17, 17, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-20, -20, 0, 5, 5, 0, -20, -20},
		{-30, -5, 0, -10, -10, 0, -5, -30},
	},
	board.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 20, 20, 20, 20, 0, 0},
		{5, -5, -10, 20, 20, -10, -5, 5},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
}

// Evaluate scores the position from White's point of view: material plus
// piece-square bonuses, White's pieces added and Black's subtracted. It does
// not look at check or mate.
func Evaluate(pos board.Position) Score {
	var tenths int
	for sq := board.Square(0); sq < 64; sq++ {
		piece := pos.PieceAt(sq)
		if piece.IsEmpty() {
			continue
		}
		row := sq.Rank()
		if piece.Color == board.Black {
			row = 7 - row
		}
		value := PieceValues[piece.Type]*10 + pieceSquareTables[piece.Type][row][sq.File()]
		if piece.Color == board.White {
			tenths += value
		} else {
			tenths -= value
		}
	}
	// Summing in integer tenths keeps Evaluate exactly antisymmetric under
	// colour mirroring.
	return Score(tenths) / 10
}
