package board

// insufficientMaterial reports positions where neither side can mate by any
// sequence of legal moves: K v K, K+minor v K and K+B v K+B with all bishops
// on the same square colour.
func insufficientMaterial(pieceAt func(Square) Piece) bool {
	var minors [2]int
	var bishopColours [2]int // bit 0: light square, bit 1: dark square
	for sq := Square(0); sq < 64; sq++ {
		p := pieceAt(sq)
		switch p.Type {
		case NoPieceType, King:
			continue
		case Knight:
			minors[p.Color]++
		case Bishop:
			minors[p.Color]++
			if (sq.Rank()+sq.File())%2 == 0 {
				bishopColours[p.Color] |= 2
			} else {
				bishopColours[p.Color] |= 1
			}
		default:
			return false
		}
	}

	total := minors[White] + minors[Black]
	if total <= 1 {
		return true
	}
	// Only bishops left, one per side, on the same colour.
	if minors[White] == 1 && minors[Black] == 1 {
		w, b := bishopColours[White], bishopColours[Black]
		return w != 0 && w == b
	}
	return false
}
