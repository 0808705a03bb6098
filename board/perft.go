package board

// Perft counts leaf nodes of the legal move tree to the given depth.
func Perft(pos Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := pos.Apply(m)
		nodes += Perft(pos, depth-1)
		undo()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(pos Position, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range pos.LegalMoves() {
		undo := pos.Apply(m)
		div[m] = Perft(pos, depth-1)
		undo()
	}
	return div
}
