package board

import (
	"fmt"
	"strings"
	"unicode"
)

// MirrorFEN returns the colour-mirrored position: ranks flipped, piece colours
// swapped, side to move, castling rights and en-passant target mirrored.
// Counters are kept.
func MirrorFEN(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	mirrored := make([]string, 8)
	for i, rank := range ranks {
		mirrored[7-i] = swapCase(rank)
	}
	fields[0] = strings.Join(mirrored, "/")

	switch fields[1] {
	case "w":
		fields[1] = "b"
	case "b":
		fields[1] = "w"
	default:
		return "", fmt.Errorf("%w: side %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		// Keep the conventional KQkq order after swapping.
		swapped := swapCase(fields[2])
		var castling strings.Builder
		for _, r := range "KQkq" {
			if strings.ContainsRune(swapped, r) {
				castling.WriteRune(r)
			}
		}
		fields[2] = castling.String()
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return "", fmt.Errorf("%w: en passant %q", ErrInvalidFEN, fields[3])
		}
		fields[3] = NewSquare(sq.File(), 7-sq.Rank()).String()
	}
	return strings.Join(fields, " "), nil
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}
