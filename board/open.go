package board

import (
	"errors"
	"fmt"
)

var ErrUnknownBackend = errors.New("board: unknown backend")

// Backends lists the names Open accepts.
var Backends = []string{"dragon", "notnil"}

// Open parses fen with the named rules backend.
func Open(backend, fen string) (Position, error) {
	var (
		pos Position
		err error
	)
	switch backend {
	case "dragon":
		pos, err = NewDragon(fen)
	case "notnil":
		pos, err = NewNotnil(fen)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return pos, nil
}
