package game

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested dimensions and mines.
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned when a position lies outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
)
