package game

import "errors"

var (
	// ErrIllegalMove is returned by MakeMove when the move is not among the
	// legal moves of its origin square. The game is left unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN is returned when a FEN string cannot be parsed.
	ErrInvalidFEN = errors.New("invalid FEN")
)
