package game

import "github.com/hailam/chesscore/internal/board"

// Status summarizes a side's situation. It is derived on demand and never
// stored in the game.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// IsOver returns true for checkmate and stalemate.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// Status returns c's status on the current board.
func (g *Game) Status(c board.Color) Status {
	inCheck := g.IsInCheck(c)
	canMove := hasLegalMove(g.board, c)

	switch {
	case inCheck && !canMove:
		return Checkmate
	case inCheck:
		return Check
	case !canMove:
		return Stalemate
	default:
		return Ongoing
	}
}
