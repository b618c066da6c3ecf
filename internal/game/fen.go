package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chesscore/internal/board"
)

// StartFEN is the FEN string for the starting position. Castling and en
// passant are not modeled, so those fields are always "-".
const StartFEN = board.StartPlacement + " w - - 0 1"

// ParseFEN creates a game from a FEN string. The placement and side-to-move
// fields are required. Castling and en passant fields are accepted and
// ignored; the half-move clock is ignored.
func ParseFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 fields, got %d", ErrInvalidFEN, len(parts))
	}

	b, err := board.ParsePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	var turn board.Color
	switch parts[1] {
	case "w":
		turn = board.White
	case "b":
		turn = board.Black
	default:
		return nil, fmt.Errorf("%w: invalid side to move: %s", ErrInvalidFEN, parts[1])
	}

	g := NewWithBoard(b, turn)

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("%w: invalid full-move number: %s", ErrInvalidFEN, parts[5])
		}
		g.fullMove = fmn
		g.startFEN = g.FEN()
	}

	return g, nil
}

// Replay parses fen and plays moves in order. It fails on the first move
// that is not legal.
func Replay(fen string, moves []board.Move) (*Game, error) {
	g, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	for i, m := range moves {
		if err := g.MakeMove(m); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return g, nil
}

// FEN returns the FEN representation of the game.
func (g *Game) FEN() string {
	side := "w"
	if g.turn == board.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", g.board.Placement(), side, g.fullMove)
}
