// Package game implements the turn state machine on top of the board:
// king-safety legality filtering, check, checkmate and stalemate detection,
// and move execution.
//
// A Game is not safe for concurrent use. Distinct games share no state.
package game

import (
	"fmt"

	"github.com/hailam/chesscore/internal/board"
)

// Game owns one board and tracks whose turn it is.
type Game struct {
	board    *board.Board
	turn     board.Color
	fullMove int
	history  []board.Move

	// FEN of the position history starts from
	startFEN string
}

// New creates a game at the standard starting position with White to move.
func New() *Game {
	return &Game{
		board:    board.NewStartingBoard(),
		turn:     board.White,
		fullMove: 1,
		startFEN: StartFEN,
	}
}

// NewWithBoard creates a game from a copy of b with turn to move.
func NewWithBoard(b *board.Board, turn board.Color) *Game {
	g := &Game{turn: turn, fullMove: 1}
	g.SetBoard(b)
	return g
}

// Turn returns the color to move.
func (g *Game) Turn() board.Color {
	return g.turn
}

// SetTurn sets the color to move. Before any move is played this also
// changes the recorded starting position.
func (g *Game) SetTurn(c board.Color) {
	g.turn = c
	if len(g.history) == 0 {
		g.startFEN = g.FEN()
	}
}

// Board returns a snapshot of the current board. Mutating it does not
// affect the game.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// SetBoard replaces the board with a copy of b and clears the move history.
// A nil board is replaced by an empty one.
func (g *Game) SetBoard(b *board.Board) {
	if b == nil {
		g.board = board.NewBoard()
	} else {
		g.board = b.Clone()
	}
	g.history = nil
	g.startFEN = g.FEN()
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.board = g.board.Clone()
	c.history = append([]board.Move(nil), g.history...)
	return &c
}

// History returns the moves accepted by MakeMove, oldest first.
func (g *Game) History() []board.Move {
	return append([]board.Move(nil), g.history...)
}

// StartingFEN returns the FEN of the position the move history starts from.
func (g *Game) StartingFEN() string {
	return g.startFEN
}

// FullMoveNumber returns the FEN full-move counter.
func (g *Game) FullMoveNumber() int {
	return g.fullMove
}

// ValidMoves returns the legal moves of the piece on sq. The set is empty
// when sq is empty or holds a piece of the side not to move.
func (g *Game) ValidMoves(sq board.Square) board.MoveSet {
	p, ok := g.board.PieceAt(sq)
	if !ok || p.Color != g.turn {
		return make(board.MoveSet)
	}
	return LegalMoves(g.board, sq)
}

// AllValidMoves returns every legal move of the side to move, in order.
func (g *Game) AllValidMoves() []board.Move {
	all := make(board.MoveSet)
	g.board.Each(func(sq board.Square, p board.Piece) {
		if p.Color == g.turn {
			all.Union(LegalMoves(g.board, sq))
		}
	})
	return all.Moves()
}

// MakeMove plays m if it is legal and passes the turn. Otherwise it returns
// an error wrapping ErrIllegalMove and the game is unchanged.
func (g *Game) MakeMove(m board.Move) error {
	if !g.ValidMoves(m.From).Contains(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	p, _ := g.board.PieceAt(m.From)
	applyMove(g.board, m, p)
	g.history = append(g.history, m)

	if g.turn == board.Black {
		g.fullMove++
	}
	g.turn = g.turn.Other()
	return nil
}

// IsInCheck returns true if c's king is attacked on the current board.
func (g *Game) IsInCheck(c board.Color) bool {
	return KingInCheck(g.board, c)
}

// IsInCheckmate returns true if c is in check and has no legal move.
func (g *Game) IsInCheckmate(c board.Color) bool {
	return g.IsInCheck(c) && !hasLegalMove(g.board, c)
}

// IsInStalemate returns true if c is not in check and has no legal move.
func (g *Game) IsInStalemate(c board.Color) bool {
	return !g.IsInCheck(c) && !hasLegalMove(g.board, c)
}

// LegalMoves returns the pseudo-legal moves of the piece on sq that do not
// leave its own king in check, regardless of whose turn it is. Each
// candidate is tried on a private copy of b.
func LegalMoves(b *board.Board, sq board.Square) board.MoveSet {
	legal := make(board.MoveSet)

	p, ok := b.PieceAt(sq)
	if !ok {
		return legal
	}

	for m := range board.PieceMoves(b, sq) {
		sim := b.Clone()
		applyMove(sim, m, p)
		if !KingInCheck(sim, p.Color) {
			legal.Add(m)
		}
	}
	return legal
}

// KingInCheck returns true if any opposing piece has a pseudo-legal move
// onto c's king. A board without a king of color c is never in check.
func KingInCheck(b *board.Board, c board.Color) bool {
	ksq, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return board.Attacks(b, ksq, c.Other())
}

// hasLegalMove returns true if any piece of color c has a legal move.
func hasLegalMove(b *board.Board, c board.Color) bool {
	found := false
	b.Each(func(sq board.Square, p board.Piece) {
		if !found && p.Color == c && LegalMoves(b, sq).Len() > 0 {
			found = true
		}
	})
	return found
}

// applyMove moves p along m on b, promoting when m carries a promotion type.
func applyMove(b *board.Board, m board.Move, p board.Piece) {
	if m.IsPromotion() {
		p = board.NewPiece(p.Color, m.Promotion)
	}
	b.AddPiece(m.To, p)
	b.RemovePiece(m.From)
}
