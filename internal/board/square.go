// Package board implements the chess board, pieces, moves and per-piece
// pseudo-legal move generation.
package board

import "fmt"

// Square is a board coordinate. Rank and File are 1-indexed:
// rank 1 is White's back rank and file 1 is the a-file.
//
// Off-board squares can be computed (see Offset) but are never stored
// on a Board.
type Square struct {
	Rank int
	File int
}

// NoSquare is the zero Square; it is never on the board.
var NoSquare = Square{}

// NewSquare creates a square from rank and file (1-indexed).
func NewSquare(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// IsValid returns true if both coordinates lie in 1..8.
func (sq Square) IsValid() bool {
	return sq.Rank >= 1 && sq.Rank <= 8 && sq.File >= 1 && sq.File <= 8
}

// Offset returns the square dr ranks and df files away. The result may be
// off the board.
func (sq Square) Offset(dr, df int) Square {
	return Square{Rank: sq.Rank + dr, File: sq.File + df}
}

// index maps a valid square to 0..63 (a1=0, h1=7, a8=56, h8=63).
func (sq Square) index() int {
	return (sq.Rank-1)*8 + (sq.File - 1)
}

// squareAt is the inverse of index.
func squareAt(i int) Square {
	return Square{Rank: i/8 + 1, File: i%8 + 1}
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File-1, '0'+sq.Rank)
}

// ParseSquare parses an algebraic square name (e.g., "e4").
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	sq := Square{Rank: int(s[1]-'1') + 1, File: int(s[0]-'a') + 1}
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}
