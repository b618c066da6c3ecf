package board

import "fmt"

// backRank is the piece order along rank 1 and rank 8, a-file first.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board maps squares to pieces. Squares holding NoPiece are empty.
// The zero value is an empty board ready to use.
type Board struct {
	squares [64]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStartingBoard creates a board with the standard opening layout.
func NewStartingBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

// IsValidSquare reports whether sq is on the board.
func (b *Board) IsValidSquare(sq Square) bool {
	return sq.IsValid()
}

// AddPiece places p on sq, replacing whatever was there.
// Off-board squares and NoPiece are ignored.
func (b *Board) AddPiece(sq Square, p Piece) {
	if !sq.IsValid() || p.Type == NoPieceType {
		return
	}
	b.squares[sq.index()] = p
}

// PieceAt returns the piece on sq. ok is false for empty or off-board squares.
func (b *Board) PieceAt(sq Square) (p Piece, ok bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	p = b.squares[sq.index()]
	return p, p.Type != NoPieceType
}

// IsEmpty returns true if sq is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.PieceAt(sq)
	return sq.IsValid() && !ok
}

// RemovePiece clears sq.
func (b *Board) RemovePiece(sq Square) {
	if !sq.IsValid() {
		return
	}
	b.squares[sq.index()] = NoPiece
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [64]Piece{}
}

// Reset clears the board and lays out the standard starting position.
func (b *Board) Reset() {
	b.Clear()
	for file := 1; file <= 8; file++ {
		b.AddPiece(NewSquare(1, file), NewPiece(White, backRank[file-1]))
		b.AddPiece(NewSquare(2, file), NewPiece(White, Pawn))
		b.AddPiece(NewSquare(7, file), NewPiece(Black, Pawn))
		b.AddPiece(NewSquare(8, file), NewPiece(Black, backRank[file-1]))
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.squares {
		if p.Type != NoPieceType {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied square, from a1 to h8.
func (b *Board) Each(fn func(Square, Piece)) {
	for i, p := range b.squares {
		if p.Type != NoPieceType {
			fn(squareAt(i), p)
		}
	}
}

// FindKing returns the square of c's king. ok is false when there is none.
func (b *Board) FindKing(c Color) (sq Square, ok bool) {
	king := NewPiece(c, King)
	for i, p := range b.squares {
		if p == king {
			return squareAt(i), true
		}
	}
	return NoSquare, false
}

// String returns a visual representation of the board.
func (b *Board) String() string {
	s := "\n"
	for rank := 8; rank >= 1; rank-- {
		s += fmt.Sprintf("%d  ", rank)
		for file := 1; file <= 8; file++ {
			p, ok := b.PieceAt(NewSquare(rank, file))
			if !ok {
				s += ". "
			} else {
				s += p.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	return s
}
