package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// forward returns the rank direction pawns of this color advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// pawnRank returns the rank pawns of this color start on.
func (c Color) pawnRank() int {
	if c == White {
		return 2
	}
	return 7
}

// lastRank returns the rank on which pawns of this color promote.
func (c Color) lastRank() int {
	if c == White {
		return 8
	}
	return 1
}

// PieceType represents the type of a chess piece.
// The zero value NoPieceType marks an empty square or an absent promotion.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt > King {
		return ' '
	}
	return chars[pt]
}

// PieceTypeFromChar converts a lowercase FEN letter to a PieceType.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is an immutable (color, type) pair. The zero value is NoPiece.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// NewPiece creates a Piece from color and type.
func NewPiece(c Color, pt PieceType) Piece {
	return Piece{Color: c, Type: pt}
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p.Type == NoPieceType {
		return " "
	}
	c := p.Type.Char()
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		c += 'a' - 'A'
	}
	pt := PieceTypeFromChar(c)
	if pt == NoPieceType {
		return NoPiece
	}
	return NewPiece(color, pt)
}
