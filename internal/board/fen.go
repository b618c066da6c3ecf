package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement is the FEN piece-placement field of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement parses the piece-placement field of a FEN string.
func ParsePlacement(placement string) (*Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	b := NewBoard()
	for i, rankStr := range ranks {
		rank := 8 - i // FEN starts from rank 8
		file := 1

		for _, c := range rankStr {
			if file > 8 {
				return nil, fmt.Errorf("too many squares in rank %d", rank)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			b.AddPiece(NewSquare(rank, file), piece)
			file++
		}

		if file != 9 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", rank, file-1)
		}
	}

	return b, nil
}

// Placement returns the FEN piece-placement field for the board.
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			piece, ok := b.PieceAt(NewSquare(rank, file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
