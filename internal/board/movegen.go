package board

import "log"

// DebugMoveGeneration logs generator calls on empty squares.
var DebugMoveGeneration = false

// direction is a (rank, file) step.
type direction struct {
	dr, df int
}

var (
	rookDirections   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingOffsets      = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets    = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// PieceMoves generates the pseudo-legal moves of the piece on sq.
// Pseudo-legal moves obey movement and occupancy rules but may leave the
// mover's king in check. An empty square yields an empty set.
func PieceMoves(b *Board, sq Square) MoveSet {
	ms := make(MoveSet)

	p, ok := b.PieceAt(sq)
	if !ok {
		if DebugMoveGeneration {
			log.Printf("MOVEGEN: no piece on %v", sq)
		}
		return ms
	}

	switch p.Type {
	case Pawn:
		PawnMoves(b, sq, p.Color, ms)
	case Knight:
		KnightMoves(b, sq, p.Color, ms)
	case Bishop:
		BishopMoves(b, sq, p.Color, ms)
	case Rook:
		RookMoves(b, sq, p.Color, ms)
	case Queen:
		QueenMoves(b, sq, p.Color, ms)
	case King:
		KingMoves(b, sq, p.Color, ms)
	}
	return ms
}

// KingMoves adds king steps from sq.
func KingMoves(b *Board, sq Square, us Color, ms MoveSet) {
	stepMoves(b, sq, us, kingOffsets, ms)
}

// KnightMoves adds knight jumps from sq.
func KnightMoves(b *Board, sq Square, us Color, ms MoveSet) {
	stepMoves(b, sq, us, knightOffsets, ms)
}

// RookMoves adds rank and file slides from sq.
func RookMoves(b *Board, sq Square, us Color, ms MoveSet) {
	slideMoves(b, sq, us, rookDirections, ms)
}

// BishopMoves adds diagonal slides from sq.
func BishopMoves(b *Board, sq Square, us Color, ms MoveSet) {
	slideMoves(b, sq, us, bishopDirections, ms)
}

// QueenMoves adds the union of rook and bishop slides from sq.
func QueenMoves(b *Board, sq Square, us Color, ms MoveSet) {
	RookMoves(b, sq, us, ms)
	BishopMoves(b, sq, us, ms)
}

// stepMoves adds one move per offset whose target is on the board and not
// held by a piece of color us.
func stepMoves(b *Board, from Square, us Color, offsets []direction, ms MoveSet) {
	for _, d := range offsets {
		to := from.Offset(d.dr, d.df)
		if !to.IsValid() {
			continue
		}
		if p, ok := b.PieceAt(to); ok && p.Color == us {
			continue
		}
		ms.Add(NewMove(from, to))
	}
}

// slideMoves walks each direction until the edge or a piece. Empty squares
// are added and the walk continues; an enemy piece is added and ends the
// walk; a friendly piece ends the walk without being added.
func slideMoves(b *Board, from Square, us Color, dirs []direction, ms MoveSet) {
	for _, d := range dirs {
		for to := from.Offset(d.dr, d.df); to.IsValid(); to = to.Offset(d.dr, d.df) {
			p, ok := b.PieceAt(to)
			if !ok {
				ms.Add(NewMove(from, to))
				continue
			}
			if p.Color != us {
				ms.Add(NewMove(from, to))
			}
			break
		}
	}
}

// PawnMoves adds pawn pushes, double pushes from the starting rank and
// diagonal captures. Moves reaching the last rank are expanded into the four
// promotion choices. There is no en passant.
func PawnMoves(b *Board, sq Square, us Color, ms MoveSet) {
	dir := us.forward()

	one := sq.Offset(dir, 0)
	if b.IsEmpty(one) {
		addPawnMove(ms, sq, one, us)

		two := sq.Offset(2*dir, 0)
		if sq.Rank == us.pawnRank() && b.IsEmpty(two) {
			ms.Add(NewMove(sq, two))
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := sq.Offset(dir, df)
		if p, ok := b.PieceAt(to); ok && p.Color != us {
			addPawnMove(ms, sq, to, us)
		}
	}
}

// addPawnMove adds from-to, expanding it into all promotions on the last rank.
func addPawnMove(ms MoveSet, from, to Square, us Color) {
	if to.Rank != us.lastRank() {
		ms.Add(NewMove(from, to))
		return
	}
	for _, pt := range PromotionTypes {
		ms.Add(NewPromotion(from, to, pt))
	}
}

// Attacks reports whether any piece of color by has a pseudo-legal move
// landing on target.
func Attacks(b *Board, target Square, by Color) bool {
	attacked := false
	b.Each(func(sq Square, p Piece) {
		if attacked || p.Color != by {
			return
		}
		for m := range PieceMoves(b, sq) {
			if m.To == target {
				attacked = true
				return
			}
		}
	})
	return attacked
}
