package board

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Move is a piece moving from one square to another, optionally promoting.
// Promotion is NoPieceType for ordinary moves. Moves are comparable values:
// two moves are equal iff From, To and Promotion all match.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// IsPromotion returns true if this move carries a promotion type.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the move in coordinate form (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}
	return s
}

// less orders moves by origin, destination, then promotion.
func (m Move) less(o Move) bool {
	if a, b := m.From.index(), o.From.index(); a != b {
		return a < b
	}
	if a, b := m.To.index(), o.To.index(); a != b {
		return a < b
	}
	return m.Promotion < o.Promotion
}

// MoveSet is a set of moves deduplicated by value.
type MoveSet map[Move]struct{}

// NewMoveSet creates a set holding the given moves.
func NewMoveSet(moves ...Move) MoveSet {
	ms := make(MoveSet, len(moves))
	for _, m := range moves {
		ms.Add(m)
	}
	return ms
}

// Add adds a move to the set.
func (ms MoveSet) Add(m Move) {
	ms[m] = struct{}{}
}

// Contains returns true if the set holds m.
func (ms MoveSet) Contains(m Move) bool {
	_, ok := ms[m]
	return ok
}

// Len returns the number of moves in the set.
func (ms MoveSet) Len() int {
	return len(ms)
}

// Union adds every move of other to the set.
func (ms MoveSet) Union(other MoveSet) {
	for m := range other {
		ms.Add(m)
	}
}

// Moves returns the moves in a deterministic order.
func (ms MoveSet) Moves() []Move {
	moves := maps.Keys(ms)
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].less(moves[j])
	})
	return moves
}
