// Package notation converts between moves and their text forms: coordinate
// notation ("e2e4", "a7a8q") and Standard Algebraic Notation ("Nf3",
// "exd5", "a8=Q+"). The rules packages never parse text; callers at the
// edges go through here.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/game"
)

// ErrAmbiguousMove is returned by ParseSAN when more than one legal move
// matches the notation.
var ErrAmbiguousMove = errors.New("ambiguous move")

// ParseMove parses coordinate notation such as "e2e4" or "a7a8q". Only the
// syntax is checked.
func ParseMove(s string) (board.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return board.Move{}, fmt.Errorf("invalid move %q", s)
	}

	from, err := board.ParseSquare(s[0:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := board.ParseSquare(s[2:4])
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}

	promo := board.NoPieceType
	if len(s) == 5 {
		promo = promotionType(s[4])
		if promo == board.NoPieceType {
			return board.Move{}, fmt.Errorf("invalid promotion piece in %q", s)
		}
	}

	return board.NewPromotion(from, to, promo), nil
}

// ParseMoves parses a list of coordinate moves.
func ParseMoves(texts []string) ([]board.Move, error) {
	moves := make([]board.Move, len(texts))
	for i, text := range texts {
		m, err := ParseMove(text)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return moves, nil
}

// promotionType maps a promotion letter in either case to its piece type.
// Letters that cannot be promoted to map to NoPieceType.
func promotionType(c byte) board.PieceType {
	switch pt := board.PieceTypeFromChar(c | 0x20); pt {
	case board.Queen, board.Rook, board.Bishop, board.Knight:
		return pt
	default:
		return board.NoPieceType
	}
}

// sanLetter returns the uppercase SAN letter for a piece type.
func sanLetter(pt board.PieceType) byte {
	return pt.Char() - 'a' + 'A'
}

// SAN converts a legal move of the side to move to Standard Algebraic
// Notation.
func SAN(g *game.Game, m board.Move) (string, error) {
	if !g.ValidMoves(m.From).Contains(m) {
		return "", fmt.Errorf("%w: %s", game.ErrIllegalMove, m)
	}

	b := g.Board()
	p, _ := b.PieceAt(m.From)
	var sb strings.Builder

	// Piece letter and disambiguation (not for pawns)
	if p.Type != board.Pawn {
		sb.WriteByte(sanLetter(p.Type))
		sb.WriteString(disambiguation(g, b, m, p.Type))
	}

	if _, capture := b.PieceAt(m.To); capture {
		if p.Type == board.Pawn {
			// Pawn captures include the file of origin
			sb.WriteByte('a' + byte(m.From.File-1))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(sanLetter(m.Promotion))
	}

	next := g.Clone()
	if err := next.MakeMove(m); err != nil {
		return "", err
	}
	switch next.Status(next.Turn()) {
	case game.Checkmate:
		sb.WriteByte('#')
	case game.Check:
		sb.WriteByte('+')
	}

	return sb.String(), nil
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece type to the same square.
func disambiguation(g *game.Game, b *board.Board, m board.Move, pt board.PieceType) string {
	var candidates []board.Square

	for _, other := range g.AllValidMoves() {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if p, _ := b.PieceAt(other.From); p.Type == pt {
			candidates = append(candidates, other.From)
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File == m.From.File {
			sameFile = true
		}
		if sq.Rank == m.From.Rank {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(rune('a' + m.From.File - 1))
	case !sameRank:
		return string(rune('1' + m.From.Rank - 1))
	default:
		return m.From.String()
	}
}

// ParseSAN returns the legal move of the side to move that s describes.
// Check and annotation suffixes are ignored. Castling is not supported.
func ParseSAN(g *game.Game, s string) (board.Move, error) {
	orig := s
	s = strings.TrimRight(strings.TrimSpace(s), "+#!?")

	if strings.HasPrefix(s, "O-O") || strings.HasPrefix(s, "0-0") {
		return board.Move{}, fmt.Errorf("%w: castling is not supported: %s", game.ErrIllegalMove, orig)
	}

	// Parse promotion
	promo := board.NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+1 >= len(s) {
			return board.Move{}, fmt.Errorf("invalid SAN %q", orig)
		}
		promo = promotionType(s[idx+1])
		if promo == board.NoPieceType {
			return board.Move{}, fmt.Errorf("invalid promotion in %q", orig)
		}
		s = s[:idx]
	}

	// Remove capture marker
	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := board.Pawn
	if len(s) > 0 && strings.IndexByte("NBRQK", s[0]) >= 0 {
		pt = board.PieceTypeFromChar(s[0] | 0x20)
		s = s[1:]
	}

	if len(s) < 2 {
		return board.Move{}, fmt.Errorf("invalid SAN %q", orig)
	}
	dest, err := board.ParseSquare(s[len(s)-2:])
	if err != nil {
		return board.Move{}, fmt.Errorf("invalid SAN %q: %w", orig, err)
	}
	s = s[:len(s)-2]

	// Parse disambiguation (file, rank, or both)
	fromFile, fromRank := 0, 0
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			fromFile = int(c-'a') + 1
		case c >= '1' && c <= '8':
			fromRank = int(c-'1') + 1
		default:
			return board.Move{}, fmt.Errorf("invalid SAN %q", orig)
		}
	}

	b := g.Board()
	var matches []board.Move
	for _, m := range g.AllValidMoves() {
		if m.To != dest || m.Promotion != promo {
			continue
		}
		if p, _ := b.PieceAt(m.From); p.Type != pt {
			continue
		}
		if fromFile != 0 && m.From.File != fromFile {
			continue
		}
		if fromRank != 0 && m.From.Rank != fromRank {
			continue
		}
		if _, occupied := b.PieceAt(m.To); isCapture && !occupied {
			continue
		}
		matches = append(matches, m)
	}

	switch len(matches) {
	case 0:
		return board.Move{}, fmt.Errorf("%w: %s", game.ErrIllegalMove, orig)
	case 1:
		return matches[0], nil
	default:
		return board.Move{}, fmt.Errorf("%w: %s", ErrAmbiguousMove, orig)
	}
}

// HistorySAN returns g's played moves in SAN, replayed from its starting
// position.
func HistorySAN(g *game.Game) []string {
	r, err := game.ParseFEN(g.StartingFEN())
	if err != nil {
		return nil
	}

	history := g.History()
	out := make([]string, len(history))
	for i, m := range history {
		san, err := SAN(r, m)
		if err != nil {
			san = m.String()
		}
		out[i] = san
		if err := r.MakeMove(m); err != nil {
			return out[:i+1]
		}
	}
	return out
}
