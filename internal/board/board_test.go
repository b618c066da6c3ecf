package board

import "testing"

func TestSquareValidity(t *testing.T) {
	for rank := -1; rank <= 10; rank++ {
		for file := -1; file <= 10; file++ {
			sq := NewSquare(rank, file)
			want := rank >= 1 && rank <= 8 && file >= 1 && file <= 8
			if got := sq.IsValid(); got != want {
				t.Errorf("%+v.IsValid() = %v, want %v", sq, got, want)
			}
			if got := NewBoard().IsValidSquare(sq); got != want {
				t.Errorf("IsValidSquare(%+v) = %v, want %v", sq, got, want)
			}
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
		ok   bool
	}{
		{"a1", NewSquare(1, 1), true},
		{"e4", NewSquare(4, 5), true},
		{"h8", NewSquare(8, 8), true},
		{"i1", NoSquare, false},
		{"a9", NoSquare, false},
		{"e", NoSquare, false},
		{"", NoSquare, false},
	}

	for _, tc := range tests {
		got, err := ParseSquare(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseSquare(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if tc.ok && got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}
}

func TestPieceAtInvalidOrEmpty(t *testing.T) {
	b := NewStartingBoard()

	for _, sq := range []Square{NewSquare(0, 1), NewSquare(9, 9), NewSquare(4, 4), NoSquare} {
		if p, ok := b.PieceAt(sq); ok || p != NoPiece {
			t.Errorf("PieceAt(%+v) = %v, %v; want no piece", sq, p, ok)
		}
	}
}

func TestAddPieceIgnoresInvalidInput(t *testing.T) {
	b := NewBoard()

	b.AddPiece(NewSquare(0, 3), NewPiece(White, Queen))
	b.AddPiece(NewSquare(9, 3), NewPiece(White, Queen))
	b.AddPiece(NewSquare(3, 3), NoPiece)

	if n := b.Count(); n != 0 {
		t.Fatalf("Count() = %d after invalid adds, want 0", n)
	}
}

func TestAddPieceOverwrites(t *testing.T) {
	b := NewBoard()
	sq := NewSquare(5, 5)

	b.AddPiece(sq, NewPiece(White, Knight))
	b.AddPiece(sq, NewPiece(Black, Rook))

	p, ok := b.PieceAt(sq)
	if !ok || p != NewPiece(Black, Rook) {
		t.Fatalf("PieceAt(e5) = %v, %v; want black rook", p, ok)
	}
	if n := b.Count(); n != 1 {
		t.Fatalf("Count() = %d, want 1", n)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	pieces := []Piece{
		NewPiece(White, Pawn), NewPiece(White, King), NewPiece(Black, Queen), NewPiece(Black, Knight),
	}

	for rank := 1; rank <= 8; rank++ {
		for file := 1; file <= 8; file++ {
			sq := NewSquare(rank, file)
			for _, p := range pieces {
				b := NewBoard()
				b.AddPiece(sq, p)
				if got, ok := b.PieceAt(sq); !ok || got != p {
					t.Fatalf("PieceAt(%v) = %v, %v after add; want %v", sq, got, ok, p)
				}
				b.RemovePiece(sq)
				if got, ok := b.PieceAt(sq); ok {
					t.Fatalf("PieceAt(%v) = %v after remove; want empty", sq, got)
				}
			}
		}
	}
}

func TestRemovePieceEmptyIsNoop(t *testing.T) {
	b := NewStartingBoard()
	b.RemovePiece(NewSquare(4, 4))
	b.RemovePiece(NewSquare(0, 0))

	if !b.Equal(NewStartingBoard()) {
		t.Fatal("removing from empty/off-board squares changed the board")
	}
}

func TestReset(t *testing.T) {
	b := NewBoard()
	b.AddPiece(NewSquare(4, 4), NewPiece(Black, Queen))
	b.Reset()

	if n := b.Count(); n != 32 {
		t.Fatalf("Count() = %d, want 32", n)
	}

	perColor := map[Color]int{}
	b.Each(func(_ Square, p Piece) {
		perColor[p.Color]++
	})
	if perColor[White] != 16 || perColor[Black] != 16 {
		t.Errorf("pieces per color = %v, want 16 each", perColor)
	}

	if p, _ := b.PieceAt(NewSquare(1, 5)); p != NewPiece(White, King) {
		t.Errorf("e1 = %v, want white king", p)
	}
	if p, _ := b.PieceAt(NewSquare(8, 5)); p != NewPiece(Black, King) {
		t.Errorf("e8 = %v, want black king", p)
	}
	if p, _ := b.PieceAt(NewSquare(4, 4)); p != NoPiece {
		t.Errorf("d4 = %v, want empty after reset", p)
	}

	for file := 1; file <= 8; file++ {
		if p, _ := b.PieceAt(NewSquare(2, file)); p != NewPiece(White, Pawn) {
			t.Errorf("rank 2 file %d = %v, want white pawn", file, p)
		}
		if p, _ := b.PieceAt(NewSquare(7, file)); p != NewPiece(Black, Pawn) {
			t.Errorf("rank 7 file %d = %v, want black pawn", file, p)
		}
		if p, _ := b.PieceAt(NewSquare(1, file)); p != NewPiece(White, backRank[file-1]) {
			t.Errorf("rank 1 file %d = %v", file, p)
		}
		if p, _ := b.PieceAt(NewSquare(8, file)); p != NewPiece(Black, backRank[file-1]) {
			t.Errorf("rank 8 file %d = %v", file, p)
		}
	}

	if got := b.Placement(); got != StartPlacement {
		t.Errorf("Placement() = %q, want %q", got, StartPlacement)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewStartingBoard()
	clone := orig.Clone()

	clone.RemovePiece(NewSquare(2, 5))
	clone.AddPiece(NewSquare(4, 5), NewPiece(White, Pawn))

	if p, ok := orig.PieceAt(NewSquare(2, 5)); !ok || p != NewPiece(White, Pawn) {
		t.Errorf("original e2 = %v, %v after mutating clone", p, ok)
	}
	if _, ok := orig.PieceAt(NewSquare(4, 5)); ok {
		t.Error("original e4 occupied after mutating clone")
	}

	orig.Clear()
	if n := clone.Count(); n != 32 {
		t.Errorf("clone Count() = %d after clearing original, want 32", n)
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoard()
	if _, ok := b.FindKing(White); ok {
		t.Fatal("FindKing on empty board reported a king")
	}

	b.AddPiece(NewSquare(3, 7), NewPiece(White, King))
	sq, ok := b.FindKing(White)
	if !ok || sq != NewSquare(3, 7) {
		t.Fatalf("FindKing(White) = %v, %v; want g3", sq, ok)
	}
	if _, ok := b.FindKing(Black); ok {
		t.Fatal("FindKing(Black) found a king that does not exist")
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		StartPlacement,
		"8/8/8/8/8/8/8/8",
		"R6k/6pp/8/8/8/8/8/K7",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	}

	for _, s := range placements {
		b, err := ParsePlacement(s)
		if err != nil {
			t.Fatalf("ParsePlacement(%q): %v", s, err)
		}
		if got := b.Placement(); got != s {
			t.Errorf("Placement() = %q, want %q", got, s)
		}
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/9",
		"8/8/8/8/8/8/8/7",
		"8/8/8/8/8/8/8/44p",
		"8/8/8/8/8/8/8/7x",
	}

	for _, s := range bad {
		if _, err := ParsePlacement(s); err == nil {
			t.Errorf("ParsePlacement(%q) succeeded, want error", s)
		}
	}
}

func TestPieceFromChar(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p := PieceFromChar(c)
		if p == NoPiece {
			t.Fatalf("PieceFromChar(%c) = NoPiece", c)
		}
		if p.String() != string(c) {
			t.Errorf("PieceFromChar(%c).String() = %q", c, p.String())
		}
	}
	for _, c := range []byte("xX1 /") {
		if p := PieceFromChar(c); p != NoPiece {
			t.Errorf("PieceFromChar(%q) = %v, want NoPiece", c, p)
		}
	}
}
