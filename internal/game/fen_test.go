package game

import (
	"errors"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func TestStartFEN(t *testing.T) {
	g := New()
	if got := g.FEN(); got != StartFEN {
		t.Fatalf("New().FEN() = %q, want %q", got, StartFEN)
	}

	parsed := mustFEN(t, StartFEN)
	if !parsed.board.Equal(g.board) || parsed.Turn() != board.White {
		t.Fatal("ParseFEN(StartFEN) does not match New()")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"7k/5K2/6Q1/8/8/8/8/8 b - - 0 1",
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 40",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 12",
	}

	for _, fen := range fens {
		if got := mustFEN(t, fen).FEN(); got != fen {
			t.Errorf("FEN() = %q, want %q", got, fen)
		}
	}
}

func TestParseFENIgnoresCastlingAndEnPassant(t *testing.T) {
	g := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 3 2")

	if got, want := g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2"; got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}

func TestParseFENShortForm(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b")
	if g.Turn() != board.Black {
		t.Errorf("Turn() = %v, want Black", g.Turn())
	}
	if g.FullMoveNumber() != 1 {
		t.Errorf("FullMoveNumber() = %d, want 1", g.FullMoveNumber())
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8 w",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8 w - - 0 zero",
		"8/8/8/8/8/8/8/8 w - - 0 0",
	}

	for _, fen := range bad {
		_, err := ParseFEN(fen)
		if !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestFENAfterMoves(t *testing.T) {
	g := New()
	for _, m := range []board.Move{mustMove(t, "e2", "e4"), mustMove(t, "c7", "c5")} {
		if err := g.MakeMove(m); err != nil {
			t.Fatal(err)
		}
	}

	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 2"
	if got := g.FEN(); got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}

func TestStartingFEN(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4P3/4K3 b - - 0 7"
	g := mustFEN(t, fen)
	if g.StartingFEN() != fen {
		t.Fatalf("StartingFEN() = %q, want %q", g.StartingFEN(), fen)
	}

	g.SetTurn(board.White)
	if err := g.MakeMove(mustMove(t, "e2", "e4")); err != nil {
		t.Fatal(err)
	}
	g.SetTurn(board.White)

	want := "4k3/8/8/8/8/8/4P3/4K3 w - - 0 7"
	if g.StartingFEN() != want {
		t.Errorf("StartingFEN() = %q, want %q", g.StartingFEN(), want)
	}

	r, err := Replay(g.StartingFEN(), g.History())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if r.board.Placement() != g.board.Placement() {
		t.Error("replay reached a different position")
	}
}

func TestReplayRejectsIllegal(t *testing.T) {
	moves := []board.Move{
		board.NewMove(board.NewSquare(2, 5), board.NewSquare(4, 5)),
		board.NewMove(board.NewSquare(2, 4), board.NewSquare(4, 4)),
	}
	if _, err := Replay(StartFEN, moves); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Replay error = %v, want ErrIllegalMove", err)
	}
	if _, err := Replay("bad", nil); !errors.Is(err, ErrInvalidFEN) {
		t.Errorf("Replay error = %v, want ErrInvalidFEN", err)
	}
}
