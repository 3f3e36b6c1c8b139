package chess

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	var fens = []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/4k3/8/4K3/8/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}
	for _, fen := range fens {
		var b, err = ParseFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		if got := b.String(); got != fen {
			t.Errorf("round trip %q got %q", fen, got)
		}
	}
}

func TestParseFENIgnoresAnnotations(t *testing.T) {
	var a, err = ParseFEN("8/8/8/4k3/8/4K3/8/8 w - - 0 1 [0.5] 0")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFEN("8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if a.Key != b.Key || !a.Equal(&b) {
		t.Error("annotation changed the parsed position")
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	var fens = []string{
		"",
		"8/8/8/4k3/8/4K3/8/8",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"8/8/8/4k3/8/4K3/8/8 x - - 0 1",
		// a missing field shifts the move counter into the en
		// passant slot
		"8/8/8/4k3/8/4K3/8/8 w - 0 1",
		"8/8/8/4k3/8/4K3/8/8 w - x9 0 1",
	}
	for _, fen := range fens {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("expected error for %q", fen)
		}
	}
}

func TestParseFENBoard(t *testing.T) {
	var b, err = ParseFEN("8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if b.Turn != White {
		t.Error("turn")
	}
	if b.KingSq(White) != MakeSquare(FileE, Rank3) {
		t.Error("white king", b.KingSq(White))
	}
	if b.KingSq(Black) != MakeSquare(FileE, Rank5) {
		t.Error("black king", b.KingSq(Black))
	}
	if b.Count() != 2 {
		t.Error("count", b.Count())
	}
	if b.Squares[MakeSquare(FileE, Rank3)] != MakePiece(White, King) {
		t.Error("square map")
	}
}
