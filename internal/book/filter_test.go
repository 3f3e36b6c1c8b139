package book

import (
	"strings"
	"testing"

	"github.com/ladyachess/ladya/pkg/chess"
)

// stubOracle answers check and piece count from the board itself and
// reports every position quiet except the FENs listed as noisy.
type stubOracle struct {
	noisy map[string]bool
}

func (o *stubOracle) InCheck(b *chess.Board) bool   { return b.InCheck() }
func (o *stubOracle) PieceCount(b *chess.Board) int { return b.Count() }
func (o *stubOracle) StaticEval(b *chess.Board) int { return 0 }
func (o *stubOracle) Quiescence(b *chess.Board, alpha, beta int) int {
	if o.noisy[b.String()] {
		return 50
	}
	return 0
}

func TestFilter(t *testing.T) {
	var quietFEN = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	var noisyFEN = "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"
	var checkFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	var sparseFEN = "8/8/8/4k3/8/4K3/R7/8 w - - 0 1"

	var input = quietFEN + " [0.5] 10\n" +
		checkFEN + " [0.0] -300\n" +
		sparseFEN + " [1.0] 400\n" +
		noisyFEN + " [0.5] 0\n"

	var oracle = &stubOracle{noisy: map[string]bool{noisyFEN: true}}
	var out strings.Builder
	var kept, seen, err = Filter(strings.NewReader(input), &out, oracle)
	if err != nil {
		t.Fatal(err)
	}
	if seen != 4 || kept != 1 {
		t.Fatalf("seen %d kept %d, want 4 and 1", seen, kept)
	}
	if out.String() != quietFEN+" [0.5] 10\n" {
		t.Errorf("got %q", out.String())
	}
}

// Passing lines must come through byte for byte, trailing newline
// included, even when the last line has none.
func TestFilterVerbatim(t *testing.T) {
	var line1 = "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3   [0.5]  10\n"
	var line2 = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 [0.5] 20"
	var oracle = &stubOracle{}
	var out strings.Builder
	var kept, seen, err = Filter(strings.NewReader(line1+line2), &out, oracle)
	if err != nil {
		t.Fatal(err)
	}
	if seen != 2 || kept != 2 {
		t.Fatalf("seen %d kept %d, want 2 and 2", seen, kept)
	}
	if out.String() != line1+line2 {
		t.Errorf("output differs from input:\n%q\n%q", out.String(), line1+line2)
	}
}

func TestFilterMalformedLine(t *testing.T) {
	var _, _, err = Filter(strings.NewReader("not a fen\n"), &strings.Builder{}, &stubOracle{})
	if err == nil {
		t.Fatal("expected error")
	}
}
