package engine

import (
	"testing"

	"github.com/ladyachess/ladya/pkg/chess"
)

func TestSeeGE(t *testing.T) {
	var tests = []struct {
		fen  string
		move string
		good bool
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "e2e4", true},
		{"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1", "e1e5", true},
		{"1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1", "d3e5", false},
		{"4k3/8/4q3/8/4P3/3P4/8/4K3 b - - 0 1", "e6e4", false},
	}
	for _, test := range tests {
		var b, err = chess.ParseFEN(test.fen)
		if err != nil {
			t.Fatal(test.fen, err)
		}
		var move, ok = b.ParseMoveLAN(test.move)
		if !ok {
			t.Fatalf("%v: move %v not found", test.fen, test.move)
		}
		if got := seeGEZero(&b, move); got != test.good {
			t.Errorf("%v %v: got %v, want %v", test.fen, test.move, got, test.good)
		}
	}
}
