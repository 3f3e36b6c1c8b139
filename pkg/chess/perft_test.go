package chess

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// https://www.chessprogramming.org/Perft_Results
var perftTests = []struct {
	fen   string
	depth int
	nodes int
}{
	{InitialPositionFEN, 5, 4865609},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
	{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3894594},
}

func TestPerft(t *testing.T) {
	for i, test := range perftTests {
		var b, err = ParseFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		var nodes = Perft(&b, test.depth)
		if nodes != test.nodes {
			t.Error(i, test.fen, "got", nodes, "want", test.nodes)
		}
	}
}

// Cross-check shallow node counts against an independent move
// generator.
func TestPerftCrossCheck(t *testing.T) {
	for i, test := range perftTests {
		var b, err = ParseFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		var ref = dragontoothmg.ParseFen(test.fen)
		for depth := 1; depth <= 3; depth++ {
			var got = Perft(&b, depth)
			var want = dragontoothmg.Perft(&ref, depth)
			if int64(got) != want {
				t.Error(i, test.fen, "depth", depth, "got", got, "want", want)
			}
		}
	}
}

func Perft(b *Board, depth int) int {
	var result = 0
	var buffer [MaxMoves]Move
	var child Board
	for _, move := range b.GenerateMoves(buffer[:0]) {
		if b.MakeMove(move, &child) {
			if depth > 1 {
				result += Perft(&child, depth-1)
			} else {
				result++
			}
		}
	}
	return result
}
