package book

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ladyachess/ladya/pkg/chess"
)

func mustParseFEN(t *testing.T, fen string) chess.Board {
	t.Helper()
	var b, err = chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(fen, err)
	}
	return b
}

func TestEncodeBoardBareKings(t *testing.T) {
	var b = mustParseFEN(t, "8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	var record, err = EncodeBoard(&b, Label{Eval: 0, Result: ResultDraw})
	if err != nil {
		t.Fatal(err)
	}
	var want = []byte{
		0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, // e3|e5 occupancy
		0x00, 0x00, // eval
		1,    // draw
		0,    // white to move
		20,   // e3
		36,   // e5
		2,    // count
		0x5d, // white king, black king
	}
	if !bytes.Equal(record, want) {
		t.Errorf("got % x, want % x", record, want)
	}
}

func TestEncodeBoardOddCount(t *testing.T) {
	var b = mustParseFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	var record, err = EncodeBoard(&b, Label{Eval: 500, Result: ResultWhiteWin})
	if err != nil {
		t.Fatal(err)
	}
	if len(record) != RecordSize(3) {
		t.Fatalf("got %d bytes, want %d", len(record), RecordSize(3))
	}
	if low := record[len(record)-1] & 0x0f; low != 0 {
		t.Errorf("low nibble of last byte = %x, want 0", low)
	}
}

func TestEncodeBoardInitialPosition(t *testing.T) {
	var b = mustParseFEN(t, chess.InitialPositionFEN)
	var record, err = EncodeBoard(&b, Label{Eval: 20, Result: ResultDraw})
	if err != nil {
		t.Fatal(err)
	}
	if len(record) != 15+16 {
		t.Fatalf("got %d bytes, want 31", len(record))
	}
	if record[14] != 32 {
		t.Errorf("count = %d, want 32", record[14])
	}
	if record[12] != 4 || record[13] != 60 {
		t.Errorf("king squares = %d %d, want 4 60", record[12], record[13])
	}
}

// Unpacking the nibbles in ascending square order must reproduce the
// board on every occupied square.
func TestEncodeBoardRoundTrip(t *testing.T) {
	var fens = []string{
		chess.InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1",
	}
	for _, fen := range fens {
		var b = mustParseFEN(t, fen)
		var record, err = EncodeBoard(&b, Label{Eval: -1, Result: ResultBlackWin})
		if err != nil {
			t.Fatal(fen, err)
		}

		var pieces = binary.LittleEndian.Uint64(record[0:])
		if pieces != b.Occupied() {
			t.Fatalf("%v: occupancy mismatch", fen)
		}
		var count = int(record[14])
		if len(record) != RecordSize(count) {
			t.Fatalf("%v: got %d bytes, want %d", fen, len(record), RecordSize(count))
		}
		for i := 0; pieces != 0; i++ {
			var sq = chess.PopLSB(&pieces)
			var nibble = record[15+i/2] >> 4
			if i%2 == 1 {
				nibble = record[15+i/2] & 0x0f
			}
			var colour = int(nibble >> 3)
			var pieceType = int(nibble & 7)
			if b.Squares[sq] != chess.MakePiece(colour, pieceType) {
				t.Errorf("%v: square %v decodes to colour %d type %d",
					fen, chess.SquareName(sq), colour, pieceType)
			}
		}
	}
}
