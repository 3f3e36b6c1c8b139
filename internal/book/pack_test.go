package book

import (
	"bytes"
	"strings"
	"testing"
)

func TestPack(t *testing.T) {
	var input = "8/8/8/4k3/8/4K3/8/8 w - - 0 1 [0.5] 0\n" +
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 [1.0] 25\n"
	var out bytes.Buffer
	var records, err = Pack(strings.NewReader(input), &out)
	if err != nil {
		t.Fatal(err)
	}
	if records != 2 {
		t.Fatalf("got %d records, want 2", records)
	}
	if out.Len() != RecordSize(2)+RecordSize(32) {
		t.Errorf("got %d bytes, want %d", out.Len(), RecordSize(2)+RecordSize(32))
	}
}

func TestPackDeterministic(t *testing.T) {
	var input = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1 [0.0] -30\n" +
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1 [0.5] 4\n"
	var first, second bytes.Buffer
	if _, err := Pack(strings.NewReader(input), &first); err != nil {
		t.Fatal(err)
	}
	if _, err := Pack(strings.NewReader(input), &second); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("repeated runs differ")
	}
}

func TestPackMalformedLine(t *testing.T) {
	var input = "8/8/8/4k3/8/4K3/8/8 w - - 0 1 [0.5] 0\n" +
		"8/8/8/4k3/8/4K3/8/8 w - - 0 1\n"
	var out bytes.Buffer
	var records, err = Pack(strings.NewReader(input), &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if records != 1 {
		t.Errorf("got %d records before failure, want 1", records)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
}
