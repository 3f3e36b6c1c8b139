package engine

import (
	"context"
	"testing"

	"github.com/ladyachess/ladya/pkg/chess"
)

func searchFEN(t *testing.T, fen string, depth int) SearchInfo {
	t.Helper()
	var b, err = chess.ParseFEN(fen)
	if err != nil {
		t.Fatal(fen, err)
	}
	var e = NewEngine()
	e.Hash = 4
	return e.Search(context.Background(), SearchParams{
		Positions: []chess.Board{b},
		Limits:    LimitsType{Depth: depth},
	})
}

func TestSearchMateInOne(t *testing.T) {
	var si = searchFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 3)
	if si.Score.Mate != 1 {
		t.Errorf("got score %+v, want mate in 1", si.Score)
	}
	if len(si.MainLine) == 0 || si.MainLine[0].String() != "a1a8" {
		t.Errorf("got main line %v, want a1a8", si.MainLine)
	}
}

func TestSearchBareKings(t *testing.T) {
	var si = searchFEN(t, "8/8/8/4k3/8/4K3/8/8 w - - 0 1", 4)
	if si.Score.Centipawns != 0 || si.Score.Mate != 0 {
		t.Errorf("got score %+v, want 0", si.Score)
	}
}

func TestProbeQuietAgreement(t *testing.T) {
	// No captures exist, so the quiescence value must equal the
	// static evaluation exactly.
	var b, err = chess.ParseFEN(chess.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	var pr = NewProbe()
	var static = pr.StaticEval(&b)
	var qs = pr.Quiescence(&b, -ValueMate, ValueMate)
	if static != qs {
		t.Errorf("static %v != quiescence %v", static, qs)
	}
}

func TestProbeNoisyDisagreement(t *testing.T) {
	// White wins a hanging queen, so the quiescence value must beat
	// the stand pat.
	var b, err = chess.ParseFEN("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var pr = NewProbe()
	var static = pr.StaticEval(&b)
	var qs = pr.Quiescence(&b, -ValueMate, ValueMate)
	if qs <= static {
		t.Errorf("quiescence %v should exceed static %v", qs, static)
	}
}
