package engine

import (
	"testing"

	"github.com/ladyachess/ladya/pkg/chess"
)

func TestEvaluateSymmetry(t *testing.T) {
	var b, err = chess.ParseFEN(chess.InitialPositionFEN)
	if err != nil {
		t.Fatal(err)
	}
	var e = newEvalService()
	if v := e.Evaluate(&b); v != 0 {
		t.Errorf("initial position: got %v, want 0", v)
	}
}

func TestEvaluateMaterial(t *testing.T) {
	var tests = []struct {
		fen      string
		positive bool
	}{
		// extra pawn for the side to move
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", true},
		// extra rook for the opponent
		{"4k3/8/8/8/8/8/8/R3K3 b - - 0 1", false},
	}
	var e = newEvalService()
	for _, test := range tests {
		var b, err = chess.ParseFEN(test.fen)
		if err != nil {
			t.Fatal(test.fen, err)
		}
		var v = e.Evaluate(&b)
		if test.positive && v <= 0 || !test.positive && v >= 0 {
			t.Errorf("%v: got %v", test.fen, v)
		}
	}
}

func TestIsDrawMaterial(t *testing.T) {
	var tests = []struct {
		fen  string
		draw bool
	}{
		{"8/8/8/4k3/8/4K3/8/8 w - - 0 1", true},
		{"8/8/8/4k3/8/4KN2/8/8 w - - 0 1", true},
		{"8/8/8/4k3/8/4KN2/6N1/8 w - - 0 1", false},
		{"8/8/8/4k3/8/4K3/4P3/8 w - - 0 1", false},
	}
	for _, test := range tests {
		var b, err = chess.ParseFEN(test.fen)
		if err != nil {
			t.Fatal(test.fen, err)
		}
		if got := isDrawMaterial(&b); got != test.draw {
			t.Errorf("%v: got %v, want %v", test.fen, got, test.draw)
		}
	}
}
