package book

import "testing"

func TestParseLabel(t *testing.T) {
	var tests = []struct {
		line   string
		eval   int16
		result uint8
	}{
		{"8/8/8/4k3/8/4K3/8/8 w - - 0 1 [0.5] 0", 0, ResultDraw},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 [1.0] 25", 25, ResultWhiteWin},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1 [0.0] -114", -114, ResultBlackWin},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1 [0.5] +7", 7, ResultDraw},
		// out-of-range evaluations clamp
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1 [1.0] 40000", 32767, ResultWhiteWin},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1 [0.0] -40000", -32768, ResultBlackWin},
	}
	for _, test := range tests {
		var label, err = ParseLabel(test.line)
		if err != nil {
			t.Fatalf("%v: %v", test.line, err)
		}
		if label.Eval != test.eval || label.Result != test.result {
			t.Errorf("%v: got %+v, want eval %v result %v",
				test.line, label, test.eval, test.result)
		}
	}
}

func TestParseLabelMalformed(t *testing.T) {
	var lines = []string{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1 [0.5]",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1 [0.5] x",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1 [2.0] 0",
	}
	for _, line := range lines {
		if _, err := ParseLabel(line); err == nil {
			t.Errorf("%v: expected error", line)
		}
	}
}
