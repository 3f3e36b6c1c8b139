package chess

import "testing"

func TestParseSquare(t *testing.T) {
	var tests = []struct {
		s    string
		want int
	}{
		{"a1", SquareA1},
		{"e3", MakeSquare(FileE, Rank3)},
		{"h8", SquareH8},
		{"-", SquareNone},
		{"", SquareNone},
		{"0", SquareNone},
		{"e", SquareNone},
		{"e33", SquareNone},
		{"i1", SquareNone},
		{"a9", SquareNone},
	}
	for _, test := range tests {
		if got := ParseSquare(test.s); got != test.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", test.s, got, test.want)
		}
	}
}

func TestSquareName(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		if got := ParseSquare(SquareName(sq)); got != sq {
			t.Errorf("square %d round trips to %d", sq, got)
		}
	}
}
