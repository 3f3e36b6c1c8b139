package chess

import "testing"

func TestPopLSB(t *testing.T) {
	var b = uint64(1)<<20 | uint64(1)<<36 | uint64(1)<<63
	var squares []int
	for b != 0 {
		squares = append(squares, PopLSB(&b))
	}
	var want = []int{20, 36, 63}
	if len(squares) != len(want) {
		t.Fatal(squares)
	}
	for i := range want {
		if squares[i] != want[i] {
			t.Error("ascending order broken", squares)
		}
	}
}

func TestPopCount(t *testing.T) {
	var tests = []struct {
		b    uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{FileAMask, 8},
		{Rank1Mask | Rank8Mask, 16},
		{^uint64(0), 64},
	}
	for _, test := range tests {
		if got := PopCount(test.b); got != test.want {
			t.Errorf("PopCount(%#x) = %v want %v", test.b, got, test.want)
		}
	}
}

func TestMoreThanOne(t *testing.T) {
	var tests = []struct {
		b    uint64
		want bool
	}{
		{0, false},
		{1, false},
		{1 << 5, false},
		{3, true},
		{^uint64(0), true},
	}
	for _, test := range tests {
		if got := MoreThanOne(test.b); got != test.want {
			t.Errorf("MoreThanOne(%#x) = %v", test.b, got)
		}
	}
}

func TestSlidingAttacks(t *testing.T) {
	// Rook on a1, blocker on a4: attacks run along the first rank and
	// up to the blocker.
	var occ = SquareMask[MakeSquare(FileA, Rank4)]
	var attacks = RookAttacks(SquareA1, occ)
	var want = (FileAMask & (Rank2Mask | Rank3Mask | Rank4Mask)) | (Rank1Mask &^ SquareMask[SquareA1])
	if attacks != want {
		t.Errorf("rook attacks %#x want %#x", attacks, want)
	}

	if BishopAttacks(MakeSquare(FileD, Rank4), 0) != QueenAttacks(MakeSquare(FileD, Rank4), 0)&^RookAttacks(MakeSquare(FileD, Rank4), 0) {
		t.Error("queen attacks are not the union of rook and bishop")
	}
}
