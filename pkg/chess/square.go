package chess

import "strings"

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

// FlipSquare mirrors a square across the horizontal axis (a1 <-> a8).
func FlipSquare(sq int) int {
	return sq ^ 56
}

func absDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func SquareDistance(sq1, sq2 int) int {
	return max(absDelta(File(sq1), File(sq2)), absDelta(Rank(sq1), Rank(sq2)))
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	return string(fileNames[File(sq)]) + string(rankNames[Rank(sq)])
}

// ParseSquare returns SquareNone for "-" and for anything that is not
// a two-character square name.
func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var file = strings.Index(fileNames, s[0:1])
	var rank = strings.Index(rankNames, s[1:2])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}
