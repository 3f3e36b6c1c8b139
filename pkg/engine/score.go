package engine

import "fmt"

// score packs a middlegame and an endgame value into one word so both
// accumulate with a single addition.
type score int32

func (s score) middle() int {
	return int(int16(uint32(s+0x8000) >> 16))
}

func (s score) end() int {
	return int(int16(s))
}

func s2(middle, end int) score {
	return score(uint32(middle)<<16) + score(int16(end))
}

func (s score) String() string {
	return fmt.Sprintf("score(%d, %d)", s.middle(), s.end())
}
