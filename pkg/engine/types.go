package engine

import "github.com/ladyachess/ladya/pkg/chess"

type LimitsType struct {
	Infinite       bool
	WhiteTime      int
	BlackTime      int
	WhiteIncrement int
	BlackIncrement int
	MoveTime       int
	MovesToGo      int
	Depth          int
	Nodes          int64
}

// SearchParams carries the game line; the last position is searched,
// the earlier ones feed repetition detection.
type SearchParams struct {
	Positions []chess.Board
	Limits    LimitsType
	Progress  func(si SearchInfo)
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     int64
	MainLine []chess.Move
}

type UciScore struct {
	Centipawns int
	Mate       int
}
