package engine

import (
	. "github.com/ladyachess/ladya/pkg/chess"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	ValueMate     = 32000
	valueInfinity = ValueMate + 1
	valueWin      = ValueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return ValueMate - height
}

func lossIn(height int) int {
	return -ValueMate + height
}

func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}
	if v <= valueLoss {
		return v - height
	}
	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}
	if v <= valueLoss {
		return v + height
	}
	return v
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Mate: (ValueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Mate: (-ValueMate - v) / 2}
	}
	return UciScore{Centipawns: v}
}

func isLateEndgame(b *Board, colour int) bool {
	var own = b.Colours[colour]
	return (b.Pieces[Rook]|b.Pieces[Queen])&own == 0 &&
		!MoreThanOne((b.Pieces[Knight]|b.Pieces[Bishop])&own)
}
