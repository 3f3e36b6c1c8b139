package engine

import (
	"testing"

	. "github.com/ladyachess/ladya/pkg/chess"
)

func TestTransEntryMoveDate(t *testing.T) {
	// a castling move sets the highest move bit, so it round-trips
	// only if the date leaves all 17 move bits alone
	var move = NewCastlingMove(SquareE1, SquareG1)
	var date = uint16(entryDateMask)
	var entry transEntry
	entry.SetMoveAndDate(move, date)
	if entry.Move() != move {
		t.Errorf("move: expected %v, got %v", move, entry.Move())
	}
	if entry.Date() != date {
		t.Errorf("date: expected %v, got %v", date, entry.Date())
	}
}

func TestTransTableReadWrite(t *testing.T) {
	var tt = newTransTable(1)
	var key = uint64(0x123456789abcdef0)
	var move = NewCastlingMove(SquareE1, SquareG1)
	tt.Update(key, 8, 50, boundExact, move)
	var depth, score, bound, ttMove, ok = tt.Read(key)
	if !ok {
		t.Fatal("expected hit")
	}
	if depth != 8 || score != 50 || bound != boundExact || ttMove != move {
		t.Errorf("entry: got depth=%v score=%v bound=%v move=%v",
			depth, score, bound, ttMove)
	}
	// same slot, different upper half of the key
	if _, _, _, _, ok := tt.Read(key ^ 1<<32); ok {
		t.Error("expected miss for a colliding key")
	}
}
