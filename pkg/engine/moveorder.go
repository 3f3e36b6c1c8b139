package engine

import (
	. "github.com/ladyachess/ladya/pkg/chess"
)

const sortKeyImportant = 100000

type orderedMove struct {
	move Move
	key  int32
}

var sortPieceValues = [TypeNB]int{Pawn: 1, Knight: 2, Bishop: 3, Rook: 4, Queen: 5, King: 6}

func mvvlva(b *Board, move Move) int {
	var victim, promotion int
	if captured := b.Captured(move); captured != NoPiece {
		victim = sortPieceValues[captured]
	}
	if pt := move.Promotion(); pt != NoPiece {
		promotion = sortPieceValues[pt]
	}
	return 8*(victim+promotion) - sortPieceValues[PieceType(b.Squares[move.From()])]
}

// initMoves generates all pseudo-legal moves at the given ply and
// scores them for ordering. Returns the number of moves.
func (t *thread) initMoves(height int, ttMove Move) int {
	var entry = &t.stack[height]
	var position = &entry.position
	var moves = position.GenerateMoves(entry.buffer[:0])

	for i, m := range moves {
		var score int
		if m == ttMove {
			score = sortKeyImportant + 2000
		} else if position.IsCaptureOrPromotion(m) {
			if seeGEZero(position, m) {
				score = sortKeyImportant + 1000 + mvvlva(position, m)
			} else {
				score = mvvlva(position, m)
			}
		} else if m == entry.killer1 {
			score = sortKeyImportant + 1
		} else if m == entry.killer2 {
			score = sortKeyImportant
		}
		entry.moveList[i] = orderedMove{move: m, key: int32(score)}
	}
	return len(moves)
}

// initMovesQS generates check evasions when in check, otherwise just
// the noisy moves, scored by MVV-LVA.
func (t *thread) initMovesQS(height int, isCheck bool) int {
	var entry = &t.stack[height]
	var position = &entry.position
	var moves []Move
	if isCheck {
		moves = position.GenerateMoves(entry.buffer[:0])
	} else {
		moves = position.GenerateCaptures(entry.buffer[:0])
	}

	for i, m := range moves {
		var score int
		if position.IsCaptureOrPromotion(m) {
			score = 29000 + mvvlva(position, m)
		}
		entry.moveList[i] = orderedMove{move: m, key: int32(score)}
	}
	return len(moves)
}

func sortMoves(moves []orderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].key < t.key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
