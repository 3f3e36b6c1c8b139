package engine

import (
	. "github.com/ladyachess/ladya/pkg/chess"
)

// Probe answers cheap questions about single positions without a
// transposition table or clock. It backs the dataset filtering tools,
// where static and quiescence evaluations of the same position must
// agree exactly whenever no capture improves on the stand pat.
type Probe struct {
	evaluator *evalService
	stack     [stackSize]struct {
		position Board
		buffer   [MaxMoves]Move
		moveList [MaxMoves]orderedMove
	}
}

func NewProbe() *Probe {
	return &Probe{evaluator: newEvalService()}
}

func (pr *Probe) InCheck(b *Board) bool {
	return b.InCheck()
}

func (pr *Probe) PieceCount(b *Board) int {
	return b.Count()
}

func (pr *Probe) StaticEval(b *Board) int {
	return pr.evaluator.Evaluate(b)
}

func (pr *Probe) Quiescence(b *Board, alpha, beta int) int {
	pr.stack[0].position = *b
	return pr.quiescence(alpha, beta, 0)
}

func (pr *Probe) quiescence(alpha, beta, height int) int {
	var position = &pr.stack[height].position
	if height >= maxHeight {
		return pr.evaluator.Evaluate(position)
	}

	var isCheck = position.InCheck()
	var best = -valueInfinity
	if !isCheck {
		var eval = pr.evaluator.Evaluate(position)
		if eval > best {
			best = eval
		}
		if eval > alpha {
			alpha = eval
			if alpha >= beta {
				return alpha
			}
		}
	}

	var entry = &pr.stack[height]
	var moves []Move
	if isCheck {
		moves = position.GenerateMoves(entry.buffer[:0])
	} else {
		moves = position.GenerateCaptures(entry.buffer[:0])
	}
	for i, m := range moves {
		entry.moveList[i] = orderedMove{move: m, key: int32(mvvlva(position, m))}
	}
	var moveList = entry.moveList[:len(moves)]
	sortMoves(moveList)

	var child = &pr.stack[height+1].position
	var hasLegalMove = false
	for i := range moveList {
		var move = moveList[i].move
		if !isCheck && !seeGEZero(position, move) {
			continue
		}
		if !position.MakeMove(move, child) {
			continue
		}
		hasLegalMove = true
		var score = -pr.quiescence(-beta, -alpha, height+1)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}
	if isCheck && !hasLegalMove {
		return lossIn(height)
	}
	return best
}
