package engine

import (
	"errors"

	. "github.com/ladyachess/ladya/pkg/chess"
)

var errSearchTimeout = errors.New("search timeout")

type thread struct {
	engine    *Engine
	evaluator *evalService
	nodes     int64
	stack     [stackSize]struct {
		position   Board
		buffer     [MaxMoves]Move
		moveList   [MaxMoves]orderedMove
		pv         pv
		staticEval int
		killer1    Move
		killer2    Move
	}
}

type pv struct {
	items [stackSize]Move
	size  int
}

func (t *thread) iterate() {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				return
			}
			panic(r)
		}
	}()

	const height = 0
	var e = t.engine
	for depth := 1; depth <= maxHeight; depth++ {
		var score = t.alphaBeta(-valueInfinity, valueInfinity, depth, height)
		e.onIterationComplete(t, depth, score)
		if e.timeManager.IsDone() {
			break
		}
		if e.limits.Depth != 0 && depth >= e.limits.Depth {
			break
		}
	}
}

func (t *thread) alphaBeta(alpha, beta, depth, height int) int {
	if depth <= 0 {
		return t.quiescence(alpha, beta, height)
	}
	t.clearPV(height)

	var rootNode = height == 0
	var pvNode = beta != alpha+1
	var position = &t.stack[height].position
	var isCheck = position.InCheck()

	if !rootNode {
		if height >= maxHeight {
			return t.evaluator.Evaluate(position)
		}
		if t.isRepeat(height) {
			return valueDraw
		}
		if isDraw(position) {
			return valueDraw
		}
		// mate distance pruning
		if winIn(height+1) <= alpha {
			return alpha
		}
		if lossIn(height+2) >= beta && !isCheck {
			return beta
		}
	}

	var ttDepth, ttValue, ttBound, ttMove, ttHit = t.engine.transTable.Read(position.Key)
	if ttHit {
		ttValue = valueFromTT(ttValue, height)
		if ttDepth >= depth && !pvNode && position.LastMove != MoveEmpty {
			if ttValue >= beta && (ttBound&boundLower) != 0 {
				if ttMove != MoveEmpty && !position.IsCaptureOrPromotion(ttMove) {
					t.updateKiller(ttMove, height)
				}
				return ttValue
			}
			if ttValue <= alpha && (ttBound&boundUpper) != 0 {
				return ttValue
			}
		}
	}

	var staticEval = t.evaluator.Evaluate(position)
	t.stack[height].staticEval = staticEval

	if height+2 <= maxHeight {
		t.stack[height+2].killer1 = MoveEmpty
		t.stack[height+2].killer2 = MoveEmpty
	}
	var child = &t.stack[height+1].position

	// null-move pruning
	if !rootNode && !pvNode && depth >= 2 && !isCheck &&
		position.LastMove != MoveEmpty &&
		beta < valueWin &&
		!isLateEndgame(position, position.Turn) &&
		staticEval >= beta {
		var reduction = 3 + depth/6
		t.makeMove(MoveEmpty, height)
		var score = -t.alphaBeta(-beta, -(beta - 1), depth-reduction, height+1)
		if score >= beta {
			if score >= valueWin {
				score = beta
			}
			return score
		}
	}

	var count = t.initMoves(height, ttMove)
	var moveList = t.stack[height].moveList[:count]
	sortMoves(moveList)

	var movesSearched = 0
	var hasLegalMove = false
	var bestMove Move
	var best = -valueInfinity
	var oldAlpha = alpha

	for i := range moveList {
		var move = moveList[i].move
		if !t.makeMove(move, height) {
			continue
		}
		hasLegalMove = true
		movesSearched++

		var extension = 0
		if child.InCheck() && depth >= 3 {
			extension = 1
		}
		var newDepth = depth - 1 + extension

		var score int
		if movesSearched == 1 {
			score = -t.alphaBeta(-beta, -alpha, newDepth, height+1)
		} else {
			score = -t.alphaBeta(-(alpha + 1), -alpha, newDepth, height+1)
			if score > alpha && pvNode {
				score = -t.alphaBeta(-beta, -alpha, newDepth, height+1)
			}
		}

		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
			if alpha >= beta {
				break
			}
		}
	}

	if !hasLegalMove {
		if !isCheck {
			return valueDraw
		}
		return lossIn(height)
	}

	if alpha > oldAlpha && bestMove != MoveEmpty && !position.IsCaptureOrPromotion(bestMove) {
		t.updateKiller(bestMove, height)
	}

	ttBound = 0
	if best > oldAlpha {
		ttBound |= boundLower
	}
	if best < beta {
		ttBound |= boundUpper
	}
	if !(rootNode && ttBound == boundUpper) {
		t.engine.transTable.Update(position.Key, depth, valueToTT(best, height), ttBound, bestMove)
	}

	return best
}

func (t *thread) quiescence(alpha, beta, height int) int {
	t.clearPV(height)
	var position = &t.stack[height].position
	if isDraw(position) {
		return valueDraw
	}
	if height >= maxHeight {
		return t.evaluator.Evaluate(position)
	}
	if t.isRepeat(height) {
		return valueDraw
	}

	var isCheck = position.InCheck()
	var best = -valueInfinity
	if !isCheck {
		var eval = t.evaluator.Evaluate(position)
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

	var count = t.initMovesQS(height, isCheck)
	var moveList = t.stack[height].moveList[:count]
	sortMoves(moveList)

	var hasLegalMove = false
	for i := range moveList {
		var move = moveList[i].move
		if !isCheck && !seeGEZero(position, move) {
			continue
		}
		if !t.makeMove(move, height) {
			continue
		}
		hasLegalMove = true
		var score = -t.quiescence(-beta, -alpha, height+1)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
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

func (t *thread) makeMove(move Move, height int) bool {
	var pos = &t.stack[height].position
	var child = &t.stack[height+1].position
	if move == MoveEmpty {
		pos.MakeNullMove(child)
	} else {
		if !pos.MakeMove(move, child) {
			return false
		}
	}
	t.incNodes()
	return true
}

func (t *thread) incNodes() {
	t.nodes++
	if t.nodes&255 == 0 {
		if t.engine.Threads == 1 {
			// fixed-nodes search only in single threaded mode
			t.engine.timeManager.OnNodesChanged(int(t.engine.nodes + t.nodes))
		}
		if t.engine.timeManager.IsDone() {
			panic(errSearchTimeout)
		}
	}
}

func isDraw(b *Board) bool {
	if b.Rule50 > 100 {
		return true
	}
	return isDrawMaterial(b)
}

func (t *thread) isRepeat(height int) bool {
	var b = &t.stack[height].position

	if b.Rule50 == 0 || b.LastMove == MoveEmpty {
		return false
	}
	for i := height - 1; i >= 0; i-- {
		var temp = &t.stack[i].position
		if temp.Key == b.Key {
			return true
		}
		if temp.Rule50 == 0 || temp.LastMove == MoveEmpty {
			return false
		}
	}

	return t.engine.historyKeys[b.Key] >= 2
}

func (t *thread) updateKiller(move Move, height int) {
	if t.stack[height].killer1 != move {
		t.stack[height].killer2 = t.stack[height].killer1
		t.stack[height].killer1 = move
	}
}

func (t *thread) clearPV(height int) {
	t.stack[height].pv.clear()
}

func (t *thread) assignPV(height int, move Move) {
	if height+1 <= maxHeight {
		t.stack[height].pv.assign(move, &t.stack[height+1].pv)
	}
}

func (pv *pv) clear() {
	pv.size = 0
}

func (pv *pv) assign(m Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []Move {
	var result = make([]Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}
