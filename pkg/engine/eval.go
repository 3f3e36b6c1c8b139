package engine

import (
	. "github.com/ladyachess/ladya/pkg/chess"
)

// Tapered material + piece-square evaluation, from the side to move's
// point of view.

const (
	minorPhase = 4
	rookPhase  = 6
	queenPhase = 12
	totalPhase = 2 * (4*minorPhase + 2*rookPhase + queenPhase)
)

var materialScore = [TypeNB]score{
	Pawn:   s2(100, 120),
	Knight: s2(325, 300),
	Bishop: s2(335, 315),
	Rook:   s2(500, 550),
	Queen:  s2(975, 950),
	King:   s2(0, 0),
}

// Positional tables are written from White's point of view with
// rank 1 as the first row, so the square index is used directly.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	2, 4, 4, -8, -8, 4, 4, 2,
	2, -2, -4, 2, 2, -4, -2, 2,
	0, 0, 4, 12, 12, 4, 0, 0,
	4, 4, 8, 16, 16, 8, 4, 4,
	8, 8, 16, 24, 24, 16, 8, 8,
	24, 24, 32, 40, 40, 32, 24, 24,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-40, -24, -16, -12, -12, -16, -24, -40,
	-24, -12, 0, 4, 4, 0, -12, -24,
	-16, 0, 8, 12, 12, 8, 0, -16,
	-12, 4, 12, 16, 16, 12, 4, -12,
	-12, 4, 12, 16, 16, 12, 4, -12,
	-16, 0, 8, 12, 12, 8, 0, -16,
	-24, -12, 0, 4, 4, 0, -12, -24,
	-40, -24, -16, -12, -12, -16, -24, -40,
}

var bishopPST = [64]int{
	-16, -8, -8, -8, -8, -8, -8, -16,
	-8, 4, 0, 2, 2, 0, 4, -8,
	-8, 0, 6, 6, 6, 6, 0, -8,
	-8, 2, 6, 10, 10, 6, 2, -8,
	-8, 2, 6, 10, 10, 6, 2, -8,
	-8, 0, 6, 6, 6, 6, 0, -8,
	-8, 0, 0, 2, 2, 0, 0, -8,
	-16, -8, -8, -8, -8, -8, -8, -16,
}

var rookPST = [64]int{
	-4, -2, 4, 8, 8, 4, -2, -4,
	-4, 0, 0, 4, 4, 0, 0, -4,
	-4, 0, 0, 4, 4, 0, 0, -4,
	-4, 0, 0, 4, 4, 0, 0, -4,
	-4, 0, 0, 4, 4, 0, 0, -4,
	-4, 0, 0, 4, 4, 0, 0, -4,
	12, 16, 16, 16, 16, 16, 16, 12,
	8, 8, 8, 8, 8, 8, 8, 8,
}

var queenPST = [64]int{
	-12, -8, -8, -4, -4, -8, -8, -12,
	-8, 0, 2, 2, 2, 2, 0, -8,
	-8, 2, 4, 4, 4, 4, 2, -8,
	-4, 2, 4, 6, 6, 4, 2, -4,
	-4, 2, 4, 6, 6, 4, 2, -4,
	-8, 2, 4, 4, 4, 4, 2, -8,
	-8, 0, 2, 2, 2, 2, 0, -8,
	-12, -8, -8, -4, -4, -8, -8, -12,
}

var kingMiddlePST = [64]int{
	24, 32, 16, 0, 0, 16, 32, 24,
	24, 24, 8, 0, 0, 8, 24, 24,
	-8, -16, -16, -24, -24, -16, -16, -8,
	-16, -24, -24, -32, -32, -24, -24, -16,
	-24, -32, -32, -40, -40, -32, -32, -24,
	-24, -32, -32, -40, -40, -32, -32, -24,
	-24, -32, -32, -40, -40, -32, -32, -24,
	-24, -32, -32, -40, -40, -32, -32, -24,
}

var kingEndPST = [64]int{
	-40, -24, -16, -8, -8, -16, -24, -40,
	-24, -8, 0, 8, 8, 0, -8, -24,
	-16, 0, 12, 16, 16, 12, 0, -16,
	-8, 8, 16, 24, 24, 16, 8, -8,
	-8, 8, 16, 24, 24, 16, 8, -8,
	-16, 0, 12, 16, 16, 12, 0, -16,
	-24, -8, 0, 8, 8, 0, -8, -24,
	-40, -24, -16, -8, -8, -16, -24, -40,
}

var pst [TypeNB][64]score

func init() {
	for sq := 0; sq < 64; sq++ {
		pst[Pawn][sq] = s2(pawnPST[sq], pawnPST[sq])
		pst[Knight][sq] = s2(knightPST[sq], knightPST[sq])
		pst[Bishop][sq] = s2(bishopPST[sq], bishopPST[sq])
		pst[Rook][sq] = s2(rookPST[sq], rookPST[sq])
		pst[Queen][sq] = s2(queenPST[sq], queenPST[sq])
		pst[King][sq] = s2(kingMiddlePST[sq], kingEndPST[sq])
	}
}

var bishopPairBonus = s2(30, 45)

type evalService struct {
	pieceCount [ColourNB][TypeNB]int
}

func newEvalService() *evalService {
	return &evalService{}
}

func (e *evalService) Evaluate(b *Board) int {
	var s score

	for colour := White; colour <= Black; colour++ {
		for pieceType := Pawn; pieceType <= King; pieceType++ {
			e.pieceCount[colour][pieceType] = 0
		}
	}

	for x := b.Colours[White]; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var pieceType = PieceType(b.Squares[sq])
		s += materialScore[pieceType] + pst[pieceType][sq]
		e.pieceCount[White][pieceType]++
	}
	for x := b.Colours[Black]; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var pieceType = PieceType(b.Squares[sq])
		s -= materialScore[pieceType] + pst[pieceType][FlipSquare(sq)]
		e.pieceCount[Black][pieceType]++
	}

	if e.pieceCount[White][Bishop] >= 2 {
		s += bishopPairBonus
	}
	if e.pieceCount[Black][Bishop] >= 2 {
		s -= bishopPairBonus
	}

	var phase = minorPhase*(e.pieceCount[White][Knight]+e.pieceCount[White][Bishop]+
		e.pieceCount[Black][Knight]+e.pieceCount[Black][Bishop]) +
		rookPhase*(e.pieceCount[White][Rook]+e.pieceCount[Black][Rook]) +
		queenPhase*(e.pieceCount[White][Queen]+e.pieceCount[Black][Queen])
	if phase > totalPhase {
		phase = totalPhase
	}

	var result = (s.middle()*phase + s.end()*(totalPhase-phase)) / totalPhase

	if b.Turn == Black {
		result = -result
	}
	return result
}

// isDrawMaterial reports bare-material draws (kings plus at most one
// minor piece).
func isDrawMaterial(b *Board) bool {
	return b.Pieces[Pawn]|b.Pieces[Rook]|b.Pieces[Queen] == 0 &&
		!MoreThanOne(b.Pieces[Knight]|b.Pieces[Bishop])
}
