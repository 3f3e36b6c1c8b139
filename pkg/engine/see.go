package engine

import (
	. "github.com/ladyachess/ladya/pkg/chess"
)

var pieceValuesSEE = [TypeNB]int{Pawn: 1, Knight: 4, Bishop: 4, Rook: 6, Queen: 12, King: 120}

func seeGEZero(b *Board, move Move) bool {
	return SeeGE(b, move, 0)
}

// SeeGE reports whether the static exchange on move's target square
// comes out at least threshold for the side to move.
func SeeGE(b *Board, move Move, threshold int) bool {
	var from = move.From()
	var to = move.To()
	var movingType = PieceType(b.Squares[from])
	var capturedType = b.Captured(move)
	var promotionType = move.Promotion()

	var nextVictim = movingType
	if promotionType != NoPiece {
		nextVictim = int(promotionType)
	}

	var balance = 0
	if capturedType != NoPiece {
		balance = pieceValuesSEE[capturedType]
	}
	if promotionType != NoPiece {
		balance += pieceValuesSEE[promotionType] - pieceValuesSEE[Pawn]
	}
	balance -= threshold

	if balance < 0 {
		return false
	}

	balance -= pieceValuesSEE[nextVictim]
	if balance >= 0 {
		return true
	}

	var occupied = b.Occupied()&^SquareMask[from] | SquareMask[to]
	if move.IsEnPassant() {
		var capSq int
		if b.Turn == White {
			capSq = to - 8
		} else {
			capSq = to + 8
		}
		occupied &^= SquareMask[capSq]
	}

	var attackers = computeAttackers(b, to, occupied) & occupied

	var bishops = b.Pieces[Bishop] | b.Pieces[Queen]
	var rooks = b.Pieces[Rook] | b.Pieces[Queen]

	var side = b.Turn ^ 1

	for {
		var myAttackers = attackers & b.Colours[side]
		if myAttackers == 0 {
			break
		}

		var attackerType, attackerFrom = leastValuableAttacker(b, myAttackers)

		occupied &^= SquareMask[attackerFrom]

		if attackerType == Pawn || attackerType == Bishop || attackerType == Queen {
			attackers |= BishopAttacks(to, occupied) & bishops
		}
		if attackerType == Rook || attackerType == Queen {
			attackers |= RookAttacks(to, occupied) & rooks
		}

		attackers &= occupied

		side = side ^ 1

		balance = -balance - 1 - pieceValuesSEE[attackerType]
		if balance >= 0 {
			if attackerType == King &&
				(attackers&b.Colours[side]) != 0 {
				side = side ^ 1
			}
			break
		}
	}

	return side != b.Turn
}

func computeAttackers(b *Board, sq int, occ uint64) uint64 {
	return (PawnAttacks(sq, Black) & b.Pieces[Pawn] & b.Colours[White]) |
		(PawnAttacks(sq, White) & b.Pieces[Pawn] & b.Colours[Black]) |
		(KnightAttacks[sq] & b.Pieces[Knight]) |
		(KingAttacks[sq] & b.Pieces[King]) |
		(BishopAttacks(sq, occ) & (b.Pieces[Bishop] | b.Pieces[Queen])) |
		(RookAttacks(sq, occ) & (b.Pieces[Rook] | b.Pieces[Queen]))
}

func leastValuableAttacker(b *Board, attackers uint64) (attacker, from int) {
	for pieceType := Pawn; pieceType <= King; pieceType++ {
		if subset := b.Pieces[pieceType] & attackers; subset != 0 {
			return pieceType, FirstOne(subset)
		}
	}
	return int(NoPiece), SquareNone
}
