package chess

const (
	f1g1Mask = SquareMaskF1 | SquareMaskG1
	b1d1Mask = SquareMaskB1 | SquareMaskC1 | SquareMaskD1
	f8g8Mask = f1g1Mask << 56
	b8d8Mask = b1d1Mask << 56
)

const (
	SquareMaskB1 = uint64(1) << SquareB1
	SquareMaskC1 = uint64(1) << SquareC1
	SquareMaskD1 = uint64(1) << SquareD1
	SquareMaskF1 = uint64(1) << SquareF1
	SquareMaskG1 = uint64(1) << SquareG1
)

func appendPromotions(ml []Move, from, to int) []Move {
	return append(ml,
		NewPromotionMove(from, to, Queen),
		NewPromotionMove(from, to, Rook),
		NewPromotionMove(from, to, Bishop),
		NewPromotionMove(from, to, Knight))
}

// GenerateMoves appends the pseudo-legal moves of the position to ml.
// Moves may still leave the king in check; MakeMove rejects those.
func (b *Board) GenerateMoves(ml []Move) []Move {
	var own = b.Colours[b.Turn]
	var opp = b.Colours[b.Turn^1]
	var all = own | opp
	var ownPawns = b.Pieces[Pawn] & own

	// When in check only king moves, checker captures and
	// interpositions can be legal.
	var target = ^own
	if b.Checkers != 0 {
		target = b.Checkers | betweenMask[FirstOne(b.Checkers)][b.KingSq(b.Turn)]
	}

	if b.EpSquare != SquareNone {
		for fromBB := PawnAttacks(b.EpSquare, b.Turn^1) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			ml = append(ml, NewEnPassantMove(FirstOne(fromBB), b.EpSquare))
		}
	}

	var forward, promoRank = 8, Rank7Mask
	var doubleRank = Rank2
	if b.Turn == Black {
		forward, promoRank = -8, Rank2Mask
		doubleRank = Rank7
	}

	for fromBB := ownPawns & ^promoRank; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		if SquareMask[from+forward]&all == 0 {
			ml = append(ml, NewMove(from, from+forward))
			if Rank(from) == doubleRank && SquareMask[from+2*forward]&all == 0 {
				ml = append(ml, NewMove(from, from+2*forward))
			}
		}
		for toBB := PawnAttacks(from, b.Turn) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := ownPawns & promoRank; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		if SquareMask[from+forward]&all == 0 {
			ml = appendPromotions(ml, from, from+forward)
		}
		for toBB := PawnAttacks(from, b.Turn) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = appendPromotions(ml, from, FirstOne(toBB))
		}
	}

	for fromBB := b.Pieces[Knight] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := KnightAttacks[from] & target; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := b.Pieces[Bishop] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := BishopAttacks(from, all) & target; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := b.Pieces[Rook] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := RookAttacks(from, all) & target; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := b.Pieces[Queen] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := QueenAttacks(from, all) & target; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}

	var kingSq = b.KingSq(b.Turn)
	for toBB := KingAttacks[kingSq] &^ own; toBB != 0; toBB &= toBB - 1 {
		ml = append(ml, NewMove(kingSq, FirstOne(toBB)))
	}

	if b.Turn == White {
		if b.Castling&WhiteKingSide != 0 &&
			all&f1g1Mask == 0 &&
			!b.isAttacked(SquareE1, Black) &&
			!b.isAttacked(SquareF1, Black) {
			ml = append(ml, NewCastlingMove(SquareE1, SquareG1))
		}
		if b.Castling&WhiteQueenSide != 0 &&
			all&b1d1Mask == 0 &&
			!b.isAttacked(SquareE1, Black) &&
			!b.isAttacked(SquareD1, Black) {
			ml = append(ml, NewCastlingMove(SquareE1, SquareC1))
		}
	} else {
		if b.Castling&BlackKingSide != 0 &&
			all&f8g8Mask == 0 &&
			!b.isAttacked(SquareE8, White) &&
			!b.isAttacked(SquareF8, White) {
			ml = append(ml, NewCastlingMove(SquareE8, SquareG8))
		}
		if b.Castling&BlackQueenSide != 0 &&
			all&b8d8Mask == 0 &&
			!b.isAttacked(SquareE8, White) &&
			!b.isAttacked(SquareD8, White) {
			ml = append(ml, NewCastlingMove(SquareE8, SquareC8))
		}
	}

	return ml
}

// GenerateCaptures appends captures and queen promotions, the noisy
// moves searched by quiescence.
func (b *Board) GenerateCaptures(ml []Move) []Move {
	var own = b.Colours[b.Turn]
	var opp = b.Colours[b.Turn^1]
	var all = own | opp
	var ownPawns = b.Pieces[Pawn] & own

	if b.EpSquare != SquareNone {
		for fromBB := PawnAttacks(b.EpSquare, b.Turn^1) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			ml = append(ml, NewEnPassantMove(FirstOne(fromBB), b.EpSquare))
		}
	}

	var forward, promoRank = 8, Rank7Mask
	if b.Turn == Black {
		forward, promoRank = -8, Rank2Mask
	}

	for fromBB := ownPawns & ^promoRank; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := PawnAttacks(from, b.Turn) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := ownPawns & promoRank; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		if SquareMask[from+forward]&all == 0 {
			ml = append(ml, NewPromotionMove(from, from+forward, Queen))
		}
		for toBB := PawnAttacks(from, b.Turn) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewPromotionMove(from, FirstOne(toBB), Queen))
		}
	}

	for fromBB := b.Pieces[Knight] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := KnightAttacks[from] & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := b.Pieces[Bishop] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := BishopAttacks(from, all) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := b.Pieces[Rook] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := RookAttacks(from, all) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}
	for fromBB := b.Pieces[Queen] & own; fromBB != 0; fromBB &= fromBB - 1 {
		var from = FirstOne(fromBB)
		for toBB := QueenAttacks(from, all) & opp; toBB != 0; toBB &= toBB - 1 {
			ml = append(ml, NewMove(from, FirstOne(toBB)))
		}
	}

	var kingSq = b.KingSq(b.Turn)
	for toBB := KingAttacks[kingSq] & opp; toBB != 0; toBB &= toBB - 1 {
		ml = append(ml, NewMove(kingSq, FirstOne(toBB)))
	}

	return ml
}

// GenerateLegalMoves is a convenience for tools; the search filters
// legality itself.
func (b *Board) GenerateLegalMoves() []Move {
	var buffer [MaxMoves]Move
	var child Board
	var result []Move
	for _, m := range b.GenerateMoves(buffer[:0]) {
		if b.MakeMove(m, &child) {
			result = append(result, m)
		}
	}
	return result
}
