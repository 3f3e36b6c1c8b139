package chess

import "math/rand"

var castleMask [64]int

func (b *Board) putPiece(colour, pieceType, sq int) {
	var bb = SquareMask[sq]
	b.Colours[colour] |= bb
	b.Pieces[pieceType] |= bb
	b.Squares[sq] = MakePiece(colour, pieceType)
	b.Key ^= pieceSquareKey(colour, pieceType, sq)
}

func (b *Board) removePiece(colour, pieceType, sq int) {
	var bb = SquareMask[sq]
	b.Colours[colour] &^= bb
	b.Pieces[pieceType] &^= bb
	b.Squares[sq] = NoPiece
	b.Key ^= pieceSquareKey(colour, pieceType, sq)
}

func (b *Board) movePiece(colour, pieceType, from, to int) {
	var bb = SquareMask[from] ^ SquareMask[to]
	b.Colours[colour] ^= bb
	b.Pieces[pieceType] ^= bb
	b.Squares[from] = NoPiece
	b.Squares[to] = MakePiece(colour, pieceType)
	b.Key ^= pieceSquareKey(colour, pieceType, from) ^ pieceSquareKey(colour, pieceType, to)
}

// isAttacked reports whether sq is attacked by any piece of colour side.
func (b *Board) isAttacked(sq, side int) bool {
	var enemy = b.Colours[side]
	if PawnAttacks(sq, side^1)&b.Pieces[Pawn]&enemy != 0 {
		return true
	}
	if KnightAttacks[sq]&b.Pieces[Knight]&enemy != 0 {
		return true
	}
	if KingAttacks[sq]&b.Pieces[King]&enemy != 0 {
		return true
	}
	var occ = b.Occupied()
	if BishopAttacks(sq, occ)&(b.Pieces[Bishop]|b.Pieces[Queen])&enemy != 0 {
		return true
	}
	if RookAttacks(sq, occ)&(b.Pieces[Rook]|b.Pieces[Queen])&enemy != 0 {
		return true
	}
	return false
}

// AttackersTo returns all pieces of both colours attacking sq under the
// given occupancy.
func (b *Board) AttackersTo(sq int, occ uint64) uint64 {
	return (PawnAttacks(sq, Black) & b.Pieces[Pawn] & b.Colours[White]) |
		(PawnAttacks(sq, White) & b.Pieces[Pawn] & b.Colours[Black]) |
		(KnightAttacks[sq] & b.Pieces[Knight]) |
		(BishopAttacks(sq, occ) & (b.Pieces[Bishop] | b.Pieces[Queen])) |
		(RookAttacks(sq, occ) & (b.Pieces[Rook] | b.Pieces[Queen])) |
		(KingAttacks[sq] & b.Pieces[King])
}

func (b *Board) computeCheckers() uint64 {
	return b.AttackersTo(b.KingSq(b.Turn), b.Occupied()) & b.Colours[b.Turn^1]
}

// isLegal reports whether the side that just moved left its king safe.
func (b *Board) isLegal() bool {
	var mover = b.Turn ^ 1
	return !b.isAttacked(b.KingSq(mover), b.Turn)
}

// MakeMove plays m from b into child and reports whether the result is
// legal. b is never modified.
func (b *Board) MakeMove(m Move, child *Board) bool {
	*child = *b

	var from = m.From()
	var to = m.To()
	var colour = b.Turn
	var pieceType = PieceType(b.Squares[from])
	var captured = b.Squares[to]

	child.Turn = colour ^ 1
	child.Key ^= sideKey
	child.LastMove = m
	if colour == Black {
		child.FullMove = b.FullMove + 1
	}

	child.Castling = b.Castling & castleMask[from] & castleMask[to]
	child.Key ^= castlingKey[child.Castling^b.Castling]

	if pieceType == Pawn || captured != NoPiece {
		child.Rule50 = 0
	} else {
		child.Rule50 = b.Rule50 + 1
	}

	child.EpSquare = SquareNone
	if b.EpSquare != SquareNone {
		child.Key ^= enpassantKey[File(b.EpSquare)]
	}

	if m.IsEnPassant() {
		var capSq = to - 8
		if colour == Black {
			capSq = to + 8
		}
		child.removePiece(colour^1, Pawn, capSq)
	} else if captured != NoPiece {
		child.removePiece(colour^1, PieceType(captured), to)
	}

	child.movePiece(colour, pieceType, from, to)

	switch pieceType {
	case Pawn:
		if to == from+16 && colour == White {
			child.EpSquare = from + 8
			child.Key ^= enpassantKey[File(child.EpSquare)]
		} else if to == from-16 && colour == Black {
			child.EpSquare = from - 8
			child.Key ^= enpassantKey[File(child.EpSquare)]
		}
		if promotion := m.Promotion(); promotion != NoPiece {
			child.removePiece(colour, Pawn, to)
			child.putPiece(colour, int(promotion), to)
		}
	case King:
		if m.IsCastling() {
			switch to {
			case SquareG1:
				child.movePiece(White, Rook, SquareH1, SquareF1)
			case SquareC1:
				child.movePiece(White, Rook, SquareA1, SquareD1)
			case SquareG8:
				child.movePiece(Black, Rook, SquareH8, SquareF8)
			case SquareC8:
				child.movePiece(Black, Rook, SquareA8, SquareD8)
			}
		}
	}

	if !child.isLegal() {
		return false
	}
	child.Checkers = child.computeCheckers()
	return true
}

// MakeNullMove passes the turn without moving. Never called in check.
func (b *Board) MakeNullMove(child *Board) {
	*child = *b
	child.Turn = b.Turn ^ 1
	child.Key ^= sideKey
	child.Rule50 = b.Rule50 + 1
	child.EpSquare = SquareNone
	if b.EpSquare != SquareNone {
		child.Key ^= enpassantKey[File(b.EpSquare)]
	}
	child.Checkers = 0
	child.LastMove = MoveEmpty
}

// Equal ignores move counters, comparing only repetition-relevant state.
func (b *Board) Equal(other *Board) bool {
	return b.Colours == other.Colours &&
		b.Pieces == other.Pieces &&
		b.Turn == other.Turn &&
		b.Castling == other.Castling &&
		b.EpSquare == other.EpSquare
}

var (
	sideKey         uint64
	enpassantKey    [8]uint64
	castlingKey     [16]uint64
	pieceSquareKeys [ColourNB * TypeNB * 64]uint64
)

func pieceSquareKey(colour, pieceType, sq int) uint64 {
	return pieceSquareKeys[(colour*TypeNB+pieceType)*64+sq]
}

func (b *Board) computeKey() uint64 {
	var result uint64
	if b.Turn == Black {
		result ^= sideKey
	}
	result ^= castlingKey[b.Castling]
	if b.EpSquare != SquareNone {
		result ^= enpassantKey[File(b.EpSquare)]
	}
	for sq := 0; sq < 64; sq++ {
		if piece := b.Squares[sq]; piece != NoPiece {
			result ^= pieceSquareKey(PieceColour(piece), PieceType(piece), sq)
		}
	}
	return result
}

func init() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enpassantKey {
		enpassantKey[i] = r.Uint64()
	}
	for i := range pieceSquareKeys {
		pieceSquareKeys[i] = r.Uint64()
	}
	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}
	for i := range castlingKey {
		for j := 0; j < 4; j++ {
			if i&(1<<uint(j)) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}

	for i := range castleMask {
		castleMask[i] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	castleMask[SquareA1] &^= WhiteQueenSide
	castleMask[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	castleMask[SquareH1] &^= WhiteKingSide
	castleMask[SquareA8] &^= BlackQueenSide
	castleMask[SquareE8] &^= BlackQueenSide | BlackKingSide
	castleMask[SquareH8] &^= BlackKingSide
}
