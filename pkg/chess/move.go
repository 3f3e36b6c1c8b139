package chess

import "strings"

// Move packs from (bits 0-5), to (bits 6-11), promotion type (bits
// 12-14, zero when absent) and the en passant / castling flags. The
// moving and captured pieces are read from the board, so the zero move
// stays free as a null sentinel.
type Move uint32

const MoveEmpty Move = 0

const (
	moveFlagEnPassant Move = 1 << 15
	moveFlagCastling  Move = 1 << 16
)

func NewMove(from, to int) Move {
	return Move(from | to<<6)
}

func NewPromotionMove(from, to, promotion int) Move {
	return Move(from | to<<6 | promotion<<12)
}

func NewEnPassantMove(from, to int) Move {
	return NewMove(from, to) | moveFlagEnPassant
}

func NewCastlingMove(from, to int) Move {
	return NewMove(from, to) | moveFlagCastling
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

// Promotion returns the promotion piece type, or NoPiece if the move
// does not promote. Promotions are always to Knight..Queen, whose type
// codes are nonzero.
func (m Move) Promotion() int8 {
	var pt = int8((m >> 12) & 7)
	if pt == 0 {
		return NoPiece
	}
	return pt
}

func (m Move) IsEnPassant() bool {
	return m&moveFlagEnPassant != 0
}

func (m Move) IsCastling() bool {
	return m&moveFlagCastling != 0
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if pt := m.Promotion(); pt != NoPiece {
		sPromotion = string("pnbrq"[pt])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

// IsCaptureOrPromotion reports whether the move is noisy on this board.
// The board must be the position the move is played from.
func (b *Board) IsCaptureOrPromotion(m Move) bool {
	return b.Squares[m.To()] != NoPiece ||
		m.IsEnPassant() ||
		m.Promotion() != NoPiece
}

// Captured returns the piece type taken by the move, or NoPiece.
func (b *Board) Captured(m Move) int8 {
	if m.IsEnPassant() {
		return Pawn
	}
	if piece := b.Squares[m.To()]; piece != NoPiece {
		return int8(PieceType(piece))
	}
	return NoPiece
}

// ParseMoveLAN resolves a long algebraic move ("e2e4", "e7e8q")
// against the legal moves of the position.
func (b *Board) ParseMoveLAN(lan string) (Move, bool) {
	var buffer [MaxMoves]Move
	var child Board
	for _, m := range b.GenerateMoves(buffer[:0]) {
		if strings.EqualFold(m.String(), lan) {
			if b.MakeMove(m, &child) {
				return m, true
			}
			return MoveEmpty, false
		}
	}
	return MoveEmpty, false
}
