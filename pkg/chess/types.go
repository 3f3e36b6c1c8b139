package chess

const (
	White = iota
	Black
	ColourNB
)

// Piece types. The three-bit codes are part of the nnbook on-disk
// contract: a piece descriptor is colour<<3|type and must fit a nibble.
const (
	Pawn = iota
	Knight
	Bishop
	Rook
	Queen
	King
	TypeNB
)

// NoPiece marks an empty square in Board.Squares.
const NoPiece int8 = -1

func MakePiece(colour, pieceType int) int8 {
	return int8(colour<<3 | pieceType)
}

func PieceColour(piece int8) int {
	return int(piece >> 3)
}

func PieceType(piece int8) int {
	return int(piece & 7)
}

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// Board holds one chess position. Colours and Pieces are redundant with
// Squares; every mutation keeps them in sync.
type Board struct {
	Colours  [ColourNB]uint64
	Pieces   [TypeNB]uint64
	Squares  [64]int8
	Turn     int
	Castling int
	EpSquare int
	Rule50   int
	FullMove int
	Key      uint64
	Checkers uint64
	LastMove Move
}

const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const MaxMoves = 256

func (b *Board) Occupied() uint64 {
	return b.Colours[White] | b.Colours[Black]
}

func (b *Board) Count() int {
	return PopCount(b.Occupied())
}

func (b *Board) InCheck() bool {
	return b.Checkers != 0
}

func (b *Board) KingSq(colour int) int {
	return FirstOne(b.Pieces[King] & b.Colours[colour])
}

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareNone = -1

const (
	SquareA1 = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
)

const (
	SquareA8 = 56 + iota
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)
