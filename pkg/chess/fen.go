package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const pieceChars = "pnbrqk"

// ParseFEN builds a Board from a FEN string. Trailing fields beyond
// the en passant square are optional, and anything after the move
// counters (such as book annotations) is ignored.
func ParseFEN(fen string) (Board, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 {
		return Board{}, fmt.Errorf("chess: parse fen %q: too few fields", fen)
	}

	var b = Board{
		EpSquare: SquareNone,
		LastMove: MoveEmpty,
	}
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}

	var sq = 0
	for _, ch := range tokens[0] {
		switch {
		case unicode.IsDigit(ch):
			sq += int(ch - '0')
		case unicode.IsLetter(ch):
			if sq >= 64 {
				return Board{}, fmt.Errorf("chess: parse fen %q: board overflow", fen)
			}
			var colour = Black
			if unicode.IsUpper(ch) {
				colour = White
			}
			var pieceType = strings.IndexRune(pieceChars, unicode.ToLower(ch))
			if pieceType < 0 {
				return Board{}, fmt.Errorf("chess: parse fen %q: bad piece %q", fen, ch)
			}
			b.putPiece(colour, pieceType, FlipSquare(sq))
			sq++
		}
	}

	switch tokens[1] {
	case "w":
		b.Turn = White
	case "b":
		b.Turn = Black
	default:
		return Board{}, fmt.Errorf("chess: parse fen %q: bad side to move", fen)
	}

	if strings.Contains(tokens[2], "K") {
		b.Castling |= WhiteKingSide
	}
	if strings.Contains(tokens[2], "Q") {
		b.Castling |= WhiteQueenSide
	}
	if strings.Contains(tokens[2], "k") {
		b.Castling |= BlackKingSide
	}
	if strings.Contains(tokens[2], "q") {
		b.Castling |= BlackQueenSide
	}

	b.EpSquare = ParseSquare(tokens[3])
	if b.EpSquare == SquareNone && tokens[3] != "-" {
		return Board{}, fmt.Errorf("chess: parse fen %q: bad en passant square %q", fen, tokens[3])
	}

	if len(tokens) > 4 {
		b.Rule50, _ = strconv.Atoi(tokens[4])
	}
	b.FullMove = 1
	if len(tokens) > 5 {
		if v, err := strconv.Atoi(tokens[5]); err == nil && v > 0 {
			b.FullMove = v
		}
	}

	if PopCount(b.Pieces[King]&b.Colours[White]) != 1 ||
		PopCount(b.Pieces[King]&b.Colours[Black]) != 1 {
		return Board{}, fmt.Errorf("chess: parse fen %q: each side needs one king", fen)
	}

	b.Key = b.computeKey()
	b.Checkers = b.computeCheckers()

	if b.isAttacked(b.KingSq(b.Turn^1), b.Turn) {
		return Board{}, fmt.Errorf("chess: parse fen %q: side not to move is in check", fen)
	}
	return b, nil
}

func (b *Board) String() string {
	var sb strings.Builder

	var emptyCount = 0
	for i := 0; i < 64; i++ {
		var sq = FlipSquare(i)
		var piece = b.Squares[sq]
		if piece == NoPiece {
			emptyCount++
		} else {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			var ch = pieceChars[PieceType(piece)]
			if PieceColour(piece) == White {
				ch = byte(unicode.ToUpper(rune(ch)))
			}
			sb.WriteByte(ch)
		}
		if File(sq) == FileH {
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			if Rank(sq) != Rank1 {
				sb.WriteString("/")
			}
		}
	}

	sb.WriteString(" ")
	if b.Turn == White {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}

	sb.WriteString(" ")
	if b.Castling == 0 {
		sb.WriteString("-")
	} else {
		if b.Castling&WhiteKingSide != 0 {
			sb.WriteString("K")
		}
		if b.Castling&WhiteQueenSide != 0 {
			sb.WriteString("Q")
		}
		if b.Castling&BlackKingSide != 0 {
			sb.WriteString("k")
		}
		if b.Castling&BlackQueenSide != 0 {
			sb.WriteString("q")
		}
	}

	sb.WriteString(" ")
	if b.EpSquare == SquareNone {
		sb.WriteString("-")
	} else {
		sb.WriteString(SquareName(b.EpSquare))
	}

	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.FullMove))

	return sb.String()
}
