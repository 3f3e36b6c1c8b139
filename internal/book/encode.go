package book

import (
	"encoding/binary"
	"fmt"

	"github.com/ladyachess/ladya/pkg/chess"
)

const headerSize = 15

// RecordSize returns the on-disk size of a record for the given piece
// count: the fixed header plus one nibble per piece.
func RecordSize(count int) int {
	return headerSize + (count+1)/2
}

// EncodeBoard serializes a position and its label into one binary
// record. All multi-byte fields are little-endian. The layout is the
// occupancy bitboard, the evaluation, the result, the side to move,
// both king squares, the piece count, and finally the piece types
// nibble-packed in ascending square order. An odd piece count leaves
// the low nibble of the last byte zero.
func EncodeBoard(b *chess.Board, label Label) ([]byte, error) {
	var pieces = b.Occupied()
	var count = chess.PopCount(pieces)

	var record = make([]byte, RecordSize(count))
	binary.LittleEndian.PutUint64(record[0:], pieces)
	binary.LittleEndian.PutUint16(record[8:], uint16(label.Eval))
	record[10] = label.Result
	record[11] = uint8(b.Turn)
	record[12] = uint8(b.KingSq(chess.White))
	record[13] = uint8(b.KingSq(chess.Black))
	record[14] = uint8(count)

	// The nibble encoding keeps the piece type in the low three bits
	// and the colour in bit 3, so any type code past King would
	// corrupt the colour bit.
	var types [32]uint8
	for i, occ := 0, pieces; occ != 0; i++ {
		var sq = chess.PopLSB(&occ)
		var piece = b.Squares[sq]
		var pieceType = chess.PieceType(piece)
		if pieceType < chess.Pawn || pieceType > chess.King {
			return nil, fmt.Errorf("piece type %d on %v does not fit a nibble",
				pieceType, chess.SquareName(sq))
		}
		types[i] = uint8(8*chess.PieceColour(piece) + pieceType)
	}
	for j := 0; 2*j < count; j++ {
		record[headerSize+j] = types[2*j]<<4 | types[2*j+1]
	}
	return record, nil
}
