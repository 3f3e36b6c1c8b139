package book

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ladyachess/ladya/pkg/chess"
	"github.com/ladyachess/ladya/pkg/engine"
)

// Oracle is the engine surface the quiet filter consumes. The
// evaluations must agree exactly on positions where no capture
// improves on the stand pat.
type Oracle interface {
	InCheck(b *chess.Board) bool
	PieceCount(b *chess.Board) int
	StaticEval(b *chess.Board) int
	Quiescence(b *chess.Board, alpha, beta int) int
}

// Positions with this few pieces or fewer belong to the tablebase
// range and are dropped.
const tablebasePieces = 6

// Filter echoes every line of r whose position is a quiet training
// sample: side to move not in check, more than tablebasePieces pieces
// on the board, and static evaluation equal to the full-window
// quiescence evaluation. Passing lines are written to w byte for
// byte; rejected lines are dropped. Returns kept and seen line
// counts.
func Filter(r io.Reader, w io.Writer, oracle Oracle) (kept, seen int, err error) {
	var reader = bufio.NewReader(r)
	for {
		var line, readErr = reader.ReadString('\n')
		if len(line) > 0 {
			seen++
			var board, err = chess.ParseFEN(strings.TrimRight(line, "\r\n"))
			if err != nil {
				return kept, seen, fmt.Errorf("line %d: %w", seen, err)
			}
			if isQuiet(&board, oracle) {
				if _, err := io.WriteString(w, line); err != nil {
					return kept, seen, err
				}
				kept++
			}
		}
		if readErr == io.EOF {
			return kept, seen, nil
		}
		if readErr != nil {
			return kept, seen, readErr
		}
	}
}

func isQuiet(b *chess.Board, oracle Oracle) bool {
	if oracle.InCheck(b) {
		return false
	}
	if oracle.PieceCount(b) <= tablebasePieces {
		return false
	}
	return oracle.StaticEval(b) ==
		oracle.Quiescence(b, -engine.ValueMate, engine.ValueMate)
}
