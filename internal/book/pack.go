package book

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ladyachess/ladya/pkg/chess"
)

// Pack reads annotated FEN lines from r and appends one binary record
// per line to w, in input order. A malformed line is fatal; the error
// names the offending line number. Returns the number of records
// written.
func Pack(r io.Reader, w io.Writer) (int, error) {
	var scanner = bufio.NewScanner(r)
	var lineNum, records int
	for scanner.Scan() {
		lineNum++
		var line = scanner.Text()

		var board, err = chess.ParseFEN(line)
		if err != nil {
			return records, fmt.Errorf("line %d: %w", lineNum, err)
		}
		label, err := ParseLabel(line)
		if err != nil {
			return records, fmt.Errorf("line %d: %w", lineNum, err)
		}
		record, err := EncodeBoard(&board, label)
		if err != nil {
			return records, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if _, err := w.Write(record); err != nil {
			return records, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records++
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}
