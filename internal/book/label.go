package book

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Game results as stored in the record, from White's point of view.
const (
	ResultBlackWin uint8 = 0
	ResultDraw     uint8 = 1
	ResultWhiteWin uint8 = 2
)

// Label carries the training annotations attached to a FEN line: the
// engine evaluation in centipawns and the game result.
type Label struct {
	Eval   int16
	Result uint8
}

var (
	errNoEvalMarker = errors.New("no \"] \" evaluation marker")
	errNoEvalDigits = errors.New("no digits after evaluation marker")
	errNoResult     = errors.New("no result token")
)

// ParseLabel extracts the annotations from an input line of the form
// "<fen> [0.5] 10". The evaluation follows the first "] " substring;
// the result is one of the tokens [0.0], [0.5], [1.0].
func ParseLabel(line string) (Label, error) {
	var idx = strings.Index(line, "] ")
	if idx < 0 {
		return Label{}, errNoEvalMarker
	}
	var eval, err = parseEval(line[idx+2:])
	if err != nil {
		return Label{}, err
	}

	var result uint8
	switch {
	case strings.Contains(line, "[0.0]"):
		result = ResultBlackWin
	case strings.Contains(line, "[0.5]"):
		result = ResultDraw
	case strings.Contains(line, "[1.0]"):
		result = ResultWhiteWin
	default:
		return Label{}, errNoResult
	}

	return Label{Eval: eval, Result: result}, nil
}

// parseEval reads an optionally signed decimal integer from the head
// of s. Values outside the int16 range clamp to the nearest limit.
func parseEval(s string) (int16, error) {
	var end = 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	var digitsFrom = end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsFrom {
		return 0, errNoEvalDigits
	}
	var v, err = strconv.ParseInt(s[:end], 10, 16)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			if s[0] == '-' {
				return math.MinInt16, nil
			}
			return math.MaxInt16, nil
		}
		return 0, err
	}
	return int16(v), nil
}
