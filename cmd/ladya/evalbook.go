package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ladyachess/ladya/pkg/chess"
	"github.com/ladyachess/ladya/pkg/engine"
)

// evalBookCommand searches every position of a book to a fixed depth,
// echoing the lines as they complete. Useful for warming a book with
// fresh evaluations and for timing comparisons.
func evalBookCommand(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: evalbook <path> [depth] [threads] [hashMB]")
	}
	var path = args[0]
	var depth = intArg(args, 1, 12)
	var threads = intArg(args, 2, 1)
	var megabytes = intArg(args, 3, 2)

	var file, err = os.Open(path)
	if err != nil {
		return fmt.Errorf("open book %v: %w", path, err)
	}
	defer file.Close()

	var eng = engine.NewEngine()
	eng.Hash = megabytes
	eng.Threads = threads
	eng.Prepare()

	var ctx = context.Background()
	var start = time.Now()
	var lineNum int
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		var line = scanner.Text()
		var board, err = chess.ParseFEN(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		eng.Search(ctx, engine.SearchParams{
			Positions: []chess.Board{board},
			Limits:    engine.LimitsType{Depth: depth},
		})
		eng.Clear()
		fmt.Printf("FEN: %s\n", line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("Time %dms\n", time.Since(start).Milliseconds())
	return nil
}
