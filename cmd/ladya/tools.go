package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ladyachess/ladya/internal/book"
	"github.com/ladyachess/ladya/pkg/engine"
)

const defaultBookPath = "output.nnbook"

// filterCommand keeps only the quiet training positions of a book,
// echoing them to standard output.
func filterCommand(logger *log.Logger, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: filter <path>")
	}
	var path = args[0]

	var file, err = os.Open(path)
	if err != nil {
		return fmt.Errorf("open book %v: %w", path, err)
	}
	defer file.Close()

	var out = bufio.NewWriter(os.Stdout)
	kept, seen, err := book.Filter(file, out, engine.NewProbe())
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	logger.Println("filter",
		"seen", seen,
		"kept", kept)
	return nil
}

// nnbookCommand packs an annotated book into the binary training
// format. The output path defaults to output.nnbook in the working
// directory.
func nnbookCommand(logger *log.Logger, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: nnbook <path> [output]")
	}
	var inputPath = args[0]
	var outputPath = defaultBookPath
	if len(args) > 1 {
		outputPath = args[1]
	}

	var input, err = os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open book %v: %w", inputPath, err)
	}
	defer input.Close()

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %v: %w", outputPath, err)
	}

	var buffered = bufio.NewWriter(output)
	records, err := book.Pack(input, buffered)
	if err == nil {
		err = buffered.Flush()
	}
	if closeErr := output.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write %v: %w", outputPath, err)
	}

	logger.Println("nnbook",
		"records", records,
		"output", outputPath)
	return nil
}
