package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/ladyachess/ladya/pkg/engine"
	"github.com/ladyachess/ladya/pkg/uci"
)

const (
	name   = "Ladya"
	author = "Ladya authors"
)

var versionName = "dev"

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	if len(os.Args) > 1 {
		var args = os.Args[2:]
		switch os.Args[1] {
		case "bench":
			return benchCommand(args)
		case "evalbook":
			return evalBookCommand(args)
		case "filter":
			return filterCommand(logger, args)
		case "nnbook":
			return nnbookCommand(logger, args)
		default:
			return fmt.Errorf("unknown command %q", os.Args[1])
		}
	}

	logger.Println(name,
		"VersionName", versionName,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var eng = engine.NewEngine()
	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 4, Max: 1 << 16, Value: &eng.Hash},
			&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Threads},
		},
	)
	protocol.Run(logger)
	return nil
}

// intArg returns args[i] parsed as an integer, or def when the
// argument is absent.
func intArg(args []string, i, def int) int {
	if i < len(args) {
		if v, err := strconv.Atoi(args[i]); err == nil {
			return v
		}
	}
	return def
}
