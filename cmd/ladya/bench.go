package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ladyachess/ladya/pkg/chess"
	"github.com/ladyachess/ladya/pkg/engine"
)

// A fixed battery of openings, middlegames and endgames searched to a
// fixed depth. The node totals double as a quick regression check.
var benchmarkFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r2q1rk1/ppp2ppp/3p1n2/2nPp1b1/2B1P1b1/2N2N2/PPPQ1PPP/R3K2R w KQ - 0 9",
	"2rq1rk1/pp1bppbp/3p1np1/8/3NP3/1BN1BP2/PPPQ2PP/2KR3R b - - 4 12",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
	"8/8/1p6/8/P1k5/2p5/1KP5/8 b - - 0 1",
	"6k1/5p2/6p1/8/7p/8/6PP/6K1 b - - 0 1",
	"8/k7/3p4/p2P1p2/P2P1P2/8/8/K7 w - - 0 1",
}

func benchCommand(args []string) error {
	var depth = intArg(args, 0, 13)
	var threads = intArg(args, 1, 1)
	var megabytes = intArg(args, 2, 16)

	var eng = engine.NewEngine()
	eng.Hash = megabytes
	eng.Threads = threads
	eng.Prepare()

	type benchResult struct {
		score  int
		best   string
		ponder string
		nodes  int64
		time   int64
	}

	var ctx = context.Background()
	var start = time.Now()
	var results = make([]benchResult, 0, len(benchmarkFENs))
	for _, fen := range benchmarkFENs {
		var board, err = chess.ParseFEN(fen)
		if err != nil {
			return err
		}
		var si = eng.Search(ctx, engine.SearchParams{
			Positions: []chess.Board{board},
			Limits:    engine.LimitsType{Depth: depth},
		})
		eng.Clear()

		var score = si.Score.Centipawns
		if si.Score.Mate > 0 {
			score = engine.ValueMate - 2*si.Score.Mate
		} else if si.Score.Mate < 0 {
			score = -engine.ValueMate - 2*si.Score.Mate
		}
		var best, ponder = chess.MoveEmpty.String(), chess.MoveEmpty.String()
		if len(si.MainLine) > 0 {
			best = si.MainLine[0].String()
		}
		if len(si.MainLine) > 1 {
			ponder = si.MainLine[1].String()
		}
		results = append(results, benchResult{
			score:  score,
			best:   best,
			ponder: ponder,
			nodes:  si.Nodes,
			time:   si.Time,
		})
	}

	fmt.Printf("\n=================================================================================\n")
	var totalNodes int64
	for i, r := range results {
		fmt.Printf("Bench [# %2d] %5d cp  Best:%6s  Ponder:%6s %12d nodes %8d nps\n",
			i+1, r.score, r.best, r.ponder, r.nodes, 1000*r.nodes/(r.time+1))
		totalNodes += r.nodes
	}
	fmt.Printf("=================================================================================\n")

	var elapsed = time.Since(start).Milliseconds()
	fmt.Printf("OVERALL: %53d nodes %8d nps\n", totalNodes, 1000*totalNodes/(elapsed+1))
	return nil
}
