package engine

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	. "github.com/ladyachess/ladya/pkg/chess"
)

// Engine searches chess positions. Configure Hash and Threads before
// the first Search; Prepare reallocates when they change.
type Engine struct {
	Hash             int
	Threads          int
	ProgressMinNodes int
	limits           LimitsType
	timeManager      *timeManager
	transTable       *transTable
	historyKeys      map[uint64]int
	threads          []thread
	progress         func(SearchInfo)
	mainLine         mainLine
	start            time.Time
	nodes            int64
	mu               sync.Mutex
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

func NewEngine() *Engine {
	return &Engine{
		Hash:             16,
		Threads:          1,
		ProgressMinNodes: 200000,
	}
}

func (e *Engine) Prepare() {
	if e.transTable == nil || e.transTable.Size() != e.Hash {
		if e.transTable != nil {
			e.transTable = nil
			runtime.GC()
		}
		e.transTable = newTransTable(e.Hash)
	}
	if len(e.threads) != e.Threads {
		e.threads = make([]thread, e.Threads)
		for i := range e.threads {
			var t = &e.threads[i]
			t.engine = e
			t.evaluator = newEvalService()
		}
	}
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
}

func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	var p = &searchParams.Positions[len(searchParams.Positions)-1]
	e.limits = searchParams.Limits
	e.timeManager = newTimeManager(ctx, e.start, searchParams.Limits, p)
	defer e.timeManager.Close()
	e.transTable.IncDate()
	e.historyKeys = getHistoryKeys(searchParams.Positions)
	e.progress = searchParams.Progress
	e.nodes = 0
	e.mainLine = mainLine{}

	for i := range e.threads {
		var t = &e.threads[i]
		t.nodes = 0
		t.stack[0].position = *p
		for h := 0; h <= 2; h++ {
			t.stack[h].killer1 = MoveEmpty
			t.stack[h].killer2 = MoveEmpty
		}
	}

	var rootMoves = p.GenerateLegalMoves()
	if len(rootMoves) != 0 {
		e.mainLine = mainLine{moves: []Move{rootMoves[0]}}
	}
	if len(rootMoves) > 1 {
		if e.Threads == 1 {
			e.threads[0].iterate()
		} else {
			var g errgroup.Group
			for i := range e.threads {
				var t = &e.threads[i]
				g.Go(func() error {
					t.iterate()
					return nil
				})
			}
			g.Wait()
		}
	}

	for i := range e.threads {
		var t = &e.threads[i]
		e.nodes += t.nodes
		t.nodes = 0
	}
	return e.currentSearchResult()
}

func getHistoryKeys(positions []Board) map[uint64]int {
	var result = make(map[uint64]int)
	for i := len(positions) - 1; i >= 0; i-- {
		var p = &positions[i]
		result[p.Key]++
		if p.Rule50 == 0 {
			break
		}
	}
	return result
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    e.nodes,
		Time:     time.Since(e.start).Milliseconds(),
	}
}

func (e *Engine) onIterationComplete(t *thread, depth, score int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nodes += t.nodes
	t.nodes = 0
	if depth > e.mainLine.depth {
		const height = 0
		e.mainLine = mainLine{
			depth: depth,
			score: score,
			moves: t.stack[height].pv.toSlice(),
		}
		e.timeManager.OnIterationComplete(depth, score)
		if e.progress != nil && e.nodes >= int64(e.ProgressMinNodes) {
			e.progress(e.currentSearchResult())
		}
	}
}
