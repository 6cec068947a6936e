// Package search implements negamax alpha-beta search with
// quiescence and an iterative-deepening driver, cooperatively
// cancellable via a shared stop flag.
package search

import (
	"sync/atomic"
	"time"

	. "github.com/tidewaterlabs/gambit/internal/types"
	"github.com/tidewaterlabs/gambit/internal/util"
)

// nodeCheckMask gates how often the stop predicate is consulted: every
// 2048 nodes, via a power-of-two mask on the node counter rather than
// a modulo.
const nodeCheckMask = 2048 - 1

// Stats holds the search's shared, atomically published state. The
// UCI worker reads it concurrently with the search goroutine writing
// it; every field is accessed only through its Load/store helpers.
type Stats struct {
	nodes              uint64
	bestDepthCompleted int32
	bestRootScore      int32
	bestMove           uint32
}

// Nodes returns the number of nodes visited so far.
func (st *Stats) Nodes() uint64 { return atomic.LoadUint64(&st.nodes) }

func (st *Stats) addNode() { atomic.AddUint64(&st.nodes, 1) }

// BestDepthCompleted returns the deepest iterative-deepening
// iteration that ran to completion.
func (st *Stats) BestDepthCompleted() int {
	return int(atomic.LoadInt32(&st.bestDepthCompleted))
}

func (st *Stats) setBestDepthCompleted(d int) {
	atomic.StoreInt32(&st.bestDepthCompleted, int32(d))
}

// BestRootScore returns the root score of the deepest completed
// iteration.
func (st *Stats) BestRootScore() Value {
	return Value(atomic.LoadInt32(&st.bestRootScore))
}

func (st *Stats) setBestRootScore(v Value) {
	atomic.StoreInt32(&st.bestRootScore, int32(v))
}

// BestMove returns the best move published so far. The UCI reader may
// observe a slightly stale value while a search is in flight, but
// after the search ends it is guaranteed to see the final value.
func (st *Stats) BestMove() Move {
	return Move(atomic.LoadUint32(&st.bestMove))
}

func (st *Stats) setBestMove(m Move) {
	atomic.StoreUint32(&st.bestMove, uint32(m))
}

func (st *Stats) reset() {
	atomic.StoreUint64(&st.nodes, 0)
	atomic.StoreInt32(&st.bestDepthCompleted, 0)
	atomic.StoreInt32(&st.bestRootScore, int32(ValueNA))
	atomic.StoreUint32(&st.bestMove, uint32(MoveNone))
}

// Limits controls how long a search may run, set by the UCI worker
// before the search starts and never touched by the search goroutine
// itself.
type Limits struct {
	MaxDepth  int
	TimeLimit time.Duration // zero means unlimited
	StartTime time.Time
}

// shouldStop reports whether the cooperative stop predicate fires:
// the shared stop flag is set, or the time budget (if any) elapsed.
func shouldStop(stop *util.AtomicBool, limits *Limits) bool {
	if stop.Load() {
		return true
	}
	if limits.TimeLimit > 0 && time.Since(limits.StartTime) >= limits.TimeLimit {
		return true
	}
	return false
}
