package search

import (
	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// SetLimits installs the time/depth budget the next IterativeDeepen
// call runs under. Must be called before IterativeDeepen; the UCI
// worker sets StartTime right before spawning the search goroutine.
func (s *Searcher) SetLimits(limits *Limits) {
	s.limits = limits
}

// IterativeDeepen runs AlphaBeta at increasing depths, starting from
// 1, until maxDepth is reached, the stop predicate fires, or a forced
// mate is found. The root's best move from the deepest iteration that
// ran to completion is what remains published in Stats once this
// returns; a depth aborted mid-flight never overwrites it.
//
// onDepth, if non-nil, is called once after each iteration that runs
// to completion, with that iteration's depth and root score already
// published in Stats. This is how a caller reports progress (UCI
// "info depth") while a long-running or infinite search is still in
// flight, rather than only once the whole call returns.
func (s *Searcher) IterativeDeepen(p *position.Position, onDepth func(depth int, score Value)) {
	s.stats.reset()

	for depth := 1; depth <= s.limits.MaxDepth; depth++ {
		if shouldStop(s.stop, s.limits) {
			break
		}

		score := s.AlphaBeta(p, depth, 0, ValueMin, ValueMax)

		if shouldStop(s.stop, s.limits) {
			break
		}

		s.stats.setBestDepthCompleted(depth)
		s.stats.setBestRootScore(score)
		if onDepth != nil {
			onDepth(depth, score)
		}

		if score >= Mate-1000 || score <= -(Mate-1000) {
			break
		}
	}
}
