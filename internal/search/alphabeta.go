package search

import (
	"github.com/tidewaterlabs/gambit/internal/evaluator"
	"github.com/tidewaterlabs/gambit/internal/movegen"
	"github.com/tidewaterlabs/gambit/internal/position"
	"github.com/tidewaterlabs/gambit/internal/tt"
	. "github.com/tidewaterlabs/gambit/internal/types"
	"github.com/tidewaterlabs/gambit/internal/util"
)

// Searcher runs a single search at a time against a shared
// transposition table. It is not safe to call AlphaBeta concurrently
// from more than one goroutine; the UCI worker owns a Searcher
// exclusively while a search is running.
type Searcher struct {
	tt     *tt.Table
	stop   *util.AtomicBool
	limits *Limits
	stats  *Stats
}

// NewSearcher creates a Searcher against table, cancelled by stop and
// reporting progress through stats.
func NewSearcher(table *tt.Table, stop *util.AtomicBool, stats *Stats) *Searcher {
	return &Searcher{tt: table, stop: stop, stats: stats}
}

// AlphaBeta is the negamax alpha-beta entry point. ply is the
// distance from the search root, used for mate-distance scoring.
func (s *Searcher) AlphaBeta(p *position.Position, depth, ply int, alpha, beta Value) Value {
	if s.stats.Nodes()&nodeCheckMask == 0 && shouldStop(s.stop, s.limits) {
		return alpha
	}

	if depth == 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	var moves movegen.MoveList
	movegen.GenerateAll(p, &moves)

	ttMove := MoveNone
	if entry, ok := s.tt.Probe(p.Hash); ok {
		ttMove = entry.Move
		// A stored move is only trusted once it is confirmed legal in
		// this position: the table index (and, on a true key clash,
		// even the stored key) can belong to an unrelated position,
		// so a collision must never be allowed to short-circuit the
		// search with a foreign score.
		if int(entry.Depth) >= depth && moves.Contains(ttMove) {
			switch entry.Flag {
			case tt.Exact:
				return entry.Score
			case tt.Lower:
				if entry.Score >= beta {
					return entry.Score
				}
			case tt.Upper:
				if entry.Score <= alpha {
					return entry.Score
				}
			}
		}
	}

	s.stats.addNode()

	if moves.Len() == 0 {
		var score Value
		if p.IsInCheck(p.SideToMove) {
			score = MatedIn(ply)
		} else {
			score = ValueDraw
		}
		s.tt.Store(p.Hash, score, MoveNone, int8(depth), tt.Exact)
		return score
	}

	orderMoves(&moves, p, ttMove)

	best := ValueMin
	bestMove := MoveNone
	flag := tt.Upper

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		child := p.Clone()
		child.MakeMove(m)
		score := -s.AlphaBeta(child, depth-1, ply+1, -beta, -alpha)

		if score > best {
			best = score
			bestMove = m
			if ply == 0 {
				s.stats.setBestMove(m)
			}
		}
		if score > alpha {
			alpha = score
			flag = tt.Exact
		}
		if score >= beta {
			flag = tt.Lower
			break
		}
	}

	s.tt.Store(p.Hash, best, bestMove, int8(depth), flag)
	return best
}

// quiescence extends the search along capturing lines only, so the
// static evaluation at the search horizon is never taken on a
// position in the middle of a capture sequence.
func (s *Searcher) quiescence(p *position.Position, ply int, alpha, beta Value) Value {
	if s.stats.Nodes()&nodeCheckMask == 0 && shouldStop(s.stop, s.limits) {
		return alpha
	}
	s.stats.addNode()

	stand := evaluator.Evaluate(p)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	var moves movegen.MoveList
	movegen.GenerateCaptures(p, &moves)
	orderMoves(&moves, p, MoveNone)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		child := p.Clone()
		child.MakeMove(m)
		score := -s.quiescence(child, ply+1, -beta, -alpha)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
