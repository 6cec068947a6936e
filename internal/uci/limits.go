package uci

import (
	"strconv"
	"time"

	"github.com/tidewaterlabs/gambit/internal/search"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// goParams is the raw set of options a "go" command line can carry,
// parsed before being turned into search.Limits (which also needs to
// know whose turn it is, to pick the right side's clock).
type goParams struct {
	depth      int
	movetimeMs int64
	wtimeMs    int64
	btimeMs    int64
	wincMs     int64
	bincMs     int64
	movestogo  int
	infinite   bool
	haveTime   bool
}

func parseGoTokens(tokens []string) goParams {
	var g goParams
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			if i < len(tokens) {
				g.depth, _ = strconv.Atoi(tokens[i])
			}
		case "movetime":
			i++
			if i < len(tokens) {
				g.movetimeMs, _ = strconv.ParseInt(tokens[i], 10, 64)
				g.haveTime = true
			}
		case "wtime":
			i++
			if i < len(tokens) {
				g.wtimeMs, _ = strconv.ParseInt(tokens[i], 10, 64)
				g.haveTime = true
			}
		case "btime":
			i++
			if i < len(tokens) {
				g.btimeMs, _ = strconv.ParseInt(tokens[i], 10, 64)
				g.haveTime = true
			}
		case "winc":
			i++
			if i < len(tokens) {
				g.wincMs, _ = strconv.ParseInt(tokens[i], 10, 64)
			}
		case "binc":
			i++
			if i < len(tokens) {
				g.bincMs, _ = strconv.ParseInt(tokens[i], 10, 64)
			}
		case "movestogo":
			i++
			if i < len(tokens) {
				g.movestogo, _ = strconv.Atoi(tokens[i])
			}
		case "infinite":
			g.infinite = true
		}
	}
	return g
}

// maxSearchDepth bounds iterative deepening when "go" doesn't specify
// a depth itself; MaxPly already bounds mate-distance scoring so it
// doubles as the hard ceiling here.
const maxSearchDepth = MaxPly

// toLimits turns parsed "go" params into search.Limits for the side
// to move us. Time budgeting: with movetime, max(10, movetime-50);
// otherwise own_time/20 + own_inc/2 (movestogo, when given, replaces
// the divisor 20), clamped to [20ms, own_time-200ms]; a missing or
// zero own_time gives 20ms. infinite sets no time limit.
func (g goParams) toLimits(us Color, start time.Time) *search.Limits {
	limits := &search.Limits{MaxDepth: maxSearchDepth, StartTime: start}
	if g.depth > 0 {
		limits.MaxDepth = g.depth
	}
	if g.infinite {
		return limits
	}

	switch {
	case g.movetimeMs > 0:
		ms := g.movetimeMs - 50
		if ms < 10 {
			ms = 10
		}
		limits.TimeLimit = time.Duration(ms) * time.Millisecond

	case g.haveTime:
		ownTime, ownInc := g.wtimeMs, g.wincMs
		if us == Black {
			ownTime, ownInc = g.btimeMs, g.bincMs
		}
		if ownTime <= 0 {
			limits.TimeLimit = 20 * time.Millisecond
			return limits
		}
		divisor := int64(20)
		if g.movestogo > 0 {
			divisor = int64(g.movestogo)
		}
		ms := ownTime/divisor + ownInc/2
		if ms < 20 {
			ms = 20
		}
		if maxMs := ownTime - 200; ms > maxMs {
			if maxMs < 20 {
				maxMs = 20
			}
			ms = maxMs
		}
		limits.TimeLimit = time.Duration(ms) * time.Millisecond
	}

	return limits
}
