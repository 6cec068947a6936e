// Package uci implements the UCI protocol front end: a line-oriented
// stdin/stdout command loop that owns a Position, drives a
// search.Searcher on a worker goroutine, and formats its output as
// UCI info/bestmove lines.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/tidewaterlabs/gambit/internal/config"
	"github.com/tidewaterlabs/gambit/internal/elog"
	"github.com/tidewaterlabs/gambit/internal/fen"
	"github.com/tidewaterlabs/gambit/internal/movegen"
	"github.com/tidewaterlabs/gambit/internal/position"
	"github.com/tidewaterlabs/gambit/internal/search"
	"github.com/tidewaterlabs/gambit/internal/tt"
	. "github.com/tidewaterlabs/gambit/internal/types"
	"github.com/tidewaterlabs/gambit/internal/util"
)

var log *logging.Logger

// EngineName and EngineAuthor are reported in response to "uci".
const (
	EngineName   = "gambit"
	EngineAuthor = "tidewaterlabs"
)

// Handler owns the engine's UCI-visible state: the current position,
// the transposition table, and the search worker. It processes one
// command line at a time; Loop drives it from stdin until "quit".
type Handler struct {
	in    *bufio.Scanner
	out   *bufio.Writer
	outMu sync.Mutex

	pos *position.Position
	tt  *tt.Table

	stop  *util.AtomicBool
	stats *search.Stats

	searchGroup errgroup.Group
	searching   *util.AtomicBool
}

// NewHandler creates a Handler reading from stdin and writing to
// stdout, with a freshly sized transposition table per
// config.Settings.
func NewHandler() *Handler {
	if log == nil {
		log = elog.Get("uci")
	}
	table, sizeMiB, clamped := tt.New(config.Settings.TT.SizeMiB)
	if clamped {
		log.Warningf("tt size clamped to %d MiB", sizeMiB)
	}
	return &Handler{
		in:        bufio.NewScanner(os.Stdin),
		out:       bufio.NewWriter(os.Stdout),
		pos:       position.New(),
		tt:        table,
		stop:      util.NewAtomicBool(false),
		stats:     &search.Stats{},
		searching: util.NewAtomicBool(false),
	}
}

// Loop reads commands from stdin until "quit" or EOF.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.handle(h.in.Text()) {
			return
		}
	}
}

// Command processes a single line and returns anything the handler
// would have written to stdout for it, waiting for a search started by
// the line to finish first. Used by tests.
func (h *Handler) Command(cmd string) string {
	var buf strings.Builder
	prev := h.out
	h.out = bufio.NewWriter(&buf)
	h.handle(cmd)
	_ = h.searchGroup.Wait()
	_ = h.out.Flush()
	h.out = prev
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle processes one line, returning true if the engine should
// exit (the "quit" command).
func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens := whitespace.Split(line, -1)
	switch tokens[0] {
	case "uci":
		h.cmdUCI()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.cmdNewGame()
	case "position":
		h.cmdPosition(tokens)
	case "go":
		h.cmdGo(tokens)
	case "stop":
		h.cmdStop()
	case "setoption":
		h.cmdSetOption(tokens)
	case "perft":
		h.cmdPerft(tokens)
	case "d":
		h.cmdPrintBoard()
	case "quit":
		h.cmdStop()
		return true
	default:
		log.Debugf("ignoring unknown command: %s", line)
	}
	return false
}

func (h *Handler) cmdUCI() {
	h.send(fmt.Sprintf("id name %s %s", EngineName, "dev"))
	h.send(fmt.Sprintf("id author %s", EngineAuthor))
	h.send(fmt.Sprintf("option name Hash type spin default %d min %d max %d",
		config.Settings.TT.SizeMiB, tt.MinSizeMiB, tt.MaxSizeMiB))
	h.send("option name Clear Hash type button")
	h.send("uciok")
}

func (h *Handler) cmdNewGame() {
	h.cmdStop()
	h.pos = position.New()
	h.tt.Clear()
}

func (h *Handler) cmdPosition(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	i := 1
	var p *position.Position
	switch tokens[i] {
	case "startpos":
		p = position.New()
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		parsed, err := fen.Parse(strings.TrimSpace(b.String()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "uci: bad fen: %v\n", err)
			return
		}
		p = parsed
	default:
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, ok := moveFromUCI(p, tokens[i])
			if !ok {
				log.Warningf("ignoring remaining moves after invalid token %q", tokens[i])
				break
			}
			p.MakeMove(m)
		}
	}
	h.pos = p
}

func (h *Handler) cmdGo(tokens []string) {
	h.cmdStop()
	g := parseGoTokens(tokens)
	start := time.Now()
	limits := g.toLimits(h.pos.SideToMove, start)

	h.stop.Store(false)
	searcher := search.NewSearcher(h.tt, h.stop, h.stats)
	searcher.SetLimits(limits)

	root := h.pos.Clone()
	h.searching.Store(true)
	h.searchGroup.Go(func() error {
		searcher.IterativeDeepen(root, func(depth int, score Value) {
			h.reportProgress(start, depth, score)
		})
		h.reportResult()
		h.searching.Store(false)
		return nil
	})
}

func (h *Handler) cmdStop() {
	if !h.searching.Load() {
		return
	}
	h.stop.Store(true)
	_ = h.searchGroup.Wait()
}

func (h *Handler) cmdSetOption(tokens []string) {
	name, value := parseSetOption(tokens)
	switch name {
	case "Hash":
		mib, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		h.cmdStop()
		table, sizeMiB, clamped := tt.New(mib)
		if clamped {
			log.Warningf("tt size clamped to %d MiB", sizeMiB)
		}
		config.Settings.TT.SizeMiB = sizeMiB
		h.tt = table
	case "Clear Hash":
		h.cmdStop()
		h.tt.Clear()
	}
}

func parseSetOption(tokens []string) (name, value string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		return "", ""
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	return name, value
}

// cmdPrintBoard is the "d" debug command, a non-standard UCI extension
// most engines in this family ship for visually inspecting the current
// position while driving the engine by hand.
func (h *Handler) cmdPrintBoard() {
	h.send(h.pos.String())
}

func (h *Handler) cmdPerft(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	start := time.Now()
	nodes := movegen.Perft(h.pos, depth)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d time %d nps %d",
		depth, nodes, elapsed.Milliseconds(), util.Nps(nodes, elapsed)))
}

// reportProgress sends an "info depth" line for one iterative-deepening
// iteration that just completed, so a GUI watching a long or infinite
// search sees progress instead of silence until bestmove.
func (h *Handler) reportProgress(start time.Time, depth int, score Value) {
	elapsed := time.Since(start)
	nodes := h.stats.Nodes()
	h.send(fmt.Sprintf("info depth %d score %s nodes %d time %d nps %d",
		depth, formatScore(score), nodes, elapsed.Milliseconds(), util.Nps(nodes, elapsed)))
}

// reportResult sends the final bestmove line for a completed or
// cancelled search. The last "info depth" line was already sent by
// reportProgress for the deepest iteration that ran to completion.
func (h *Handler) reportResult() {
	best := h.stats.BestMove()
	if best == MoveNone {
		h.send("bestmove 0000")
		return
	}
	h.send("bestmove " + best.String())
}

// formatScore renders a Value as UCI wants: "cp <n>" normally, or
// "mate <n>" (n positive for mating, negative for being mated) when v
// is a forced-mate score.
func formatScore(v Value) string {
	if v >= Mate-MaxPly {
		return fmt.Sprintf("mate %d", (Mate-v+1)/2)
	}
	if v <= -Mate+MaxPly {
		return fmt.Sprintf("mate %d", -(Mate+v+1)/2)
	}
	return fmt.Sprintf("cp %d", v)
}

func (h *Handler) send(s string) {
	h.outMu.Lock()
	defer h.outMu.Unlock()
	_, _ = h.out.WriteString(s + "\n")
	_ = h.out.Flush()
}
