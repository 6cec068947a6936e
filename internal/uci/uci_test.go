package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewaterlabs/gambit/internal/position"
)

func TestUciHandshake(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name gambit")
	assert.Contains(t, out, "id author tidewaterlabs")
	assert.Contains(t, out, "uciok")
}

func TestIsReady(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposWithMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.True(t, strings.HasPrefix(h.pos.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR"))
}

func TestPositionFen(t *testing.T) {
	h := NewHandler()
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.FEN())
}

func TestPositionInvalidMoveStopsProcessing(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 zz99 e7e5")
	// the bad token halts processing: only e2e4 should have applied
	assert.True(t, strings.HasPrefix(h.pos.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3"))
}

func TestGoDepthReturnsBestmove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	out := h.Command("go depth 2")
	assert.Contains(t, out, "bestmove")
}

func TestSetOptionHash(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name Hash value 2")
	assert.Equal(t, "", out)
	assert.Equal(t, 2, h.tt.SizeMiB())
}

func TestPerftCommand(t *testing.T) {
	h := NewHandler()
	out := h.Command("perft 2")
	assert.Contains(t, out, "nodes 400")
}

func TestPrintBoardCommand(t *testing.T) {
	h := NewHandler()
	out := h.Command("d")
	assert.Contains(t, out, "side=w")
	assert.Contains(t, out, "a b c d e f g h")
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h := NewHandler()
	out := h.Command("bogus")
	assert.Equal(t, "", out)
}

func TestMoveFromUCIRejectsMalformed(t *testing.T) {
	p := position.New()
	_, ok := moveFromUCI(p, "e2")
	assert.False(t, ok)
	_, ok = moveFromUCI(p, "z9z9")
	assert.False(t, ok)
}

func TestMoveFromUCIAcceptsLegalMove(t *testing.T) {
	p := position.New()
	m, ok := moveFromUCI(p, "e2e4")
	assert.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}
