package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewaterlabs/gambit/internal/position"
)

// Perft node counts from the standard starting position, the
// well-known reference values (see chessprogramming.org/Perft_Results).
func TestPerftStartpos(t *testing.T) {
	p := position.New()
	expected := []uint64{20, 400, 8902, 197281, 4865609}
	maxDepth := len(expected)
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 1; depth <= maxDepth; depth++ {
		assert.Equal(t, expected[depth-1], Perft(p, depth), "perft depth %d", depth)
	}
}

// TestPerftStartposDepth6 covers the deepest reference node count
// spec.md names (depth 6 from startpos); it runs long enough that it
// stays out of TestPerftStartpos's own depth range and is skipped in
// short mode like the rest of that table's deeper entries.
func TestPerftStartposDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p := position.New()
	assert.Equal(t, uint64(119060324), Perft(p, 6))
}

func TestPerftStartposShallow(t *testing.T) {
	p := position.New()
	assert.Equal(t, uint64(20), Perft(p, 1))
	assert.Equal(t, uint64(400), Perft(p, 2))
	assert.Equal(t, uint64(8902), Perft(p, 3))
}

// Kiwipete: the standard second perft test position, exercising
// castling, en-passant and promotions together.
func TestPerftKiwipete(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(p, 1))
	assert.Equal(t, uint64(2039), Perft(p, 2))
}
