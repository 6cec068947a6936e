package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

func TestGenerateAllStartpos(t *testing.T) {
	p := position.New()
	var list MoveList
	GenerateAll(p, &list)
	assert.Equal(t, 20, list.Len())
}

func TestGenerateAllFiltersSelfCheck(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	var list MoveList
	GenerateAll(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.NotEqual(t, SqD2, m.To(), "moving the king onto the rook's rank must be filtered out")
	}
}

func TestGenerateCapturesOnlyCaptures(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var list MoveList
	GenerateCaptures(p, &list)
	assert.Equal(t, 1, list.Len())
	m := list.At(0)
	assert.Equal(t, SqE4, m.From())
	assert.Equal(t, SqD5, m.To())
}

func TestGenerateAllCheckmate(t *testing.T) {
	// fool's mate position after Black's Qh4#: white to move is mated
	p, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	var list MoveList
	GenerateAll(p, &list)
	assert.Equal(t, 0, list.Len())
	assert.True(t, p.IsInCheck(White))
}

func TestGenerateAllCastlingBlockedByCheck(t *testing.T) {
	// The e2 rook gives check along the e-file, so neither white
	// castling move may be generated even though both king/queen side
	// corridors are otherwise open and both castling rights are set.
	p, err := position.FromFEN("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsInCheck(White))

	var list MoveList
	GenerateAll(p, &list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == SqE1 {
			assert.NotEqual(t, SqG1, m.To(), "O-O must not be generated while the king is in check")
			assert.NotEqual(t, SqC1, m.To(), "O-O-O must not be generated while the king is in check")
		}
	}
}

func TestGenerateAllStalemate(t *testing.T) {
	p, err := position.FromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.NoError(t, err)
	var list MoveList
	GenerateAll(p, &list)
	assert.Equal(t, 0, list.Len())
	assert.False(t, p.IsInCheck(Black))
}
