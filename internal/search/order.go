package search

import (
	"github.com/tidewaterlabs/gambit/internal/movegen"
	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// orderMoves reorders list in place: the TT move (if present) first,
// then captures ordered MVV/LVA (most valuable victim, least valuable
// attacker), then everything else in the generator's own order. This
// is the one enrichment beyond "TT move first, generator order
// otherwise" the search applies.
func orderMoves(list *movegen.MoveList, p *position.Position, ttMove Move) {
	moves := list.Slice()
	score := func(m Move) int {
		if m == ttMove {
			return 1 << 30
		}
		victim := p.PieceAt(m.To())
		if m.Type() == EnPassant {
			return 1<<20 + int(Pawn.Value())*16
		}
		if victim == PieceNone {
			return 0
		}
		attacker := p.PieceAt(m.From())
		return 1<<20 + int(victim.TypeOf().Value())*16 - int(attacker.TypeOf().Value())
	}

	// Insertion sort: the list is short (at most 218 entries, usually
	// far fewer after legality filtering) so this never shows up on a
	// profile next to move generation or search itself.
	for i := 1; i < len(moves); i++ {
		key := moves[i]
		keyScore := score(key)
		j := i - 1
		for j >= 0 && score(moves[j]) < keyScore {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = key
	}
}
