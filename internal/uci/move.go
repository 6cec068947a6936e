package uci

import (
	"github.com/tidewaterlabs/gambit/internal/movegen"
	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// moveFromUCI resolves a UCI long-algebraic token (e.g. "e2e4",
// "e7e8q") against p's legal moves. Matching against the legal move
// list (rather than just decoding the squares) means an illegal move
// in a "position ... moves" list is rejected instead of silently
// corrupting the position, per the engine's error-handling policy for
// malformed input.
func moveFromUCI(p *position.Position, token string) (Move, bool) {
	if len(token) < 4 || len(token) > 5 {
		return MoveNone, false
	}
	from := MakeSquare(token[0:2])
	to := MakeSquare(token[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, false
	}
	var promo PieceType = PtNone
	if len(token) == 5 {
		switch token[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return MoveNone, false
		}
	}

	var moves movegen.MoveList
	movegen.GenerateAll(p, &moves)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Type() == Promotion {
			if promo == PtNone || m.Promotion() != promo {
				continue
			}
		} else if promo != PtNone {
			continue
		}
		return m, true
	}
	return MoveNone, false
}
