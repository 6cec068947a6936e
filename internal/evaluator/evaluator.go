// Package evaluator scores a position from the side-to-move's
// perspective using material balance plus a piece-square-table bonus.
// It deliberately does not model pawn structure, king safety or
// mobility; the search's depth is expected to make up for a simple
// evaluation.
package evaluator

import (
	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// Evaluate returns p's score from p.SideToMove's point of view:
// positive means the side to move is better.
func Evaluate(p *position.Position) Value {
	white := materialAndPst(p, White) - materialAndPst(p, Black)
	if p.SideToMove == White {
		return Value(white)
	}
	return Value(-white)
}

func materialAndPst(p *position.Position, c Color) int {
	score := 0
	for pt := Pawn; pt <= King; pt++ {
		bb := p.Pieces[c][pt]
		value := int(pt.Value())
		for bb != BbZero {
			sq := bb.PopLsb()
			score += value
			score += pstValue(pt, sq, c)
		}
	}
	return score
}

// pstValue looks up the piece-square bonus for pt on sq from c's
// point of view. Tables are authored for White; Black reads the same
// table mirrored vertically (sq XOR 56 swaps rank 8 for rank 1, file
// held constant, because file occupies the low 3 bits of a square
// index and rank the next 3 under this engine's A8=0 numbering).
func pstValue(pt PieceType, sq Square, c Color) int {
	if c == Black {
		sq = Square(uint8(sq) ^ 56)
	}
	return int(pst[pt][sq])
}
