package position

import (
	"github.com/tidewaterlabs/gambit/internal/attacks"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// AttacksTo returns the bitboard of attackerColor's pieces that
// attack sq in the current position.
func (p *Position) AttacksTo(sq Square, attackerColor Color) Bitboard {
	occ := p.AllPieces
	var result Bitboard
	result |= attacks.PawnAttacks(attackerColor.Flip(), sq) & p.Pieces[attackerColor][Pawn]
	result |= attacks.KnightAttacks(sq) & p.Pieces[attackerColor][Knight]
	result |= attacks.KingAttacks(sq) & p.Pieces[attackerColor][King]
	bishopsQueens := p.Pieces[attackerColor][Bishop] | p.Pieces[attackerColor][Queen]
	result |= attacks.BishopAttacks(sq, occ) & bishopsQueens
	rooksQueens := p.Pieces[attackerColor][Rook] | p.Pieces[attackerColor][Queen]
	result |= attacks.RookAttacks(sq, occ) & rooksQueens
	return result
}
