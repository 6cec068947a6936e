package attacks

import (
	. "github.com/tidewaterlabs/gambit/internal/types"
)

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard
)

var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		for _, s := range knightSteps {
			knightAttacks[sq] |= stepBb(f, r, s[0], s[1])
		}
		for _, s := range kingSteps {
			kingAttacks[sq] |= stepBb(f, r, s[0], s[1])
		}
		pawnAttacks[White][sq] = stepBb(f, r, -1, 1) | stepBb(f, r, 1, 1)
		pawnAttacks[Black][sq] = stepBb(f, r, -1, -1) | stepBb(f, r, 1, -1)
	}
}

// stepBb returns the single-square bitboard at (f+df, r+dr), or
// BbZero if that falls off the board.
func stepBb(f, r, df, dr int) Bitboard {
	nf, nr := f+df, r+dr
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return BbZero
	}
	return SquareOf(File(nf), Rank(nr)).Bb()
}

// KnightAttacks returns every square a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns every square a king on sq attacks (not
// including castling).
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks
// diagonally (never the push square).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Attacks dispatches to the right table for any non-pawn piece type.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	default:
		return SlidingAttacks(pt, sq, occupied)
	}
}
