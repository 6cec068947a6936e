package position

import (
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// Key is a 64-bit Zobrist hash.
type Key uint64

var (
	pieceKey    [ColorLength][PtLength][SqLength]Key
	epKey       [SqLength]Key
	castleKey   [CastlingRightsLength]Key
	sideKey     Key
)

// splitMix64 seed, chosen arbitrarily and fixed so the key set is
// reproducible across runs (required for the hash-identity test
// property: the same position always hashes the same way).
const zobristSeed uint64 = 0x9E3779B97F4A7C15

func init() {
	s := zobristSeed
	next := func() uint64 {
		s += 0x9E3779B97F4A7C15
		z := s
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA8; sq < SqNone; sq++ {
				pieceKey[c][pt][sq] = Key(next())
			}
		}
	}
	for sq := SqA8; sq < SqNone; sq++ {
		epKey[sq] = Key(next())
	}
	for cr := 0; cr < CastlingRightsLength; cr++ {
		castleKey[cr] = Key(next())
	}
	sideKey = Key(next())
}

// computeHash derives a Zobrist hash from scratch, used to verify the
// incrementally maintained hash after every move (the identity
// checked by the hash round-trip test property) and to build a
// position freshly parsed from FEN.
func computeHash(p *Position) Key {
	var h Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != BbZero {
				sq := bb.PopLsb()
				h ^= pieceKey[c][pt][sq]
			}
		}
	}
	if p.EpSquare != SqNone {
		h ^= epKey[p.EpSquare]
	}
	h ^= castleKey[p.Castling]
	if p.SideToMove == Black {
		h ^= sideKey
	}
	return h
}
