// Package attacks precomputes every attack table the move generator
// and position package need: leaper attacks for pawns, knights and
// kings, and fancy-magic sliding attacks for bishops, rooks and
// queens. Everything here is built once in init() and is read-only
// afterward, so it is safe to call concurrently from multiple search
// goroutines.
package attacks

import (
	"fmt"

	. "github.com/tidewaterlabs/gambit/internal/types"
)

// magic holds the fancy-magic lookup data for one square of one
// slider piece type.
type magic struct {
	mask    Bitboard
	number  Bitboard
	attacks []Bitboard
	shift   uint
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

var (
	rookTable   []Bitboard
	rookMagics  [SqLength]magic
	bishopTable []Bitboard
	bishopMagics [SqLength]magic
)

var rookDirs = [4]Direction{North, East, South, West}
var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}

func init() {
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(rookTable, rookMagics[:], rookDirs)
	initMagics(bishopTable, bishopMagics[:], bishopDirs)
}

// initMagics computes fancy magic numbers for every square, following
// the standard construction: find a random sparse multiplier that
// maps every relevant occupancy subset of the slider's mask to a
// collision-free index into table.
func initMagics(table []Bitboard, magics []magic, directions [4]Direction) {
	// Seeds tuned (by the chess-programming community) to find a
	// working magic quickly for each rank; indexed by rank so both
	// rook and bishop tables reuse them.
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	size := 0

	for sq := SqA8; sq < SqNone; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == SqA8 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		var b Bitboard
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrng(seeds[sq.RankOf()])
		cnt := 0
		for i := 0; i < size; {
			for m.number = 0; ; {
				m.number = Bitboard(rng.sparse())
				if ((m.number * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four directions one step at a time
// from sq until it falls off the board or hits an occupied square,
// accumulating every square visited. Only used at init time; the
// magic tables stand in for this during search.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// RookAttacks returns every square a rook on sq attacks given
// occupied, including the first blocker in each direction.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// BishopAttacks returns every square a bishop on sq attacks given
// occupied, including the first blocker in each direction.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks is the union of RookAttacks and BishopAttacks.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// SlidingAttacks dispatches to the right table for a sliding piece
// type (Bishop, Rook, Queen). Panics for non-sliding piece types,
// which callers must not route through here.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		panic(fmt.Sprintf("attacks: %v is not a sliding piece type", pt))
	}
}

// prng is a xorshift64star generator, used only to search for magic
// numbers at init time.
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a value with roughly 1/8th of its bits set, which
// converges on a working magic multiplier much faster than a
// uniformly random 64-bit value.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
