// Package movegen generates pseudo-legal moves from a position and
// filters them through position.IsLegalMove. Generation uses
// fixed-capacity move buffers so the hot path never allocates.
package movegen

import (
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// MaxMoves bounds the number of moves any single chess position can
// have; 218 is the established worst case.
const MaxMoves = 218

// MoveList is a fixed-capacity, non-allocating move buffer.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i-th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the stored moves as a slice backed by the list's own
// array; valid only until the list is reused.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Contains reports whether m is one of the stored moves. Used to
// validate a transposition-table move against the current position
// before trusting its score, guarding against hash collisions.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

func (l *MoveList) add(m Move) {
	l.moves[l.n] = m
	l.n++
}

func (l *MoveList) reset() {
	l.n = 0
}
