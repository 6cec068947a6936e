// Package position implements the bitboard position representation:
// piece placement, castling/en-passant/clock state, incremental
// Zobrist hashing, make-move, attack detection and legality checking.
// Search descends by cloning a Position rather than make/unmake; the
// struct is kept small and copy-cheap on purpose.
package position

import (
	"fmt"
	"strings"

	. "github.com/tidewaterlabs/gambit/internal/types"
)

// debugInvariants gates position.checkInvariants. Off by default so
// release builds pay nothing for it; flip to true locally when
// chasing a make-move bug.
const debugInvariants = false

// Position is the central board representation. Zero value is not a
// legal position; use New() or a FEN parse.
type Position struct {
	Pieces    [ColorLength][PtLength]Bitboard
	Occupancy [ColorLength]Bitboard
	AllPieces Bitboard

	KingSq [ColorLength]Square

	SideToMove Color
	Castling   CastlingRights
	EpSquare   Square

	HalfmoveClock  int
	FullmoveNumber int

	Hash Key

	// CapturedPiece is the piece captured by the last MakeMove call
	// (PtNone if the move was not a capture). It is a single-slot side
	// channel, not a per-frame stack: this engine clones a Position
	// per recursion instead of make/unmake, so only one "last move" is
	// ever in scope for a given Position value.
	CapturedPiece PieceType
}

// New returns the standard chess starting position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: startpos FEN failed to parse: %v", err))
	}
	return p
}

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Clone returns an independent copy of p. Search descends by cloning
// rather than make/unmake, so this is on the hot path; Position holds
// only value types, so a plain struct copy suffices.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece {
	for c := White; c <= Black; c++ {
		if !p.Occupancy[c].Has(sq) {
			continue
		}
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt].Has(sq) {
				return MakePiece(c, pt)
			}
		}
	}
	return PieceNone
}

// put places piece (c, pt) on sq without touching the hash. Used by
// the FEN parser, which computes the hash once at the end.
func (p *Position) put(c Color, pt PieceType, sq Square) {
	p.Pieces[c][pt] = p.Pieces[c][pt].Set(sq)
	p.Occupancy[c] = p.Occupancy[c].Set(sq)
	p.AllPieces = p.AllPieces.Set(sq)
	if pt == King {
		p.KingSq[c] = sq
	}
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.AttacksTo(p.KingSq[c], c.Flip()) != BbZero
}

// checkInvariants panics if the occupancies, the king squares or the
// incremental hash disagree with the piece bitboards. It returns at
// once unless debugInvariants is true.
func (p *Position) checkInvariants() {
	if !debugInvariants {
		return
	}
	var occW, occB Bitboard
	for pt := Pawn; pt <= King; pt++ {
		occW |= p.Pieces[White][pt]
		occB |= p.Pieces[Black][pt]
	}
	if occW != p.Occupancy[White] || occB != p.Occupancy[Black] {
		panic("position: occupancy out of sync with piece bitboards")
	}
	if p.Occupancy[White]|p.Occupancy[Black] != p.AllPieces {
		panic("position: all_pieces out of sync with occupancies")
	}
	if p.Pieces[White][King].PopCount() != 1 || p.Pieces[Black][King].PopCount() != 1 {
		panic("position: exactly one king per side required")
	}
	if p.Pieces[White][King].Lsb() != p.KingSq[White] || p.Pieces[Black][King].Lsb() != p.KingSq[Black] {
		panic("position: king_sq out of sync with king bitboard")
	}
	if computeHash(p) != p.Hash {
		panic("position: incremental hash diverged from scratch hash")
	}
}

// String renders the board as 8 ranks of 8 squares, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(SquareOf(f, r))
			sb.WriteString(pc.String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "side=%s castling=%s ep=%s halfmove=%d fullmove=%d hash=%016x\n",
		p.SideToMove, p.Castling, p.EpSquare, p.HalfmoveClock, p.FullmoveNumber, uint64(p.Hash))
	return sb.String()
}
