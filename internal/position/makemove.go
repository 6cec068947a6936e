package position

import (
	. "github.com/tidewaterlabs/gambit/internal/types"
)

// MakeMove applies m to p in place. m must be at least pseudo-legal;
// MakeMove does not itself check legality (see IsLegalMove). There is
// no unmake: search descends by cloning a Position before calling
// MakeMove on the clone.
func (p *Position) MakeMove(m Move) {
	oldCastling := p.Castling
	oldEp := p.EpSquare
	p.Hash ^= castleKey[oldCastling]
	if oldEp != SqNone {
		p.Hash ^= epKey[oldEp]
	}
	p.Hash ^= sideKey

	p.EpSquare = SqNone
	p.CapturedPiece = PtNone

	us := p.SideToMove
	them := us.Flip()
	from, to, mt := m.From(), m.To(), m.Type()

	movingPt := p.pieceTypeAt(us, from)

	isCapture := false
	if p.Occupancy[them].Has(to) {
		capturedPt := p.pieceTypeAt(them, to)
		p.clear(them, capturedPt, to)
		p.Hash ^= pieceKey[them][capturedPt][to]
		p.CapturedPiece = capturedPt
		isCapture = true
	}

	if movingPt == Pawn || isCapture {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	p.clear(us, movingPt, from)
	p.Hash ^= pieceKey[us][movingPt][from]
	p.put(us, movingPt, to)
	p.Hash ^= pieceKey[us][movingPt][to]

	switch mt {
	case Promotion:
		promo := m.Promotion()
		p.clear(us, Pawn, to)
		p.Hash ^= pieceKey[us][Pawn][to]
		p.put(us, promo, to)
		p.Hash ^= pieceKey[us][promo][to]

	case EnPassant:
		capSq := to.To(them.PawnDirection())
		p.clear(them, Pawn, capSq)
		p.Hash ^= pieceKey[them][Pawn][capSq]
		p.CapturedPiece = Pawn

	case Castling:
		rank := from.RankOf()
		var rookFrom, rookTo Square
		if to.FileOf() == FileG {
			rookFrom, rookTo = SquareOf(FileH, rank), SquareOf(FileF, rank)
		} else {
			rookFrom, rookTo = SquareOf(FileA, rank), SquareOf(FileD, rank)
		}
		p.clear(us, Rook, rookFrom)
		p.Hash ^= pieceKey[us][Rook][rookFrom]
		p.put(us, Rook, rookTo)
		p.Hash ^= pieceKey[us][Rook][rookTo]
	}

	switch movingPt {
	case King:
		p.Castling = p.Castling.Remove(BothRights(us))
		p.KingSq[us] = to
	case Rook:
		p.Castling = p.Castling.Remove(castlingRightLostAt(from))
	}
	if isCapture {
		p.Castling = p.Castling.Remove(castlingRightLostAt(to))
	}

	if movingPt == Pawn && abs(int(to)-int(from)) == 16 {
		p.EpSquare = from.To(us.PawnDirection())
	}

	p.Hash ^= castleKey[p.Castling]
	if p.EpSquare != SqNone {
		p.Hash ^= epKey[p.EpSquare]
	}

	if us == Black {
		p.FullmoveNumber++
	}
	p.SideToMove = them

	p.checkInvariants()
}

// pieceTypeAt returns the type of the c-colored piece on sq. The
// caller must already know a c piece sits there (move generation and
// MakeMove only ever call this for squares they have just verified
// via the occupancy bitboards).
func (p *Position) pieceTypeAt(c Color, sq Square) PieceType {
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt].Has(sq) {
			return pt
		}
	}
	return PtNone
}

func (p *Position) clear(c Color, pt PieceType, sq Square) {
	p.Pieces[c][pt] = p.Pieces[c][pt].Clear(sq)
	p.Occupancy[c] = p.Occupancy[c].Clear(sq)
	p.AllPieces = p.AllPieces.Clear(sq)
}

// castlingRightLostAt returns the castling right forfeited when a
// rook is moved away from or captured on one of the four corners;
// CastleNone for every other square.
func castlingRightLostAt(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastleWhiteQS
	case SqH1:
		return CastleWhiteKS
	case SqA8:
		return CastleBlackQS
	case SqH8:
		return CastleBlackKS
	default:
		return CastleNone
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
