package movegen

import (
	"github.com/tidewaterlabs/gambit/internal/attacks"
	"github.com/tidewaterlabs/gambit/internal/position"
	. "github.com/tidewaterlabs/gambit/internal/types"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GenerateAll returns every legal move in p. Moves are produced
// captures-and-promotions first, then quiet moves, then castling
// (each group in piece order pawn, knight, bishop, rook, queen, king),
// purely so that simple TT-move-first / generator-order search
// ordering gets some benefit for free; correctness never depends on
// this order.
func GenerateAll(p *position.Position, out *MoveList) {
	out.reset()
	var pseudo MoveList
	addCapturesAndPromotions(p, &pseudo)
	addQuiets(p, &pseudo)
	addCastling(p, &pseudo)
	filterLegal(p, &pseudo, out)
}

// GenerateCaptures returns every legal move that is a capture, an
// en-passant capture, or a promotion (quiet or capturing) — the set
// quiescence search examines.
func GenerateCaptures(p *position.Position, out *MoveList) {
	out.reset()
	var pseudo MoveList
	addCapturesAndPromotions(p, &pseudo)
	filterLegal(p, &pseudo, out)
}

func filterLegal(p *position.Position, pseudo, out *MoveList) {
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if p.IsLegalMove(m) {
			out.add(m)
		}
	}
}

func addCapturesAndPromotions(p *position.Position, l *MoveList) {
	us, them := p.SideToMove, p.SideToMove.Flip()
	oppOcc := p.Occupancy[them]
	promoRank := us.PromotionRank()
	push := us.PawnDirection()
	empty := ^p.AllPieces

	pawns := p.Pieces[us][Pawn]
	for pawns != BbZero {
		from := pawns.PopLsb()
		captures := attacks.PawnAttacks(us, from) & oppOcc
		for captures != BbZero {
			to := captures.PopLsb()
			addPawnMoves(l, from, to, to.RankOf() == promoRank, Normal)
		}
		if p.EpSquare != SqNone && attacks.PawnAttacks(us, from).Has(p.EpSquare) {
			l.add(NewMove(from, p.EpSquare, EnPassant, Knight))
		}
		if to := from.To(push); to != SqNone && empty.Has(to) && to.RankOf() == promoRank {
			addPawnMoves(l, from, to, true, Normal)
		}
	}

	addSliderCaptures(p, l, Knight, us, oppOcc)
	addSliderCaptures(p, l, Bishop, us, oppOcc)
	addSliderCaptures(p, l, Rook, us, oppOcc)
	addSliderCaptures(p, l, Queen, us, oppOcc)
	addSliderCaptures(p, l, King, us, oppOcc)
}

// addPawnMoves emits either the four promotion moves or a single plain
// move from->to, depending on promote.
func addPawnMoves(l *MoveList, from, to Square, promote bool, t MoveType) {
	if !promote {
		l.add(NewMove(from, to, t, Knight))
		return
	}
	for _, pt := range promotionPieces {
		l.add(NewMove(from, to, Promotion, pt))
	}
}

// addSliderCaptures adds captures for any piece type using attacks.Attacks,
// which dispatches leapers and sliders alike.
func addSliderCaptures(p *position.Position, l *MoveList, pt PieceType, us Color, oppOcc Bitboard) {
	pieces := p.Pieces[us][pt]
	for pieces != BbZero {
		from := pieces.PopLsb()
		targets := attacks.Attacks(pt, from, p.AllPieces) & oppOcc
		for targets != BbZero {
			to := targets.PopLsb()
			l.add(NewMove(from, to, Normal, Knight))
		}
	}
}

func addQuiets(p *position.Position, l *MoveList) {
	us := p.SideToMove
	empty := ^p.AllPieces
	push := us.PawnDirection()
	startRank := us.PawnStartRank()
	promoRank := us.PromotionRank()

	pawns := p.Pieces[us][Pawn]
	for pawns != BbZero {
		from := pawns.PopLsb()
		one := from.To(push)
		if one == SqNone || !empty.Has(one) {
			continue
		}
		if one.RankOf() == promoRank {
			continue // promotions are generated in the captures/promotions stage
		}
		l.add(NewMove(from, one, Normal, Knight))
		if from.RankOf() == startRank {
			if two := one.To(push); two != SqNone && empty.Has(two) {
				l.add(NewMove(from, two, Normal, Knight))
			}
		}
	}

	addQuietMoves(p, l, Knight, us, empty)
	addQuietMoves(p, l, Bishop, us, empty)
	addQuietMoves(p, l, Rook, us, empty)
	addQuietMoves(p, l, Queen, us, empty)
	addQuietMoves(p, l, King, us, empty)
}

func addQuietMoves(p *position.Position, l *MoveList, pt PieceType, us Color, empty Bitboard) {
	pieces := p.Pieces[us][pt]
	for pieces != BbZero {
		from := pieces.PopLsb()
		targets := attacks.Attacks(pt, from, p.AllPieces) & empty
		for targets != BbZero {
			to := targets.PopLsb()
			l.add(NewMove(from, to, Normal, Knight))
		}
	}
}

func addCastling(p *position.Position, l *MoveList) {
	us := p.SideToMove
	them := us.Flip()
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	kingSq := p.KingSq[us]
	if p.IsInCheck(us) {
		return
	}

	if p.Castling.Has(KingSideRight(us)) {
		f, g := SquareOf(FileF, rank), SquareOf(FileG, rank)
		if !p.AllPieces.Has(f) && !p.AllPieces.Has(g) &&
			p.AttacksTo(f, them) == BbZero && p.AttacksTo(g, them) == BbZero {
			l.add(NewMove(kingSq, g, Castling, Knight))
		}
	}
	if p.Castling.Has(QueenSideRight(us)) {
		d, c, b := SquareOf(FileD, rank), SquareOf(FileC, rank), SquareOf(FileB, rank)
		if !p.AllPieces.Has(d) && !p.AllPieces.Has(c) && !p.AllPieces.Has(b) &&
			p.AttacksTo(d, them) == BbZero && p.AttacksTo(c, them) == BbZero {
			l.add(NewMove(kingSq, c, Castling, Knight))
		}
	}
}
