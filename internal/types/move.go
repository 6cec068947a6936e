package types

import "strings"

// Move is a 16-bit packed chess move.
//
//	bit   15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//	      [ type][prom ][    from      ][     to        ]
//
// to occupies bits 0-5, from bits 6-11, promotion_piece-Knight bits
// 12-13, and move_type bits 14-15. The zero value (raw 0) is the "no
// move" sentinel: from=to=SqA8 with type Normal, which is not a move
// any piece could make.
type Move uint16

// MoveNone is the zero Move, reserved as "no move stored".
const MoveNone Move = 0

const (
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14

	squareMask   Move = 0x3F
	fromMask     Move = squareMask << fromShift
	promTypeMask Move = 0x3 << promTypeShift
	typeMask     Move = 0x3 << typeShift
)

// NewMove packs a move. promotion is ignored unless t is Promotion, in
// which case a value outside Knight..Queen is replaced by Knight.
func NewMove(from, to Square, t MoveType, promotion PieceType) Move {
	if t != Promotion || promotion < Knight || promotion > Queen {
		promotion = Knight
	}
	return Move(to) |
		Move(from)<<fromShift |
		Move(promotion-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & squareMask)
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((m & typeMask) >> typeShift)
}

// Promotion returns the promotion piece type. Only meaningful when
// Type() == Promotion.
func (m Move) Promotion() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid reports whether m decodes to valid squares, a valid move
// type, and (when relevant) a valid promotion piece. MoveNone is not
// valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.From() != m.To() &&
		m.Type().IsValid()
}

// String returns the UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Type() == Promotion {
		b.WriteString(m.Promotion().String())
	}
	return b.String()
}
