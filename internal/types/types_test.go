package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileA, SqA8.FileOf())
	assert.Equal(t, Rank8, SqA8.RankOf())
	assert.Equal(t, FileH, SqH1.FileOf())
	assert.Equal(t, Rank1, SqH1.RankOf())
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqNone, SquareOf(FileNone, Rank4))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA8, MakeSquare("a8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("e"))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA8.To(North))
	assert.Equal(t, SqNone, SqH1.To(South))
}

func TestBitboardSetClearHas(t *testing.T) {
	var b Bitboard
	b = b.Set(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b = b.Clear(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsbMsbPopLsb(t *testing.T) {
	b := SqE4.Bb() | SqA8.Bb() | SqH1.Bb()
	assert.Equal(t, SqA8, b.Lsb())
	assert.Equal(t, SqH1, b.Msb())
	assert.Equal(t, 3, b.PopCount())

	sq := b.PopLsb()
	assert.Equal(t, SqA8, sq)
	assert.Equal(t, 2, b.PopCount())

	var empty Bitboard
	assert.Equal(t, SqNone, empty.Lsb())
	assert.Equal(t, SqNone, empty.Msb())
	assert.Equal(t, SqNone, empty.PopLsb())
}

func TestBitboardShift(t *testing.T) {
	b := SqE4.Bb()
	assert.Equal(t, SqE5.Bb(), b.Shift(North))
	assert.Equal(t, SqE3.Bb(), b.Shift(South))
	assert.Equal(t, SqF4.Bb(), b.Shift(East))
	assert.Equal(t, SqD4.Bb(), b.Shift(West))

	// shifting off the board edge discards the bit rather than wrapping
	assert.Equal(t, BbZero, SqH4.Bb().Shift(East))
	assert.Equal(t, BbZero, SqA4.Bb().Shift(West))
}

func TestMoveEncodingRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, Normal, PtNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.Type())
	assert.Equal(t, "e2e4", m.String())
	assert.True(t, m.IsValid())
}

func TestMovePromotionRoundTrip(t *testing.T) {
	m := NewMove(SqE7, SqE8, Promotion, Queen)
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, Promotion, m.Type())
	assert.Equal(t, "e7e8q", m.String())
}

func TestMoveNone(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.String())
	assert.False(t, MoveNone.IsValid())
}

func TestPieceRoundTrip(t *testing.T) {
	p := MakePiece(White, Knight)
	assert.Equal(t, Knight, p.TypeOf())
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, "N", p.String())

	p = MakePiece(Black, Pawn)
	assert.Equal(t, "p", p.String())

	assert.Equal(t, "-", PieceNone.String())
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

func TestValueMateHelpers(t *testing.T) {
	assert.True(t, MateIn(3).IsMateValue())
	assert.True(t, MatedIn(3).IsMateValue())
	assert.False(t, Value(30).IsMateValue())
	assert.Greater(t, MateIn(1), MateIn(3))
}
