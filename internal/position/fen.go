package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/tidewaterlabs/gambit/internal/types"
)

// FromFEN parses a standard 6-field FEN string into a new Position.
// The last two fields (halfmove clock, fullmove number) are optional
// and default to 0 and 1 when absent.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	p := &Position{EpSquare: SqNone}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			if f > FileH {
				return nil, fmt.Errorf("position: fen %q: rank %s overflows files", fen, r)
			}
			c, pt, err := pieceFromChar(ch)
			if err != nil {
				return nil, fmt.Errorf("position: fen %q: %w", fen, err)
			}
			p.put(c, pt, SquareOf(f, r))
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("position: fen %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.Castling |= CastleWhiteKS
			case 'Q':
				p.Castling |= CastleWhiteQS
			case 'k':
				p.Castling |= CastleBlackKS
			case 'q':
				p.Castling |= CastleBlackQS
			default:
				return nil, fmt.Errorf("position: fen %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, fmt.Errorf("position: fen %q: bad en-passant square %q", fen, fields[3])
		}
		p.EpSquare = sq
	}

	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.HalfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			p.FullmoveNumber = n
		}
	}

	p.Hash = computeHash(p)
	p.checkInvariants()
	return p, nil
}

func pieceFromChar(ch rune) (Color, PieceType, error) {
	c := White
	lower := ch
	if ch >= 'a' && ch <= 'z' {
		c = Black
	} else {
		lower = ch - 'A' + 'a'
	}
	var pt PieceType
	switch lower {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return White, PtNone, fmt.Errorf("unknown piece char %q", ch)
	}
	return c, pt, nil
}

// FEN formats p as a standard 6-field FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if r != Rank1 {
			sb.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.SideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.Castling.String())
	sb.WriteString(" ")
	sb.WriteString(p.EpSquare.String())
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return sb.String()
}
