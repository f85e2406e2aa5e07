package board

import (
	"errors"
	"fmt"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every FEN parsing failure.
var ErrInvalidFEN = errors.New("invalid FEN")

// FENError reports which part of a FEN string could not be read.
type FENError struct {
	FEN    string
	Reason string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.FEN, e.Reason)
}

func (e *FENError) Unwrap() error { return ErrInvalidFEN }

// FromFEN sets up a position from Forsyth-Edwards notation. The move clocks
// are optional and ignored.
func FromFEN(fen string) (*Position, error) {
	fail := func(format string, args ...any) (*Position, error) {
		return nil, &FENError{FEN: fen, Reason: fmt.Sprintf(format, args...)}
	}
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return fail("need at least placement and side to move")
	}

	p := emptyPosition()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fail("expected 8 ranks, got %d", len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc := pieceFromFENChar(ch)
			if pc == Empty {
				return fail("unknown piece %q", ch)
			}
			if file >= 8 {
				return fail("rank %d is too long", rank+1)
			}
			if pc.Kind() == King && p.kings[pc.Color().Index()] != NoSquare {
				return fail("more than one %s king", pc.Color())
			}
			p.put(SquareAt(file, rank), pc)
			file++
		}
		if file != 8 {
			return fail("rank %d has %d files", rank+1, file)
		}
	}
	if p.kings[0] == NoSquare || p.kings[1] == NoSquare {
		return fail("both kings are required")
	}

	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return fail("bad side to move %q", fields[1])
	}

	if len(fields) > 2 && fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				p.castle[0] |= CanCastleKingside
			case 'Q':
				p.castle[0] |= CanCastleQueenside
			case 'k':
				p.castle[1] |= CanCastleKingside
			case 'q':
				p.castle[1] |= CanCastleQueenside
			default:
				return fail("bad castling field %q", fields[2])
			}
		}
	}
	// Rights that the placement contradicts are dropped.
	p.revokeCastleRights()

	if len(fields) > 3 && fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return fail("bad en passant square %q", fields[3])
		}
		// The target lies behind a pawn that just moved two squares.
		epRank := 5
		if p.side == Black {
			epRank = 2
		}
		behind := sq - forward(p.side)
		if sq.Rank() != epRank || p.cells[sq] != Empty ||
			p.cells[behind] != Pawn.Of(p.side.Other()) {
			return fail("en passant square %s does not follow a double pawn push", fields[3])
		}
		p.enPassant = sq
	}

	if p.InCheck(p.side.Other()) {
		return fail("%s is in check but not to move", p.side.Other())
	}

	p.hash = p.ComputeHash()
	return p, nil
}

// FEN renders the position. Move clocks are not tracked and print as "0 1".
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.cells[SquareAt(f, r)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	if p.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castles := ""
	if p.castle[0]&CanCastleKingside != 0 {
		castles += "K"
	}
	if p.castle[0]&CanCastleQueenside != 0 {
		castles += "Q"
	}
	if p.castle[1]&CanCastleKingside != 0 {
		castles += "k"
	}
	if p.castle[1]&CanCastleQueenside != 0 {
		castles += "q"
	}
	if castles == "" {
		castles = "-"
	}
	sb.WriteString(castles)
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
