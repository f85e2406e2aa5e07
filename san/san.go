// Package san converts between board moves and standard algebraic notation.
package san

import (
	"errors"
	"fmt"
	"strings"

	"princess-engine/board"
)

// Sentinel errors wrapped by ParseError. Use errors.Is to tell them apart.
var (
	// ErrUnparseable means the text is not algebraic notation at all.
	ErrUnparseable = errors.New("unparseable move text")

	// ErrNoSuchMove means the text is well formed but no legal move matches it.
	ErrNoSuchMove = errors.New("no matching legal move")
)

// ParseError carries the offending text alongside the underlying cause.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("move %q: %v", e.Text, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a move for the side to move in pos. Check and annotation
// suffixes are ignored. Missing source coordinates are filled in from the
// first legal move that matches what was given. pos is left unchanged.
func Parse(pos *board.Position, text string) (board.Move, error) {
	fail := func(err error) (board.Move, error) {
		return board.NullMove, &ParseError{Text: text, Err: err}
	}

	s := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	switch s {
	case "O-O", "0-0":
		return parseCastle(pos, text, board.CastleKingside)
	case "O-O-O", "0-0-0":
		return parseCastle(pos, text, board.CastleQueenside)
	}

	promo := board.Empty
	if i := strings.IndexByte(s, '='); i >= 0 {
		if i != len(s)-2 {
			return fail(ErrUnparseable)
		}
		promo = board.KindFromLetter(s[i+1])
		if _, ok := board.PromotionKind(promo); !ok {
			return fail(ErrUnparseable)
		}
		s = s[:i]
	}

	if len(s) < 2 {
		return fail(ErrUnparseable)
	}
	to, ok := board.ParseSquare(s[len(s)-2:])
	if !ok {
		return fail(ErrUnparseable)
	}
	rest := s[:len(s)-2]

	kind := board.Pawn
	if rest != "" && rest[0] >= 'A' && rest[0] <= 'Z' {
		kind = board.KindFromLetter(rest[0])
		if kind == board.Empty {
			return fail(ErrUnparseable)
		}
		rest = rest[1:]
	}
	if promo != board.Empty && kind != board.Pawn {
		return fail(ErrUnparseable)
	}

	capture := false
	if strings.HasSuffix(rest, "x") {
		capture = true
		rest = rest[:len(rest)-1]
	}

	file, rank := -1, -1
	for i := 0; i < len(rest); i++ {
		switch ch := rest[i]; {
		case ch >= 'a' && ch <= 'h' && file < 0 && rank < 0:
			file = int(ch - 'a')
		case ch >= '1' && ch <= '8' && rank < 0:
			rank = int(ch - '1')
		default:
			return fail(ErrUnparseable)
		}
	}

	var squares [10]board.Square
	var moves [64]board.Move
	for _, from := range pos.PiecesOf(kind.Of(pos.SideToMove()), squares[:0]) {
		if (file >= 0 && from.File() != file) || (rank >= 0 && from.Rank() != rank) {
			continue
		}
		for _, m := range pos.MovesFrom(from, moves[:0]) {
			if m.To != to || m.Kind.IsCastle() {
				continue
			}
			if capture && !m.IsCapture() {
				continue
			}
			if m.Kind.IsPromotion() {
				// A bare pawn move onto the last rank reads as a queen promotion.
				want := promo
				if want == board.Empty {
					want = board.Queen
				}
				if m.Kind.PromotionPiece() != want {
					continue
				}
			} else if promo != board.Empty {
				continue
			}
			if pos.IsLegal(m) {
				return m, nil
			}
		}
	}
	return fail(ErrNoSuchMove)
}

func parseCastle(pos *board.Position, text string, kind board.MoveKind) (board.Move, error) {
	var moves [16]board.Move
	king := pos.KingSquare(pos.SideToMove())
	for _, m := range pos.MovesFrom(king, moves[:0]) {
		if m.Kind == kind && pos.IsLegal(m) {
			return m, nil
		}
	}
	return board.NullMove, &ParseError{Text: text, Err: ErrNoSuchMove}
}

// Write renders m, a legal move in pos, without a check suffix.
func Write(pos *board.Position, m board.Move) string {
	switch m.Kind {
	case board.CastleKingside:
		return "O-O"
	case board.CastleQueenside:
		return "O-O-O"
	}

	var sb strings.Builder
	if m.Piece.Kind() == board.Pawn {
		if m.IsCapture() {
			sb.WriteByte(fileLetter(m.From))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if p := m.Kind.PromotionPiece(); p != board.Empty {
			sb.WriteByte('=')
			sb.WriteByte(p.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(m.Piece.Letter())
	sb.WriteString(disambiguation(pos, m))
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// WriteWithSuffix renders m and appends "#" when it mates or "+" when it checks.
func WriteWithSuffix(pos *board.Position, m board.Move) string {
	s := Write(pos, m)
	pos.MakeMove(m)
	defer pos.UndoMove(m)
	opponent := pos.SideToMove()
	if !pos.InCheck(opponent) {
		return s
	}
	if pos.HasLegalMove() {
		return s + "+"
	}
	return s + "#"
}

// disambiguation returns the shortest source prefix separating m from other
// legal moves of the same piece kind to the same square: the file if that
// is enough, else the rank, else both.
func disambiguation(pos *board.Position, m board.Move) string {
	var squares [10]board.Square
	var moves [64]board.Move
	var rivals, sameFile, sameRank bool
	for _, from := range pos.PiecesOf(m.Piece, squares[:0]) {
		if from == m.From {
			continue
		}
		for _, c := range pos.MovesFrom(from, moves[:0]) {
			if c.To != m.To || !pos.IsLegal(c) {
				continue
			}
			rivals = true
			sameFile = sameFile || from.File() == m.From.File()
			sameRank = sameRank || from.Rank() == m.From.Rank()
			break
		}
	}
	switch {
	case !rivals:
		return ""
	case sameFile && sameRank:
		return m.From.String()
	case sameFile:
		return string(rankDigit(m.From))
	default:
		return string(fileLetter(m.From))
	}
}

func fileLetter(sq board.Square) byte { return 'a' + byte(sq.File()) }

func rankDigit(sq board.Square) byte { return '1' + byte(sq.Rank()) }
