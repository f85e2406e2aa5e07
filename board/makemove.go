package board

// castleRookSquares returns where the rook starts and ends for a castle by side.
func castleRookSquares(side Color, kind MoveKind) (from, to Square) {
	home := SquareAt(4, homeRank(side))
	if kind == CastleKingside {
		return home + 3, home + 1
	}
	return home - 4, home - 1
}

// MakeMove plays m, which must be pseudo-legal for the side to move. The
// prior en passant and castling state is pushed so UndoMove can restore it.
func (p *Position) MakeMove(m Move) {
	if p.history == nil {
		p.history = make([]rights, 0, historyHint)
	}
	p.history = append(p.history, rights{enPassant: p.enPassant, castle: p.castle})

	side := p.side
	si := side.Index()
	p.enPassant = NoSquare

	switch m.Kind {
	case Ordinary:
		p.cells[m.From] = Empty
		p.cells[m.To] = m.Piece
		if m.Captured != Empty {
			p.counts[m.Captured.Color().Index()][m.Captured.Kind()]--
		}
		switch m.Piece.Kind() {
		case King:
			p.kings[si] = m.To
		case Pawn:
			if d := m.To - m.From; d == 2*stride || d == -2*stride {
				p.enPassant = m.From + forward(side)
			}
		}
		p.hash ^= pieceKey(m.Piece, m.From) ^ pieceKey(m.Captured, m.To) ^ pieceKey(m.Piece, m.To) ^ sideKey

	case CastleKingside, CastleQueenside:
		rookFrom, rookTo := castleRookSquares(side, m.Kind)
		p.cells[m.From] = Empty
		p.cells[m.To] = m.Piece
		p.cells[rookTo] = p.cells[rookFrom]
		p.cells[rookFrom] = Empty
		p.kings[si] = m.To

	case EnPassant:
		p.cells[m.From] = Empty
		p.cells[m.To] = m.Piece
		p.cells[m.To-forward(side)] = Empty
		p.counts[1-si][Pawn]--

	default:
		promoted := m.Kind.PromotionPiece().Of(side)
		p.cells[m.From] = Empty
		p.cells[m.To] = promoted
		if m.Captured != Empty {
			p.counts[1-si][m.Captured.Kind()]--
		}
		p.counts[si][Pawn]--
		p.counts[si][promoted.Kind()]++
	}

	p.revokeCastleRights()
	p.side = side.Other()
	if m.Kind != Ordinary {
		p.hash = p.ComputeHash()
	}
}

// UndoMove takes back m, which must be the last move made.
func (p *Position) UndoMove(m Move) {
	side := p.side.Other()
	si := side.Index()
	p.side = side

	r := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.enPassant = r.enPassant
	p.castle = r.castle

	switch m.Kind {
	case Ordinary:
		p.cells[m.From] = m.Piece
		p.cells[m.To] = m.Captured
		if m.Captured != Empty {
			p.counts[m.Captured.Color().Index()][m.Captured.Kind()]++
		}
		if m.Piece.Kind() == King {
			p.kings[si] = m.From
		}
		p.hash ^= pieceKey(m.Piece, m.From) ^ pieceKey(m.Captured, m.To) ^ pieceKey(m.Piece, m.To) ^ sideKey

	case CastleKingside, CastleQueenside:
		rookFrom, rookTo := castleRookSquares(side, m.Kind)
		p.cells[rookFrom] = p.cells[rookTo]
		p.cells[rookTo] = Empty
		p.cells[m.To] = Empty
		p.cells[m.From] = m.Piece
		p.kings[si] = m.From

	case EnPassant:
		p.cells[m.To] = Empty
		p.cells[m.From] = m.Piece
		p.cells[m.To-forward(side)] = m.Captured
		p.counts[1-si][Pawn]++

	default:
		promoted := m.Kind.PromotionPiece()
		p.cells[m.To] = m.Captured
		p.cells[m.From] = m.Piece
		if m.Captured != Empty {
			p.counts[1-si][m.Captured.Kind()]++
		}
		p.counts[si][Pawn]++
		p.counts[si][promoted]--
	}

	if m.Kind != Ordinary {
		p.hash = p.ComputeHash()
	}
}

// revokeCastleRights clears every right whose king or rook has left its home
// square, whether it moved or was captured there.
func (p *Position) revokeCastleRights() {
	for _, side := range [2]Color{White, Black} {
		si := side.Index()
		if p.castle[si] == NoCastling {
			continue
		}
		home := SquareAt(4, homeRank(side))
		if p.cells[home] != King.Of(side) {
			p.castle[si] = NoCastling
			continue
		}
		rook := Rook.Of(side)
		if p.cells[home+3] != rook {
			p.castle[si] &^= CanCastleKingside
		}
		if p.cells[home-4] != rook {
			p.castle[si] &^= CanCastleQueenside
		}
	}
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range p.GenerateMoves() {
		if !p.IsLegal(m) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		p.MakeMove(m)
		nodes += p.Perft(depth - 1)
		p.UndoMove(m)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by its
// coordinate form.
func (p *Position) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth < 1 {
		return out
	}
	for _, m := range p.LegalMoves() {
		p.MakeMove(m)
		out[m.UCI()] = p.Perft(depth - 1)
		p.UndoMove(m)
	}
	return out
}
