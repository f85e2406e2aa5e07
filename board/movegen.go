package board

// GenerateMoves returns every pseudo-legal move for the side to move.
func (p *Position) GenerateMoves() []Move {
	return p.AppendMoves(make([]Move, 0, 64))
}

// AppendMoves appends the pseudo-legal moves of the side to move to dst.
func (p *Position) AppendMoves(dst []Move) []Move {
	for sq := A1; sq <= H8; sq++ {
		if pc := p.cells[sq]; pc.Belongs(p.side) {
			dst = p.appendPieceMoves(dst, sq, pc, false)
		}
	}
	dst = p.appendCastles(dst)
	return p.appendEnPassant(dst, NoSquare)
}

// GenerateCaptures returns the moves quiescence looks at: captures, en
// passant and queen promotions, quiet or capturing.
func (p *Position) GenerateCaptures() []Move {
	return p.AppendCaptures(make([]Move, 0, 32))
}

// AppendCaptures appends the capture-only move set of the side to move to dst.
func (p *Position) AppendCaptures(dst []Move) []Move {
	for sq := A1; sq <= H8; sq++ {
		if pc := p.cells[sq]; pc.Belongs(p.side) {
			dst = p.appendPieceMoves(dst, sq, pc, true)
		}
	}
	return p.appendEnPassant(dst, NoSquare)
}

// MovesFrom appends the pseudo-legal moves of the piece on sq to dst,
// including castles for a king and en passant for a pawn.
func (p *Position) MovesFrom(sq Square, dst []Move) []Move {
	pc := p.cells[sq]
	if !pc.IsPiece() {
		return dst
	}
	dst = p.appendPieceMoves(dst, sq, pc, false)
	switch pc.Kind() {
	case King:
		if pc.Color() == p.side {
			dst = p.appendCastles(dst)
		}
	case Pawn:
		if pc.Color() == p.side {
			dst = p.appendEnPassant(dst, sq)
		}
	}
	return dst
}

// LegalMoves returns only the legal moves of the side to move.
func (p *Position) LegalMoves() []Move {
	return p.FilterLegal(p.GenerateMoves())
}

// FilterLegal drops illegal moves from moves in place and returns the shortened slice.
func (p *Position) FilterLegal(moves []Move) []Move {
	n := 0
	for _, m := range moves {
		if p.IsLegal(m) {
			moves[n] = m
			n++
		}
	}
	return moves[:n]
}

func (p *Position) appendPieceMoves(dst []Move, sq Square, pc Piece, capturesOnly bool) []Move {
	switch pc.Kind() {
	case Pawn:
		dst = p.appendPawnMoves(dst, sq, pc, capturesOnly)
		dst = p.appendPromotions(dst, sq, pc, capturesOnly)
	case Knight:
		dst = p.appendSteps(dst, sq, pc, knightOffsets[:], capturesOnly)
	case Bishop:
		dst = p.appendSlides(dst, sq, pc, diagonalOffsets[:], capturesOnly)
	case Rook:
		dst = p.appendSlides(dst, sq, pc, straightOffsets[:], capturesOnly)
	case Queen:
		dst = p.appendSlides(dst, sq, pc, diagonalOffsets[:], capturesOnly)
		dst = p.appendSlides(dst, sq, pc, straightOffsets[:], capturesOnly)
	case King:
		dst = p.appendSteps(dst, sq, pc, kingOffsets[:], capturesOnly)
	}
	return dst
}

// appendPawnMoves covers pushes and captures that do not reach the last rank.
func (p *Position) appendPawnMoves(dst []Move, sq Square, pc Piece, capturesOnly bool) []Move {
	side := pc.Color()
	fwd := forward(side)
	one := sq + fwd
	if one.Rank() == promotionRank(side) {
		return dst
	}
	if !capturesOnly && p.cells[one] == Empty {
		dst = append(dst, Move{Piece: pc, From: sq, To: one})
		if sq.Rank() == pawnStartRank(side) && p.cells[one+fwd] == Empty {
			dst = append(dst, Move{Piece: pc, From: sq, To: one + fwd})
		}
	}
	for _, t := range [2]Square{one - 1, one + 1} {
		if target := p.cells[t]; target.Belongs(side.Other()) {
			dst = append(dst, Move{Piece: pc, From: sq, To: t, Captured: target})
		}
	}
	return dst
}

// appendPromotions adds one move per promotion piece for every push or
// capture onto the last rank. queenOnly restricts them to queen promotions.
func (p *Position) appendPromotions(dst []Move, sq Square, pc Piece, queenOnly bool) []Move {
	side := pc.Color()
	one := sq + forward(side)
	if one.Rank() != promotionRank(side) {
		return dst
	}
	kinds := PromotionKinds[:]
	if queenOnly {
		kinds = kinds[:1]
	}
	add := func(to Square, captured Piece) {
		for _, k := range kinds {
			dst = append(dst, Move{Piece: pc, From: sq, To: to, Captured: captured, Kind: k})
		}
	}
	if p.cells[one] == Empty {
		add(one, Empty)
	}
	for _, t := range [2]Square{one - 1, one + 1} {
		if target := p.cells[t]; target.Belongs(side.Other()) {
			add(t, target)
		}
	}
	return dst
}

func (p *Position) appendSteps(dst []Move, sq Square, pc Piece, offsets []Square, capturesOnly bool) []Move {
	enemy := pc.Color().Other()
	for _, o := range offsets {
		t := sq + o
		switch target := p.cells[t]; {
		case target == Empty:
			if !capturesOnly {
				dst = append(dst, Move{Piece: pc, From: sq, To: t})
			}
		case target.Belongs(enemy):
			dst = append(dst, Move{Piece: pc, From: sq, To: t, Captured: target})
		}
	}
	return dst
}

func (p *Position) appendSlides(dst []Move, sq Square, pc Piece, offsets []Square, capturesOnly bool) []Move {
	enemy := pc.Color().Other()
	for _, d := range offsets {
		for t := sq + d; ; t += d {
			target := p.cells[t]
			if target == Empty {
				if !capturesOnly {
					dst = append(dst, Move{Piece: pc, From: sq, To: t})
				}
				continue
			}
			if target.Belongs(enemy) {
				dst = append(dst, Move{Piece: pc, From: sq, To: t, Captured: target})
			}
			break
		}
	}
	return dst
}

// appendCastles adds castles whose rights remain and whose path is empty.
// Whether the king crosses attacked squares is left to IsLegal.
func (p *Position) appendCastles(dst []Move) []Move {
	side := p.side
	r := p.castle[side.Index()]
	if r == NoCastling {
		return dst
	}
	king, rook := King.Of(side), Rook.Of(side)
	home := SquareAt(4, homeRank(side))
	if p.cells[home] != king {
		return dst
	}
	if r&CanCastleKingside != 0 && p.cells[home+1] == Empty && p.cells[home+2] == Empty &&
		p.cells[home+3] == rook {
		dst = append(dst, Move{Piece: king, From: home, To: home + 2, Kind: CastleKingside})
	}
	if r&CanCastleQueenside != 0 && p.cells[home-1] == Empty && p.cells[home-2] == Empty &&
		p.cells[home-3] == Empty && p.cells[home-4] == rook {
		dst = append(dst, Move{Piece: king, From: home, To: home - 2, Kind: CastleQueenside})
	}
	return dst
}

// appendEnPassant adds en passant captures onto the current target square.
// When only is set, only the pawn standing there is considered.
func (p *Position) appendEnPassant(dst []Move, only Square) []Move {
	ep := p.enPassant
	if ep == NoSquare {
		return dst
	}
	side := p.side
	victim := ep - forward(side)
	if p.cells[victim] != Pawn.Of(side.Other()) {
		return dst
	}
	pawn := Pawn.Of(side)
	for _, from := range [2]Square{victim - 1, victim + 1} {
		if only != NoSquare && from != only {
			continue
		}
		if p.cells[from] == pawn {
			dst = append(dst, Move{Piece: pawn, From: from, To: ep, Captured: p.cells[victim], Kind: EnPassant})
		}
	}
	return dst
}

// IsLegal reports whether the pseudo-legal move m of the side to move leaves
// its own king safe. Castles instead require that the king does not start on,
// pass over or land on an attacked square.
func (p *Position) IsLegal(m Move) bool {
	side := m.Piece.Color()
	enemy := side.Other()
	switch m.Kind {
	case CastleKingside:
		return !p.IsAttacked(m.From, enemy) && !p.IsAttacked(m.From+1, enemy) && !p.IsAttacked(m.From+2, enemy)
	case CastleQueenside:
		return !p.IsAttacked(m.From, enemy) && !p.IsAttacked(m.From-1, enemy) && !p.IsAttacked(m.From-2, enemy)
	}
	p.MakeMove(m)
	ok := !p.IsAttacked(p.kings[side.Index()], enemy)
	p.UndoMove(m)
	return ok
}

// MoveExists reports whether m is a legal move in the current position. It
// is used to vet moves remembered from other positions, such as table and
// killer moves, before they are played.
func (p *Position) MoveExists(m Move) bool {
	if m.IsNull() || !m.Piece.Belongs(p.side) {
		return false
	}
	if p.cells[m.From] != m.Piece {
		return false
	}
	if m.Kind != EnPassant && p.cells[m.To] != m.Captured {
		return false
	}
	var buf [64]Move
	for _, c := range p.MovesFrom(m.From, buf[:0]) {
		if c == m {
			return p.IsLegal(m)
		}
	}
	return false
}

// HasLegalMove reports whether the side to move can move at all.
func (p *Position) HasLegalMove() bool {
	for _, m := range p.GenerateMoves() {
		if p.IsLegal(m) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is mated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.side) && !p.HasLegalMove()
}

// IsStalemate reports whether the side to move has no move but is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.side) && !p.HasLegalMove()
}
