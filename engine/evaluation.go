package engine

import "princess-engine/board"

// Evaluate scores pos statically in centipawns. Positive values favor white;
// the search multiplies by the side to move.
func Evaluate(pos *board.Position) int32 {
	endgame := pos.IsEndgame()
	tables := &middlegameTables
	if endgame {
		tables = &endgameTables
	}

	var material, positional int32
	// Pawns per file, padded so neighbours of the a and h files read zero.
	var pawnFiles [2][10]int

	for sq := board.A1; sq <= board.H8; sq++ {
		pc := pos.At(sq)
		if !pc.IsPiece() {
			continue
		}
		side := pc.Color()
		sign := int32(side)
		kind := pc.Kind()

		material += sign * pieceValue[kind]
		positional += sign * tables[kind][pstIndex(sq, side)]

		switch kind {
		case board.Rook:
			positional += sign * rookFileBonus(pos, sq, side)
		case board.Pawn:
			pawnFiles[side.Index()][sq.File()+1]++
			if endgame && passedPawnContested(pos, sq, side) {
				positional -= sign * tables[board.Pawn][pstIndex(sq, side)] / 2
			}
			behind := sq - board.Forward(side)
			if pos.At(behind-1) != pc && pos.At(behind+1) != pc {
				positional -= sign * weakPawnPenalty
			}
		}
	}

	for _, side := range [2]board.Color{board.White, board.Black} {
		sign := int32(side)
		files := &pawnFiles[side.Index()]
		for f := 1; f <= 8; f++ {
			n := files[f]
			if n == 0 {
				continue
			}
			if files[f-1] == 0 && files[f+1] == 0 {
				positional -= sign * isolatedPawnPenalty
			}
			if n >= 2 {
				positional -= sign * doubledPawnPenalty * int32(n-1)
			}
		}
		if pos.Count(board.Bishop.Of(side)) >= 2 {
			positional += sign * bishopPairBonus
		}
		if !endgame {
			positional -= sign * trappedPenalty(pos, side)
		}
	}

	return material + positional
}

// rookFileBonus rewards a rook alone on its file, or sharing it only with
// enemy pieces.
func rookFileBonus(pos *board.Position, sq board.Square, side board.Color) int32 {
	open := true
	for r := 0; r < 8; r++ {
		t := board.SquareAt(sq.File(), r)
		if t == sq {
			continue
		}
		switch pc := pos.At(t); {
		case pc.Belongs(side):
			return 0
		case pc != board.Empty:
			open = false
		}
	}
	if open {
		return rookOpenFileBonus
	}
	return rookSemiOpenFileBonus
}

// passedPawnContested reports whether an enemy pawn or the enemy king stands
// ahead of the pawn on its own or a neighbouring file.
func passedPawnContested(pos *board.Position, sq board.Square, side board.Color) bool {
	enemyPawn, enemyKing := board.Pawn.Of(side.Other()), board.King.Of(side.Other())
	step := board.Forward(side)
	for t := sq; t.OnBoard(); t += step {
		for _, c := range [3]board.Square{t - 1, t, t + 1} {
			if pc := pos.At(c); pc == enemyPawn || pc == enemyKing {
				return true
			}
		}
	}
	return false
}

// trappedPenalty sums the penalties of side's pieces caught in known traps.
func trappedPenalty(pos *board.Position, side board.Color) int32 {
	at := func(sq board.Square) board.Square {
		if side == board.Black {
			return sq.Mirror()
		}
		return sq
	}

	var penalty int32
	for i := range traps {
		t := &traps[i]
		if pos.At(at(t.square)) != t.piece.Of(side) {
			continue
		}
		blocker := board.Pawn.Of(side.Other())
		if t.ownPawns {
			blocker = board.Pawn.Of(side)
		}
		hits := 0
		for _, b := range t.blockers {
			if pos.At(at(b)) == blocker {
				hits++
			}
		}
		if (t.anyBlocker && hits > 0) || hits == len(t.blockers) {
			penalty += t.penalty
		}
	}

	rook, king := board.Rook.Of(side), board.King.Of(side)
	if (pos.At(at(board.G1)) == rook || pos.At(at(board.H1)) == rook) &&
		(pos.At(at(board.G1)) == king || pos.At(at(board.F1)) == king) {
		penalty += boxedRookPenalty
	}
	if (pos.At(at(board.B1)) == rook || pos.At(at(board.A1)) == rook) &&
		(pos.At(at(board.B1)) == king || pos.At(at(board.C1)) == king) {
		penalty += boxedRookPenalty
	}
	return penalty
}
