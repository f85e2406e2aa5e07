package board

var (
	knightOffsets   = [8]Square{-21, -19, -12, -8, 8, 12, 19, 21}
	kingOffsets     = [8]Square{-11, -10, -9, -1, 1, 9, 10, 11}
	diagonalOffsets = [4]Square{-11, -9, 9, 11}
	straightOffsets = [4]Square{-10, -1, 1, 10}
)

// IsAttacked reports whether any piece of side by attacks sq. Rays stop at
// the first non-empty cell, so the border sentinels end them without bounds checks.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	bishop, rook, queen := Bishop.Of(by), Rook.Of(by), Queen.Of(by)
	for _, d := range diagonalOffsets {
		t := sq + d
		for p.cells[t] == Empty {
			t += d
		}
		if pc := p.cells[t]; pc == bishop || pc == queen {
			return true
		}
	}
	for _, d := range straightOffsets {
		t := sq + d
		for p.cells[t] == Empty {
			t += d
		}
		if pc := p.cells[t]; pc == rook || pc == queen {
			return true
		}
	}

	knight := Knight.Of(by)
	for _, o := range knightOffsets {
		if p.cells[sq+o] == knight {
			return true
		}
	}
	king := King.Of(by)
	for _, o := range kingOffsets {
		if p.cells[sq+o] == king {
			return true
		}
	}

	// A pawn of by attacks sq from one rank behind it, one file to either side.
	pawn := Pawn.Of(by)
	behind := sq - forward(by)
	return p.cells[behind-1] == pawn || p.cells[behind+1] == pawn
}
