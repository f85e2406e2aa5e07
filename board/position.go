package board

// CastleRights is the per-side castling bit set. Rights are only ever
// removed during play.
type CastleRights uint8

const (
	CanCastleKingside CastleRights = 1 << iota
	CanCastleQueenside

	NoCastling  CastleRights = 0
	BothCastles              = CanCastleKingside | CanCastleQueenside
)

// historyHint is the initial capacity of the rights snapshot stack; it
// grows past it as needed.
const historyHint = 256

// rights is the irreversible state saved before every move.
type rights struct {
	enPassant Square
	castle    [2]CastleRights
}

// Position is the mailbox board plus everything needed to make and undo moves.
type Position struct {
	cells [CellCount]Piece
	side  Color

	kings     [2]Square
	enPassant Square
	castle    [2]CastleRights

	// counts[side][kind] for every kind, pawns and kings included.
	counts [2][King + 1]int

	hash uint64

	// history holds one snapshot per move made and not yet undone.
	history []rights
}

func emptyPosition() *Position {
	p := &Position{side: White, enPassant: NoSquare}
	for i := range p.cells {
		p.cells[i] = OffBoard
	}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			p.cells[SquareAt(f, r)] = Empty
		}
	}
	p.kings = [2]Square{NoSquare, NoSquare}
	return p
}

var backRank = [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition returns the standard starting position, white to move.
func NewPosition() *Position {
	p := emptyPosition()
	for f := 0; f < 8; f++ {
		p.put(SquareAt(f, 0), backRank[f].Of(White))
		p.put(SquareAt(f, 1), Pawn.Of(White))
		p.put(SquareAt(f, 6), Pawn.Of(Black))
		p.put(SquareAt(f, 7), backRank[f].Of(Black))
	}
	p.castle = [2]CastleRights{BothCastles, BothCastles}
	p.hash = p.ComputeHash()
	return p
}

// put places a piece on an empty square while building a position.
func (p *Position) put(sq Square, pc Piece) {
	p.cells[sq] = pc
	p.counts[pc.Color().Index()][pc.Kind()]++
	if pc.Kind() == King {
		p.kings[pc.Color().Index()] = sq
	}
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append(make([]rights, 0, max(cap(p.history), historyHint)), p.history...)
	return &c
}

// At returns the content of a mailbox cell.
func (p *Position) At(sq Square) Piece { return p.cells[sq] }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.side }

// SetSideToMove hands the move to c, keeping the hash in sync.
func (p *Position) SetSideToMove(c Color) {
	if p.side == c {
		return
	}
	p.side = c
	p.hash ^= sideKey
}

// Hash returns the incrementally maintained zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// EnPassantSquare returns the square a pawn may capture onto en passant, or NoSquare.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// CastleRights returns the remaining castling rights of c.
func (p *Position) CastleRights(c Color) CastleRights { return p.castle[c.Index()] }

// KingSquare returns where the king of c stands.
func (p *Position) KingSquare(c Color) Square { return p.kings[c.Index()] }

// Count returns how many of the given signed piece are on the board.
func (p *Position) Count(pc Piece) int { return p.counts[pc.Color().Index()][pc.Kind()] }

// Ply returns the number of moves made since the position was set up.
func (p *Position) Ply() int { return len(p.history) }

// InCheck reports whether the king of c is attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.kings[c.Index()], c.Other())
}

// Phase sums knights and bishops as 1, rooks as 2 and queens as 4 over both sides.
func (p *Position) Phase() int {
	phase := 0
	for i := 0; i < 2; i++ {
		phase += p.counts[i][Knight] + p.counts[i][Bishop] + 2*p.counts[i][Rook] + 4*p.counts[i][Queen]
	}
	return phase
}

// EndgamePhase is the phase at or below which a position counts as an endgame.
const EndgamePhase = 8

// IsEndgame reports whether little enough material is left to switch to
// endgame evaluation.
func (p *Position) IsEndgame() bool { return p.Phase() <= EndgamePhase }

// PiecesOf appends the squares holding pc to dst.
func (p *Position) PiecesOf(pc Piece, dst []Square) []Square {
	for sq := A1; sq <= H8; sq++ {
		if p.cells[sq] == pc {
			dst = append(dst, sq)
		}
	}
	return dst
}

// String draws the board from white's side, rank 8 first.
func (p *Position) String() string {
	buf := make([]byte, 0, 90)
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			pc := p.cells[SquareAt(f, r)]
			if pc == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, pc.FENChar())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
