package board

// Square indexes the 10x12 mailbox. Playable squares run from A1 (21) to H8
// (98); rows are ten cells wide with sentinel columns and two sentinel rows
// above and below the board.
type Square int16

const NoSquare Square = -1

// Mailbox dimensions.
const (
	CellCount = 120
	stride    = 10
)

const (
	A1 Square = 21 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = 31 + iota
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = 41 + iota
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = 51 + iota
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = 61 + iota
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = 71 + iota
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = 81 + iota
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = 91 + iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt returns the mailbox index of a zero-based file and rank.
func SquareAt(file, rank int) Square {
	return Square(21 + file + rank*stride)
}

// File returns the zero-based file (a=0).
func (sq Square) File() int { return int(sq)%stride - 1 }

// Rank returns the zero-based rank (rank 1 = 0).
func (sq Square) Rank() int { return int(sq)/stride - 2 }

// OnBoard reports whether sq is one of the 64 playable squares.
func (sq Square) OnBoard() bool {
	if sq < A1 || sq > H8 {
		return false
	}
	f := sq.File()
	return f >= 0 && f < 8
}

// Mirror flips the square vertically (a1 <-> a8).
func (sq Square) Mirror() Square { return SquareAt(sq.File(), 7-sq.Rank()) }

func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts coordinates like "e4" to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return SquareAt(int(f-'a'), int(r-'1')), true
}

// forward is the pawn push direction for c.
func forward(c Color) Square { return Square(stride * int(c)) }

// Forward returns the square offset of a single pawn push for c.
func Forward(c Color) Square { return forward(c) }

func homeRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

func promotionRank(c Color) int { return homeRank(c.Other()) }

func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}
