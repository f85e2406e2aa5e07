package board

// Piece is a signed piece code stored in a mailbox cell. The magnitude is the
// piece kind and the sign is the owner: white pieces are positive, black
// pieces negative. Empty and OffBoard belong to neither side.
type Piece int8

const (
	Empty  Piece = 0
	Pawn   Piece = 1
	Knight Piece = 2
	Bishop Piece = 3
	Rook   Piece = 4
	Queen  Piece = 5
	King   Piece = 6

	// OffBoard marks the sentinel border cells of the mailbox.
	OffBoard Piece = 7
)

// Color is the side a piece belongs to, doubling as the sign used by
// evaluation and piece codes.
type Color int8

const (
	White Color = 1
	Black Color = -1
)

// Other returns the opposing side.
func (c Color) Other() Color { return -c }

// Index maps White to 0 and Black to 1 for table lookups.
func (c Color) Index() int {
	if c == White {
		return 0
	}
	return 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Of returns the piece of the given kind owned by c.
func (p Piece) Of(c Color) Piece { return p * Piece(c) }

// Kind strips the owner, leaving Pawn..King. Empty and OffBoard map to themselves.
func (p Piece) Kind() Piece {
	if p < 0 {
		return -p
	}
	return p
}

// Color returns the owner of p. Only meaningful for real pieces.
func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

// Belongs reports whether p is a piece owned by c.
func (p Piece) Belongs(c Color) bool {
	return p != OffBoard && int8(p)*int8(c) > 0
}

// IsPiece reports whether p is a real piece of either side.
func (p Piece) IsPiece() bool { return p != Empty && p != OffBoard }

var pieceLetters = [...]byte{Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K'}

// Letter returns the upper-case letter of the piece kind ('P' for pawns).
func (p Piece) Letter() byte {
	k := p.Kind()
	if k < Pawn || k > King {
		return '?'
	}
	return pieceLetters[k]
}

// FENChar returns the FEN letter for p: upper case for white, lower case for black.
func (p Piece) FENChar() byte {
	ch := p.Letter()
	if p < 0 {
		ch += 'a' - 'A'
	}
	return ch
}

// KindFromLetter converts an upper-case piece letter to its kind, or Empty.
func KindFromLetter(ch byte) Piece {
	switch ch {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return Empty
}

func pieceFromFENChar(ch byte) Piece {
	if ch >= 'a' && ch <= 'z' {
		return KindFromLetter(ch - ('a' - 'A')).Of(Black)
	}
	return KindFromLetter(ch)
}
