package board

// MoveKind distinguishes ordinary moves from the irregular ones.
type MoveKind uint8

const (
	Ordinary MoveKind = iota
	CastleKingside
	CastleQueenside
	EnPassant
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// PromotionKinds lists the promotion move kinds in generation order.
var PromotionKinds = [4]MoveKind{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// IsPromotion reports whether k promotes a pawn.
func (k MoveKind) IsPromotion() bool { return k >= PromoteQueen }

// IsCastle reports whether k is either castle.
func (k MoveKind) IsCastle() bool { return k == CastleKingside || k == CastleQueenside }

// PromotionPiece returns the colorless piece a promotion kind produces, or Empty.
func (k MoveKind) PromotionPiece() Piece {
	switch k {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	}
	return Empty
}

// PromotionKind returns the move kind that promotes to the given piece kind.
func PromotionKind(p Piece) (MoveKind, bool) {
	switch p.Kind() {
	case Queen:
		return PromoteQueen, true
	case Rook:
		return PromoteRook, true
	case Bishop:
		return PromoteBishop, true
	case Knight:
		return PromoteKnight, true
	}
	return Ordinary, false
}

// Move is a plain comparable value. Two moves are the same move exactly when
// every field matches, which lets table and killer moves be verified against
// freshly generated ones with ==.
type Move struct {
	Piece    Piece
	From     Square
	To       Square
	Captured Piece
	Kind     MoveKind
}

// NullMove is the zero Move; it never matches a generated move.
var NullMove Move

// IsNull reports whether m is the zero move.
func (m Move) IsNull() bool { return m == NullMove }

// IsCapture reports whether m removes an enemy piece, en passant included.
func (m Move) IsCapture() bool { return m.Captured != Empty }

// Side returns the side making the move.
func (m Move) Side() Color { return m.Piece.Color() }

// UCI returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if p := m.Kind.PromotionPiece(); p != Empty {
		s += string(p.Letter() + ('a' - 'A'))
	}
	return s
}

func (m Move) String() string { return m.UCI() }
