package engine

import "princess-engine/board"

// Material values in centipawns. Kings carry no material value.
const (
	PawnValue   int32 = 100
	KnightValue int32 = 300
	BishopValue int32 = 300
	RookValue   int32 = 500
	QueenValue  int32 = 950
)

var pieceValue = [board.King + 1]int32{
	board.Pawn:   PawnValue,
	board.Knight: KnightValue,
	board.Bishop: BishopValue,
	board.Rook:   RookValue,
	board.Queen:  QueenValue,
}

// Piece-square tables are written from white's point of view with rank 8 on
// the first row, so they read like a diagram. pstIndex maps a square onto them.
type pieceSquareTable [64]int32

var pawnTableMG = pieceSquareTable{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// Endgame pawn values reward advancement; this is the passed pawn bonus that
// gets halved when the pawn is contested.
var pawnTableEG = pieceSquareTable{
	0, 0, 0, 0, 0, 0, 0, 0,
	80, 80, 80, 80, 80, 80, 80, 80,
	50, 50, 50, 50, 50, 50, 50, 50,
	30, 30, 30, 30, 30, 30, 30, 30,
	15, 15, 15, 15, 15, 15, 15, 15,
	5, 5, 5, 5, 5, 5, 5, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTableMG = pieceSquareTable{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var knightTableEG = pieceSquareTable{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTableMG = pieceSquareTable{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var bishopTableEG = pieceSquareTable{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 0, 10, 15, 15, 10, 0, -10,
	-10, 0, 10, 15, 15, 10, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTableMG = pieceSquareTable{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var rookTableEG = pieceSquareTable{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, 5, 5, 5, 5, 5,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTableMG = pieceSquareTable{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var queenTableEG = pieceSquareTable{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 5, 10, 10, 10, 10, 5, -10,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-10, 5, 10, 10, 10, 10, 5, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTableMG = pieceSquareTable{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingTableEG = pieceSquareTable{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var middlegameTables = [board.King + 1]*pieceSquareTable{
	board.Pawn:   &pawnTableMG,
	board.Knight: &knightTableMG,
	board.Bishop: &bishopTableMG,
	board.Rook:   &rookTableMG,
	board.Queen:  &queenTableMG,
	board.King:   &kingTableMG,
}

var endgameTables = [board.King + 1]*pieceSquareTable{
	board.Pawn:   &pawnTableEG,
	board.Knight: &knightTableEG,
	board.Bishop: &bishopTableEG,
	board.Rook:   &rookTableEG,
	board.Queen:  &queenTableEG,
	board.King:   &kingTableEG,
}

// pstIndex maps sq onto the diagram layout for side c; black reads the
// tables upside down.
func pstIndex(sq board.Square, c board.Color) int {
	rank := sq.Rank()
	if c == board.White {
		rank = 7 - rank
	}
	return rank*8 + sq.File()
}

// Positional penalties and bonuses.
const (
	rookOpenFileBonus     int32 = 20
	rookSemiOpenFileBonus int32 = 15
	weakPawnPenalty       int32 = 15
	isolatedPawnPenalty   int32 = 20
	doubledPawnPenalty    int32 = 25
	bishopPairBonus       int32 = 50
)

// trap describes a piece stuck on a square behind pawns, from white's side.
// Black uses the same patterns mirrored.
type trap struct {
	piece    board.Piece
	square   board.Square
	blockers []board.Square
	// ownPawns selects the trapped side's pawns as blockers instead of the enemy's.
	ownPawns bool
	// anyBlocker needs only one blocker instead of all of them.
	anyBlocker bool
	penalty    int32
}

var traps = []trap{
	{piece: board.Knight, square: board.A7, blockers: []board.Square{board.B7, board.C6}, penalty: 100},
	{piece: board.Knight, square: board.H7, blockers: []board.Square{board.G7, board.F6}, penalty: 100},
	{piece: board.Knight, square: board.A8, blockers: []board.Square{board.A7, board.C7}, anyBlocker: true, penalty: 50},
	{piece: board.Knight, square: board.H8, blockers: []board.Square{board.H7, board.F7}, anyBlocker: true, penalty: 50},

	{piece: board.Bishop, square: board.A7, blockers: []board.Square{board.B6}, penalty: 100},
	{piece: board.Bishop, square: board.B8, blockers: []board.Square{board.C7}, penalty: 100},
	{piece: board.Bishop, square: board.H7, blockers: []board.Square{board.G6}, penalty: 100},
	{piece: board.Bishop, square: board.G8, blockers: []board.Square{board.F7}, penalty: 100},
	{piece: board.Bishop, square: board.A6, blockers: []board.Square{board.B5}, penalty: 100},
	{piece: board.Bishop, square: board.H6, blockers: []board.Square{board.G5}, penalty: 100},
	{piece: board.Bishop, square: board.C1, blockers: []board.Square{board.B2, board.D2}, ownPawns: true, penalty: 50},
	{piece: board.Bishop, square: board.F1, blockers: []board.Square{board.E2, board.G2}, ownPawns: true, penalty: 50},
}

// Rooks shut in by their own uncastled king.
const boxedRookPenalty int32 = 50
