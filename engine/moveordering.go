package engine

import (
	"princess-engine/board"
)

type move struct {
	move  board.Move
	score int32
}
type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]int32 = [7][7]int32{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 9},  // victim Pawn
	{0, 24, 23, 22, 21, 20, 19}, // victim Knight
	{0, 34, 33, 32, 31, 30, 29}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 39}, // victim Rook
	{0, 54, 53, 52, 51, 50, 49}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},       // victim King
}

// Move ordering offsets. The hash move and the killers are searched before
// anything is generated; the killer scores only matter when a killer could
// not be verified early. Captures sit above everything quiet, sorted by
// MVV-LVA, and quiet moves get a small per-piece base plus a history bonus.
const (
	primaryKillerOffset   int32 = 29000
	secondaryKillerOffset int32 = 28000
	captureOffset         int32 = 15000
	promotionOffset       int32 = 14000
	enPassantOffset       int32 = 13500
	shortCastleOffset     int32 = 13000
	longCastleOffset      int32 = 12900
)

// Quiet move base per moving piece kind.
var quietBase = [board.King + 1]int32{
	board.Pawn:   40,
	board.Knight: 60,
	board.Bishop: 50,
	board.Rook:   30,
	board.Queen:  20,
	board.King:   10,
}

// scoreMove rates m without knowledge of hash or killer moves.
func (s *Searcher) scoreMove(m board.Move) int32 {
	switch m.Kind {
	case board.EnPassant:
		return enPassantOffset
	case board.CastleKingside:
		return shortCastleOffset
	case board.CastleQueenside:
		return longCastleOffset
	case board.PromoteQueen:
		if m.IsCapture() {
			return captureOffset + mvvLva[m.Captured.Kind()][board.Pawn] + QueenValue
		}
		return promotionOffset
	case board.PromoteRook, board.PromoteBishop, board.PromoteKnight:
		return 0
	}
	if m.IsCapture() {
		return captureOffset + mvvLva[m.Captured.Kind()][m.Piece.Kind()]
	}
	return quietBase[m.Piece.Kind()] + s.history.Bonus(m)
}

// scoreMovesList scores moves for a full-width node, leaving out the moves in
// skip that were already searched.
func (s *Searcher) scoreMovesList(moves []board.Move, ply int, skip []board.Move) (movesList moveList) {
	killers := s.killers.At(ply)
	movesList.moves = make([]move, 0, len(moves))
outer:
	for _, m := range moves {
		for _, k := range skip {
			if m == k {
				continue outer
			}
		}
		var moveEval int32
		switch m {
		case killers[0]:
			moveEval = primaryKillerOffset
		case killers[1]:
			moveEval = secondaryKillerOffset
		default:
			moveEval = s.scoreMove(m)
		}
		movesList.moves = append(movesList.moves, move{move: m, score: moveEval})
	}
	return movesList
}

// scoreMovesListCaptures scores a capture list for quiescence.
func (s *Searcher) scoreMovesListCaptures(moves []board.Move) (movesList moveList) {
	movesList.moves = make([]move, len(moves))
	for i, m := range moves {
		movesList.moves[i] = move{move: m, score: s.scoreMove(m)}
	}
	return movesList
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}
