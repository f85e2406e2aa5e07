package engine

import (
	"princess-engine/board"
)

// MaxKillers is the deepest ply that keeps killer moves.
const MaxKillers = 50

// MaxHistoryBonus is the ordering bonus of the most successful quiet move.
const MaxHistoryBonus int32 = 1000

type KillerStruct struct {
	KillerMoves [MaxKillers][2]board.Move
}

// InsertKiller makes move the primary killer at ply, demoting the old primary.
func (k *KillerStruct) InsertKiller(move board.Move, ply int) {
	if ply >= MaxKillers {
		return
	}
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// At returns the killer pair for ply, or two null moves past MaxKillers.
func (k *KillerStruct) At(ply int) [2]board.Move {
	if ply >= MaxKillers {
		return [2]board.Move{}
	}
	return k.KillerMoves[ply]
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	k.KillerMoves = [MaxKillers][2]board.Move{}
}

// HistoryStruct counts beta cutoffs per from/to square pair.
type HistoryStruct struct {
	counts  [board.CellCount][board.CellCount]int32
	maxFreq int32
}

// Record credits a cutoff to the move's squares.
func (h *HistoryStruct) Record(m board.Move) {
	h.counts[m.From][m.To]++
	if f := h.counts[m.From][m.To]; f > h.maxFreq {
		h.maxFreq = f
	}
}

// Bonus maps the move's frequency linearly from [0, max frequency] onto
// [0, MaxHistoryBonus].
func (h *HistoryStruct) Bonus(m board.Move) int32 {
	if h.maxFreq == 0 {
		return 0
	}
	f := int64(h.counts[m.From][m.To])
	return int32((f*int64(MaxHistoryBonus) + int64(h.maxFreq)/2) / int64(h.maxFreq))
}

// Clear resets all counts.
func (h *HistoryStruct) Clear() {
	*h = HistoryStruct{}
}
