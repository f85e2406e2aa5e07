package engine

import (
	"princess-engine/board"
)

// TTEntry remembers the best move and score found for a position at a given
// remaining depth.
type TTEntry struct {
	Hash  uint64
	Move  board.Move
	Depth int8
	Score int32
}

// TransTable is a fixed-size table indexed by hash modulo its size. Each
// slot holds one entry; there is no chaining.
type TransTable struct {
	entries []TTEntry
	stored  uint64
}

// NewTransTable allocates a table with size slots.
func NewTransTable(size int) *TransTable {
	if size < 1 {
		size = 1
	}
	return &TransTable{entries: make([]TTEntry, size)}
}

// Size returns the number of slots.
func (TT *TransTable) Size() int { return len(TT.entries) }

// Stored returns how many stores were accepted since the last Clear.
func (TT *TransTable) Stored() uint64 { return TT.stored }

// Clear empties every slot.
func (TT *TransTable) Clear() {
	clear(TT.entries)
	TT.stored = 0
}

func (TT *TransTable) slot(hash uint64) *TTEntry {
	return &TT.entries[hash%uint64(len(TT.entries))]
}

// Probe returns the entry for hash if its slot holds that exact position.
func (TT *TransTable) Probe(hash uint64) (TTEntry, bool) {
	e := TT.slot(hash)
	if e.Move.IsNull() || e.Hash != hash {
		return TTEntry{}, false
	}
	return *e, true
}

// Store writes an entry. An empty slot or one holding another position is
// overwritten; an entry for the same position is only replaced by one
// searched at least as deep.
func (TT *TransTable) Store(hash uint64, move board.Move, depth int8, score int32) {
	e := TT.slot(hash)
	if !e.Move.IsNull() && e.Hash == hash && depth < e.Depth {
		return
	}
	*e = TTEntry{Hash: hash, Move: move, Depth: depth, Score: score}
	TT.stored++
}
