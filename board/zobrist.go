package board

import "math/rand"

// Zobrist keys indexed by piece+6 so black pieces land below the empty slot.
// The empty slot stays zero, which lets captures of "nothing" hash as a no-op.
var pieceKeys [2*King + 1][CellCount]uint64

// sideKey is folded in when black is to move.
var sideKey uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so keys are reproducible between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for pc := range pieceKeys {
		if Piece(pc) == King {
			continue
		}
		for sq := A1; sq <= H8; sq++ {
			pieceKeys[pc][sq] = rnd.Uint64()
		}
	}
	sideKey = rnd.Uint64()
}

func pieceKey(pc Piece, sq Square) uint64 { return pieceKeys[pc+King][sq] }

// ComputeHash derives the key from scratch: every occupied cell plus the side to move.
func (p *Position) ComputeHash() uint64 {
	var key uint64
	for sq := A1; sq <= H8; sq++ {
		if pc := p.cells[sq]; pc.IsPiece() {
			key ^= pieceKey(pc, sq)
		}
	}
	if p.side == Black {
		key ^= sideKey
	}
	return key
}
