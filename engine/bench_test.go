package engine

import (
	"testing"

	"github.com/rs/zerolog"

	"princess-engine/board"
)

func benchSearch(b *testing.B, fen string, depth int) {
	pos, err := board.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	opts := testOptions()
	opts.MaxDepth = depth
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSearcher(nil, nil, opts, zerolog.Nop())
		s.Search(pos, 0, false)
	}
}

func BenchmarkSearch_Initial_D5(b *testing.B) {
	benchSearch(b, board.StartFEN, 5)
}

func BenchmarkSearch_Kiwipete_D4(b *testing.B) {
	benchSearch(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	pos, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(pos)
	}
}
