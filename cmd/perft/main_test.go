package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"princess-engine/board"
)

func TestParallelDivideMatchesSerial(t *testing.T) {
	pos, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	got, err := parallelDivide(context.Background(), pos, 2, 4)
	if err != nil {
		t.Fatalf("parallelDivide: %v", err)
	}
	if diff := cmp.Diff(pos.Divide(2), got); diff != "" {
		t.Fatalf("parallel divide (-serial +parallel):\n%s", diff)
	}
}

func TestReferenceDivideAgrees(t *testing.T) {
	pos := board.NewPosition()
	got, err := parallelDivide(context.Background(), pos, 3, 2)
	if err != nil {
		t.Fatalf("parallelDivide: %v", err)
	}
	if bad := compareDivides(got, referenceDivide(board.StartFEN, 3)); len(bad) > 0 {
		t.Fatalf("divides differ: %v", bad)
	}
}

func TestCompareDividesReportsBothSides(t *testing.T) {
	got := map[string]uint64{"e2e4": 20, "d2d4": 21}
	want := map[string]uint64{"e2e4": 20, "d2d4": 20, "g1f3": 20}
	bad := compareDivides(got, want)
	if diff := cmp.Diff([]string{"d2d4: got 21, want 20", "g1f3: got 0, want 20"}, bad); diff != "" {
		t.Fatalf("mismatch report (-want +got):\n%s", diff)
	}
}
