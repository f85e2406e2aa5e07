package main

import (
	"path/filepath"
	"testing"

	"princess-engine/engine"
)

func TestShippedBookIsValid(t *testing.T) {
	if err := check(filepath.Join("..", "..", "book.dat")); err != nil {
		t.Fatalf("book.dat: %v", err)
	}
}

func TestWriteSortedRoundTrip(t *testing.T) {
	book, err := engine.LoadBookFile(filepath.Join("..", "..", "book.dat"), nil)
	if err != nil {
		t.Fatalf("LoadBookFile: %v", err)
	}
	out := filepath.Join(t.TempDir(), "sorted.dat")
	if err := writeSorted(book, out); err != nil {
		t.Fatalf("writeSorted: %v", err)
	}
	if err := check(out); err != nil {
		t.Fatalf("sorted book: %v", err)
	}
	again, err := engine.LoadBookFile(out, nil)
	if err != nil {
		t.Fatalf("LoadBookFile(sorted): %v", err)
	}
	if again.Len() != book.Len() {
		t.Fatalf("sorted book has %d lines, want %d", again.Len(), book.Len())
	}
}
