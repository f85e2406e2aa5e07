package engine

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testBook = `e4 e5 Nf3 Nc6 #w
e4   c5 Nf3

d4 d5 c4 #b
`

func mustBook(t *testing.T, text string) *Book {
	t.Helper()
	b, err := LoadBook(strings.NewReader(text), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	return b
}

func TestLoadBookSortsAndNormalizes(t *testing.T) {
	var out bytes.Buffer
	if err := mustBook(t, testBook).WriteSorted(&out); err != nil {
		t.Fatalf("WriteSorted: %v", err)
	}
	want := "d4 d5 c4 #b\ne4 c5 Nf3\ne4 e5 Nf3 Nc6 #w\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("sorted book (-want +got):\n%s", diff)
	}
}

func TestBookLookupFollowsFavorableLines(t *testing.T) {
	b := mustBook(t, testBook)
	steps := []struct {
		history []string
		want    string
		lines   int
	}{
		// Only the e4 e5 line is marked for white.
		{nil, "e4", 3},
		// Unmarked lines count as good for black.
		{[]string{"e4"}, "c5", 2},
		// Nothing is marked for white here, so any candidate will do.
		{[]string{"e4", "c5"}, "Nf3", 1},
		// The line is exhausted.
		{[]string{"e4", "c5", "Nf3"}, "", 0},
	}
	for _, st := range steps {
		if got := b.Lookup(st.history); got != st.want {
			t.Fatalf("Lookup(%v) = %q, want %q", st.history, got, st.want)
		}
		if b.Len() != st.lines {
			t.Fatalf("after Lookup(%v) book holds %d lines, want %d", st.history, b.Len(), st.lines)
		}
	}
}

func TestBookLookupMiss(t *testing.T) {
	b := mustBook(t, testBook)
	if got := b.Lookup([]string{"a3"}); got != "" {
		t.Fatalf("Lookup after a3 = %q", got)
	}
	if b.Len() != 0 {
		t.Fatalf("missed lookup kept %d lines", b.Len())
	}
}

func TestBookLookupReturnsMarker(t *testing.T) {
	b := mustBook(t, "e4 #w\n")
	if got := b.Lookup([]string{"e4"}); got != "#w" {
		t.Fatalf("Lookup = %q, want the outcome marker", got)
	}
}

func TestBookCloneIsIndependent(t *testing.T) {
	b := mustBook(t, testBook)
	c := b.Clone()
	c.Lookup([]string{"d4"})
	if b.Len() != 3 || c.Len() != 1 {
		t.Fatalf("clone narrowing leaked: original %d, clone %d", b.Len(), c.Len())
	}
}

func TestValidateBook(t *testing.T) {
	if err := ValidateBook(strings.NewReader(testBook)); err != nil {
		t.Fatalf("valid book rejected: %v", err)
	}

	err := ValidateBook(strings.NewReader("e4 e5 Nf3\ne4 e5 Ke3\n"))
	var be *BookError
	if !errors.As(err, &be) {
		t.Fatalf("got %v, want a *BookError", err)
	}
	if be.Line != 2 || be.Move != "Ke3" {
		t.Fatalf("error points at line %d move %q", be.Line, be.Move)
	}
	if !errors.Is(err, ErrBadBookLine) {
		t.Fatalf("error %v does not wrap ErrBadBookLine", err)
	}
}
