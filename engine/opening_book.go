package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

// ErrBadBookLine is wrapped by BookError.
var ErrBadBookLine = errors.New("bad opening book line")

// BookError reports a book line that does not replay as a legal game.
type BookError struct {
	Line int
	Move string
	Err  error
}

func (e *BookError) Error() string {
	return fmt.Sprintf("book line %d: move %q: %v", e.Line, e.Move, e.Err)
}

func (e *BookError) Unwrap() []error { return []error{ErrBadBookLine, e.Err} }

// outcomeMarker reports whether tok flags a line as winning for one side.
func outcomeMarker(tok string) bool { return strings.HasPrefix(tok, "#") }

// Book is a set of opening lines, one game prefix in algebraic notation per
// line. A line may end with "#w" or "#b" to mark it as favorable for that side.
// Each lookup narrows the book to the lines that match the game so far.
type Book struct {
	lines []string
	rng   *rand.Rand
}

// LoadBook reads lines from r. rng picks among candidate lines; nil uses a
// randomly seeded generator.
func LoadBook(r io.Reader, rng *rand.Rand) (*Book, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read book: %w", err)
	}
	sort.Strings(lines)
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Book{lines: lines, rng: rng}, nil
}

// LoadBookFile opens and loads the book at path.
func LoadBookFile(path string, rng *rand.Rand) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open book: %w", err)
	}
	defer f.Close()
	return LoadBook(f, rng)
}

// Clone returns a book with the same lines in play, sharing the random source.
func (b *Book) Clone() *Book {
	return &Book{lines: append([]string(nil), b.lines...), rng: b.rng}
}

// Len returns the number of lines still in play.
func (b *Book) Len() int { return len(b.lines) }

// Lookup returns the book's move after history, or "" when no line continues
// the game. The returned token can be an outcome marker, which the caller
// must not play.
func (b *Book) Lookup(history []string) string {
	prefix := ""
	if len(history) > 0 {
		prefix = strings.Join(history, " ") + " "
	}

	var candidates []string
	for _, line := range b.lines {
		if strings.HasPrefix(line, prefix) {
			candidates = append(candidates, line)
		} else if len(candidates) > 0 {
			break
		}
	}
	b.lines = candidates
	if len(candidates) == 0 {
		return ""
	}

	side := "w"
	if len(history)%2 == 1 {
		side = "b"
	}
	var favorable []string
	for _, line := range candidates {
		last := line[strings.LastIndexByte(line, ' ')+1:]
		if last == "#"+side || (side == "b" && !outcomeMarker(last)) {
			favorable = append(favorable, line)
		}
	}
	pool := candidates
	if len(favorable) > 0 {
		pool = favorable
	}

	tokens := strings.Fields(pool[b.rng.Intn(len(pool))])
	if len(history) >= len(tokens) {
		return ""
	}
	return tokens[len(history)]
}

// WriteSorted writes the lines in play, sorted, one per line.
func (b *Book) WriteSorted(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range b.lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ValidateBook replays every line of r from the initial position and returns
// the first line containing an illegal or unreadable move, as a *BookError.
func ValidateBook(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	notation := chess.AlgebraicNotation{}
	for n := 1; scanner.Scan(); n++ {
		game := chess.NewGame()
		for _, tok := range strings.Fields(scanner.Text()) {
			if outcomeMarker(tok) {
				break
			}
			m, err := notation.Decode(game.Position(), tok)
			if err != nil {
				return &BookError{Line: n, Move: tok, Err: err}
			}
			if err := game.Move(m); err != nil {
				return &BookError{Line: n, Move: tok, Err: err}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read book: %w", err)
	}
	return nil
}
