package engine

import (
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"princess-engine/board"
	"princess-engine/san"
)

// DefaultClock is the remaining time assumed until the controller sends one.
const DefaultClock = 5 * time.Minute

// Engine plays one game at a time: it tracks the position, the moves played
// so far and the clock, and answers with book or searched moves.
type Engine struct {
	// OnThinking, when set, receives every completed iteration together with
	// the best move in algebraic notation.
	OnThinking func(info Info, best string)

	opts     Options
	log      zerolog.Logger
	searcher *Searcher
	reps     RepetitionStack

	pos         *board.Position
	side        board.Color
	remaining   time.Duration
	history     []string
	movesPlayed int

	openings *Book
	book     *Book
	useBook  bool
}

// NewEngine validates opts and loads the opening book if one is configured.
// A book that cannot be read is logged and left out.
func NewEngine(opts Options, log zerolog.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{opts: opts, log: log}
	e.searcher = NewSearcher(NewTransTable(opts.HashSize), &e.reps, opts, log)
	e.searcher.OnIteration = e.onIteration
	log.Debug().Int("hash-slots", e.searcher.TT.Size()).Msg("engine-ready")

	if opts.UseBook && opts.BookPath != "" {
		var rng *rand.Rand
		if opts.Seed != 0 {
			rng = rand.New(rand.NewSource(opts.Seed))
		}
		book, err := LoadBookFile(opts.BookPath, rng)
		if err != nil {
			log.Warn().Err(err).Str("path", opts.BookPath).Msg("opening-book-unavailable")
		} else {
			log.Info().Int("lines", book.Len()).Str("path", opts.BookPath).Msg("opening-book-loaded")
			e.openings = book
		}
	}
	e.NewGame()
	return e, nil
}

// SetBook replaces the opening book used from the next NewGame on. A nil
// book disables book moves.
func (e *Engine) SetBook(b *Book) {
	e.openings = b
}

// NewGame resets the board to the initial position with the engine playing
// black.
func (e *Engine) NewGame() {
	e.reset(board.NewPosition())
	e.side = board.Black
	e.remaining = DefaultClock
	e.searcher.TT.Clear()
	e.useBook = e.openings != nil && e.opts.UseBook
	if e.useBook {
		e.book = e.openings.Clone()
	}
}

// SetPosition sets up a position from FEN. Book moves are off for the rest
// of the game since the move history is unknown.
func (e *Engine) SetPosition(fen string) error {
	pos, err := board.FromFEN(fen)
	if err != nil {
		return err
	}
	e.reset(pos)
	e.useBook = false
	return nil
}

func (e *Engine) reset(pos *board.Position) {
	e.pos = pos
	e.history = e.history[:0]
	e.movesPlayed = 0
	e.reps.Reset()
	e.reps.Push(pos.Hash())
}

// SetSideToMove sets the color the engine plays.
func (e *Engine) SetSideToMove(c board.Color) { e.side = c }

// Side returns the color the engine plays.
func (e *Engine) Side() board.Color { return e.side }

// SetTime records the engine's remaining clock.
func (e *Engine) SetTime(remaining time.Duration) { e.remaining = remaining }

// Position returns a copy of the current position.
func (e *Engine) Position() *board.Position { return e.pos.Clone() }

// History returns the moves played so far in algebraic notation.
func (e *Engine) History() []string { return append([]string(nil), e.history...) }

// MovesPlayed returns the number of moves the engine has made this game.
func (e *Engine) MovesPlayed() int { return e.movesPlayed }

// BookActive reports whether the next request consults the opening book.
func (e *Engine) BookActive() bool { return e.useBook }

// Stop interrupts a running RequestMove, which then returns the best move of
// the last completed iteration. It is safe to call from another goroutine,
// also before that goroutine has entered RequestMove.
func (e *Engine) Stop() { e.searcher.Stop() }

// ResetStop discards a Stop left over from an earlier move. Call it before
// starting RequestMove on another goroutine.
func (e *Engine) ResetStop() { e.searcher.ResetStop() }

// ReceiveMove plays the opponent's move given in algebraic notation. On error
// the position is unchanged.
func (e *Engine) ReceiveMove(text string) error {
	m, err := san.Parse(e.pos, text)
	if err != nil {
		return err
	}
	e.apply(m)
	return nil
}

// RequestMove picks, plays and returns the engine's move for the side to
// move, with a check or mate suffix. remaining updates the engine's clock;
// zero keeps the last value from SetTime. It returns "" when there is no
// legal move.
func (e *Engine) RequestMove(remaining time.Duration) string {
	if remaining > 0 {
		e.remaining = remaining
	}
	if e.useBook {
		if m, ok := e.bookMove(); ok {
			e.movesPlayed++
			return e.apply(m)
		}
	}

	if e.opts.HashClearInterval > 0 && e.movesPlayed%e.opts.HashClearInterval == 0 {
		e.searcher.TT.Clear()
	}
	budget := MoveBudget(e.remaining, e.movesPlayed, e.opts)
	repActive := e.movesPlayed >= e.opts.RepetitionMoves
	e.log.Debug().Dur("budget", budget).Int("moves-played", e.movesPlayed).
		Bool("repetition", repActive).Msg("search-start")

	res := e.searcher.Search(e.pos, budget, repActive)
	if res.Move.IsNull() {
		e.log.Info().Int32("score", res.Score).Msg("no-legal-move")
		return ""
	}
	e.log.Info().Str("move", res.Move.UCI()).Int32("score", res.Score).Int("depth", res.Depth).
		Uint64("nodes", res.Nodes).Msg("search-done")
	e.movesPlayed++
	return e.apply(res.Move)
}

// bookMove asks the book for the next move. The book is switched off once it
// has nothing to say or names a move that cannot be played.
func (e *Engine) bookMove() (board.Move, bool) {
	tok := e.book.Lookup(e.history)
	switch {
	case tok == "":
		e.log.Info().Int("ply", len(e.history)).Msg("out-of-book")
		e.useBook = false
		return board.NullMove, false
	case strings.Contains(tok, "#"):
		return board.NullMove, false
	}
	m, err := san.Parse(e.pos, tok)
	if err != nil {
		e.log.Warn().Err(err).Str("move", tok).Msg("book-move-rejected")
		e.useBook = false
		return board.NullMove, false
	}
	e.log.Debug().Str("move", tok).Int("lines", e.book.Len()).Msg("book-move")
	return m, true
}

// apply plays m and records it, returning its notation with suffix.
func (e *Engine) apply(m board.Move) string {
	text := san.WriteWithSuffix(e.pos, m)
	e.history = append(e.history, san.Write(e.pos, m))
	e.pos.MakeMove(m)
	e.reps.Push(e.pos.Hash())
	return text
}

func (e *Engine) onIteration(info Info) {
	if e.OnThinking == nil {
		return
	}
	e.OnThinking(info, san.Write(e.pos, info.Best))
}
