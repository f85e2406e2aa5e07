package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOptions is wrapped by Options.Validate failures.
var ErrInvalidOptions = errors.New("invalid engine options")

// Options holds every tunable of the engine. DefaultOptions returns the
// values the engine plays with; commands expose most of them as flags.
type Options struct {
	// HashSize is the number of transposition table slots.
	HashSize int
	// HashClearInterval clears the table every n engine moves (0 disables).
	HashClearInterval int

	// Contempt is the score credited to the side that repeats a position.
	Contempt int32
	// RepetitionMoves is how many engine moves must be played before
	// repetitions are scored with Contempt.
	RepetitionMoves int

	// AspirationWindow is the half width of the window around the last score.
	AspirationWindow int32
	// NodeCheckInterval is how many nodes pass between clock checks.
	NodeCheckInterval int
	// MaxDepth caps iterative deepening (0 means unlimited).
	MaxDepth int

	// TimeSafety is held back from the clock before budgeting.
	TimeSafety time.Duration
	// TimeControlMoves is the number of moves per time control.
	TimeControlMoves int
	// MidgameMoves is the number of engine moves that get ExtraTime.
	MidgameMoves int
	// ExtraTime is the fractional bonus added to budgets early in the game.
	ExtraTime float64
	// MinMoveTime is the floor of any move budget.
	MinMoveTime time.Duration

	// BookPath points at the opening book; empty disables the book.
	BookPath string
	// UseBook enables the opening book at the start of each game.
	UseBook bool
	// Seed drives the book's line selection (0 picks a time based seed).
	Seed int64
}

// DefaultOptions returns the standard engine configuration.
func DefaultOptions() Options {
	return Options{
		HashSize:          2000003,
		HashClearInterval: 4,
		Contempt:          -50,
		RepetitionMoves:   20,
		AspirationWindow:  30,
		NodeCheckInterval: 5000,
		TimeSafety:        2 * time.Second,
		TimeControlMoves:  40,
		MidgameMoves:      15,
		ExtraTime:         0.25,
		MinMoveTime:       10 * time.Millisecond,
		BookPath:          "book.dat",
		UseBook:           true,
	}
}

// Validate reports the first option that cannot work.
func (o Options) Validate() error {
	switch {
	case o.HashSize < 1:
		return fmt.Errorf("%w: hash size %d", ErrInvalidOptions, o.HashSize)
	case o.HashClearInterval < 0:
		return fmt.Errorf("%w: hash clear interval %d", ErrInvalidOptions, o.HashClearInterval)
	case o.AspirationWindow < 1:
		return fmt.Errorf("%w: aspiration window %d", ErrInvalidOptions, o.AspirationWindow)
	case o.NodeCheckInterval < 1:
		return fmt.Errorf("%w: node check interval %d", ErrInvalidOptions, o.NodeCheckInterval)
	case o.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidOptions, o.MaxDepth)
	case o.TimeControlMoves < 1:
		return fmt.Errorf("%w: time control moves %d", ErrInvalidOptions, o.TimeControlMoves)
	case o.ExtraTime < 0:
		return fmt.Errorf("%w: extra time %v", ErrInvalidOptions, o.ExtraTime)
	}
	return nil
}
