package engine

import (
	"time"
)

// MoveBudget splits the remaining clock evenly over the moves left in the
// current time control, after holding back TimeSafety. Early moves get
// ExtraTime on top.
func MoveBudget(remaining time.Duration, movesPlayed int, opts Options) time.Duration {
	movesLeft := opts.TimeControlMoves - movesPlayed%opts.TimeControlMoves
	budget := (remaining - opts.TimeSafety) / time.Duration(movesLeft)
	if movesPlayed <= opts.MidgameMoves {
		budget += time.Duration(float64(budget) * opts.ExtraTime)
	}
	return Max(budget, opts.MinMoveTime)
}

type TimeHandler struct {
	budget    time.Duration
	started   time.Time
	deadline  time.Time
	unlimited bool
}

// Start arms the handler for a search of the given budget. A budget of zero
// or less never times out; depth limits end such searches.
func (th *TimeHandler) Start(budget time.Duration) {
	th.budget = budget
	th.started = time.Now()
	th.deadline = th.started.Add(budget)
	th.unlimited = budget <= 0
}

// Elapsed returns the time since Start.
func (th *TimeHandler) Elapsed() time.Duration {
	return time.Since(th.started)
}

// TimeStatus reports whether the budget is spent.
func (th *TimeHandler) TimeStatus() bool {
	return !th.unlimited && !time.Now().Before(th.deadline)
}

// SoftStop reports whether a third of the budget is gone, at which point a
// new iteration is unlikely to finish.
func (th *TimeHandler) SoftStop() bool {
	return !th.unlimited && th.Elapsed() >= th.budget/3
}
