package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"princess-engine/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	Inf            int32 = 2000000
	MateValue      int32 = 100000
	StalemateScore int32 = 0
	// MateDepthBonus is added per remaining ply so that nearer mates score higher.
	MateDepthBonus int32 = PawnValue / 10
)

// Info describes one completed iteration.
type Info struct {
	Depth   int
	Score   int32
	Elapsed time.Duration
	Nodes   uint64
	Best    board.Move
}

// Result is the outcome of a search. Move is null when the side to move has
// no legal move.
type Result struct {
	Move  board.Move
	Score int32
	Depth int
	Nodes uint64
}

type rootMove struct {
	move  board.Move
	score int32
}

// Searcher holds all state of one search: the tables it learns while
// searching, the clock, and the played positions used for repetition.
// A Searcher is not safe for concurrent searches; only Stop may be called
// from another goroutine.
type Searcher struct {
	TT   *TransTable
	Reps *RepetitionStack
	// OnIteration, when set, is called after every completed depth.
	OnIteration func(Info)

	opts Options
	log  zerolog.Logger

	pos         *board.Position
	killers     KillerStruct
	history     HistoryStruct
	rootMoves   []rootMove
	timeHandler TimeHandler
	repActive   bool

	nodes      uint64
	stats      CutStatistics
	checkpoint int
	stopped    bool
	halt       atomic.Bool
}

// NewSearcher creates a searcher sharing the given table and repetition
// stack. Nil arguments get fresh ones.
func NewSearcher(tt *TransTable, reps *RepetitionStack, opts Options, log zerolog.Logger) *Searcher {
	if tt == nil {
		tt = NewTransTable(opts.HashSize)
	}
	if reps == nil {
		reps = &RepetitionStack{}
	}
	return &Searcher{TT: tt, Reps: reps, opts: opts, log: log}
}

// Stop asks a running search to return as soon as possible. A Stop issued
// before Search starts makes that search return after its first nodes. It is
// safe to call from another goroutine.
func (s *Searcher) Stop() { s.halt.Store(true) }

// ResetStop withdraws a pending Stop. Callers that launch a search on another
// goroutine call it before launching, so a Stop sent in between is kept.
func (s *Searcher) ResetStop() { s.halt.Store(false) }

// Stats returns the cutoff counters of the last search.
func (s *Searcher) Stats() CutStatistics { return s.stats }

// Search picks a move for pos within budget. A budget of zero or less
// searches until Options.MaxDepth or Stop. When repActive is set, reaching a
// position held in the repetition stack scores Contempt for the mover.
// pos is used as scratch space and is restored before Search returns.
func (s *Searcher) Search(pos *board.Position, budget time.Duration, repActive bool) Result {
	s.pos = pos
	s.repActive = repActive
	s.killers.ClearKillers()
	s.history.Clear()
	s.nodes = 0
	s.stats = CutStatistics{}
	s.checkpoint = s.opts.NodeCheckInterval
	s.stopped = false
	s.timeHandler.Start(budget)

	side := pos.SideToMove()
	s.seedRootMoves()
	// A stop is consumed by the search it ends.
	defer s.halt.Store(false)
	if len(s.rootMoves) == 0 {
		score := StalemateScore
		if pos.InCheck(side) {
			score = -MateValue
		}
		return Result{Score: score}
	}

	result := Result{Move: s.rootMoves[0].move, Score: s.rootMoves[0].score}
	alpha, beta := -Inf, Inf
	for depth := 2; depth <= MaxKillers && (s.opts.MaxDepth == 0 || depth <= s.opts.MaxDepth); depth++ {
		score := s.searchRoot(int8(depth), alpha, beta)
		if !s.stopped && (score <= alpha || score >= beta) && (alpha > -Inf || beta < Inf) {
			s.log.Debug().Int("depth", depth).Int32("score", score).
				Int32("alpha", alpha).Int32("beta", beta).Msg("aspiration-research")
			s.stats.Researches++
			alpha, beta = -Inf, Inf
			score = s.searchRoot(int8(depth), alpha, beta)
		}
		if s.stopped {
			s.log.Debug().Int("depth", depth).Msg("search-interrupted")
			break
		}

		sort.SliceStable(s.rootMoves, func(i, j int) bool {
			return s.rootMoves[i].score > s.rootMoves[j].score
		})
		result = Result{Move: s.rootMoves[0].move, Score: score, Depth: depth, Nodes: s.nodes}

		info := Info{Depth: depth, Score: score, Elapsed: s.timeHandler.Elapsed(), Nodes: s.nodes, Best: result.Move}
		s.log.Info().Int("depth", depth).Int32("score", score).Dur("elapsed", info.Elapsed).
			Uint64("nodes", s.nodes).Str("best", result.Move.UCI()).Msg("iteration-complete")
		if s.OnIteration != nil {
			s.OnIteration(info)
		}

		if IsMateScore(score) {
			break
		}
		if s.timeHandler.SoftStop() {
			break
		}
		alpha = Clamp(score-s.opts.AspirationWindow, -Inf, Inf)
		beta = Clamp(score+s.opts.AspirationWindow, -Inf, Inf)
	}
	result.Nodes = s.nodes
	s.stats.Nodes = s.nodes
	s.stats.log(s.log)
	return result
}

// seedRootMoves collects the legal root moves, ordered by the static
// evaluation after each of them.
func (s *Searcher) seedRootMoves() {
	pos := s.pos
	legal := pos.LegalMoves()
	s.rootMoves = s.rootMoves[:0]
	for _, m := range legal {
		pos.MakeMove(m)
		score := -int32(pos.SideToMove()) * Evaluate(pos)
		pos.UndoMove(m)
		s.rootMoves = append(s.rootMoves, rootMove{move: m, score: score})
	}
	sort.SliceStable(s.rootMoves, func(i, j int) bool {
		return s.rootMoves[i].score > s.rootMoves[j].score
	})
}

// searchRoot runs one iteration over the root moves. Every move that raises
// alpha records its score; the others stay at -Inf.
func (s *Searcher) searchRoot(depth int8, alpha, beta int32) int32 {
	for i := range s.rootMoves {
		s.rootMoves[i].score = -Inf
	}
	for i := range s.rootMoves {
		score := s.searchChild(s.rootMoves[i].move, alpha, beta, depth, 0)
		if s.stopped {
			return alpha
		}
		if score >= beta {
			s.rootMoves[i].score = beta
			return beta
		}
		if score > alpha {
			alpha = score
			s.rootMoves[i].score = score
		}
	}
	return alpha
}

// searchChild plays m, scores the resulting position for the mover and takes
// m back.
func (s *Searcher) searchChild(m board.Move, alpha, beta int32, depth int8, ply int) int32 {
	pos := s.pos
	pos.MakeMove(m)
	var score int32
	key := pos.Hash()
	if s.repActive && s.Reps.Contains(key) {
		s.stats.RepetitionHits++
		score = s.opts.Contempt
	} else {
		s.Reps.Push(key)
		score = -s.alphabeta(-beta, -alpha, depth-1, ply+1)
		s.Reps.Pop()
	}
	pos.UndoMove(m)
	return score
}

// poll counts a node and checks the clock every NodeCheckInterval nodes.
// Once it reports true, every frame unwinds with a score of 0.
func (s *Searcher) poll() bool {
	if s.stopped {
		return true
	}
	s.nodes++
	s.checkpoint--
	if s.checkpoint <= 0 {
		s.checkpoint = s.opts.NodeCheckInterval
		if s.halt.Load() || s.timeHandler.TimeStatus() {
			s.stopped = true
		}
	}
	return s.stopped
}

func (s *Searcher) alphabeta(alpha, beta int32, depth int8, ply int) int32 {
	if s.poll() {
		return 0
	}
	if depth <= 0 {
		return s.quiescence(alpha, beta, ply)
	}

	pos := s.pos
	hash := pos.Hash()

	// Moves known before generation: the table move, then the killers of
	// this ply. They are verified against the position because they were
	// found elsewhere.
	var early [3]board.Move
	n := 0
	if entry, ok := s.TT.Probe(hash); ok && pos.MoveExists(entry.Move) {
		if entry.Depth >= depth {
			s.stats.TTCutoffs++
			return entry.Score
		}
		early[n] = entry.Move
		n++
	}
	for _, k := range s.killers.At(ply) {
		if k.IsNull() || (n > 0 && k == early[0]) || (n > 1 && k == early[1]) {
			continue
		}
		if pos.MoveExists(k) {
			early[n] = k
			n++
		}
	}

	var hashMove board.Move
	legal := 0
	for _, m := range early[:n] {
		legal++
		score := s.searchChild(m, alpha, beta, depth, ply)
		if s.stopped {
			return 0
		}
		if score >= beta {
			s.storeCutoff(m, ply)
			s.stats.EarlyCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
			hashMove = m
		}
	}

	moves := s.scoreMovesList(pos.GenerateMoves(), ply, early[:n])
	for i := range moves.moves {
		orderNextMove(i, &moves)
		m := moves.moves[i].move
		if !pos.IsLegal(m) {
			continue
		}
		legal++
		score := s.searchChild(m, alpha, beta, depth, ply)
		if s.stopped {
			return 0
		}
		if score >= beta {
			s.storeCutoff(m, ply)
			s.stats.BetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
			hashMove = m
		}
	}

	if legal == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return -(MateValue + int32(depth)*MateDepthBonus)
		}
		return StalemateScore
	}
	if !hashMove.IsNull() {
		s.TT.Store(hash, hashMove, depth, alpha)
	}
	return alpha
}

func (s *Searcher) storeCutoff(m board.Move, ply int) {
	s.killers.InsertKiller(m, ply)
	s.history.Record(m)
}

// quiescence resolves captures until the position is quiet. The side to move
// may always stand pat. Captures are ordered by their own score only; the
// table, killers and history are left alone.
func (s *Searcher) quiescence(alpha, beta int32, ply int) int32 {
	if s.poll() {
		return 0
	}
	pos := s.pos
	standPat := int32(pos.SideToMove()) * Evaluate(pos)
	if standPat >= beta {
		s.stats.QStandPatCutoffs++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := s.scoreMovesListCaptures(pos.GenerateCaptures())
	for i := range moves.moves {
		orderNextMove(i, &moves)
		m := moves.moves[i].move
		if !pos.IsLegal(m) {
			continue
		}
		pos.MakeMove(m)
		score := -s.quiescence(-beta, -alpha, ply+1)
		pos.UndoMove(m)
		if s.stopped {
			return 0
		}
		if score >= beta {
			s.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
