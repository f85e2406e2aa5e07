package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"princess-engine/board"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.HashSize = 1 << 16
	opts.UseBook = false
	opts.BookPath = ""
	return opts
}

func depthSearcher(depth int) *Searcher {
	opts := testOptions()
	opts.MaxDepth = depth
	return NewSearcher(nil, nil, opts, zerolog.Nop())
}

func TestSearchFindsFoolsMate(t *testing.T) {
	pos := mustPosition(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2")
	res := depthSearcher(4).Search(pos, 0, false)
	if got := res.Move.UCI(); got != "d8h4" {
		t.Fatalf("best move %s, want d8h4", got)
	}
	if res.Score < MateValue {
		t.Fatalf("mate scored %d, want at least %d", res.Score, MateValue)
	}
}

func TestSearchFindsBackRankMate(t *testing.T) {
	pos := mustPosition(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	res := depthSearcher(4).Search(pos, 0, false)
	if got := res.Move.UCI(); got != "a1a8" {
		t.Fatalf("best move %s, want a1a8", got)
	}
	if !IsMateScore(res.Score) || res.Score < 0 {
		t.Fatalf("score %d is not a winning mate", res.Score)
	}
}

func TestSearchMatedAndStalemated(t *testing.T) {
	mated := mustPosition(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	res := depthSearcher(3).Search(mated, 0, false)
	if !res.Move.IsNull() || res.Score != -MateValue {
		t.Fatalf("mated side got move %s score %d", res.Move, res.Score)
	}

	stalemate := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res = depthSearcher(3).Search(stalemate, 0, false)
	if !res.Move.IsNull() || res.Score != StalemateScore {
		t.Fatalf("stalemated side got move %s score %d", res.Move, res.Score)
	}
}

func TestMateScorePrefersShorterMates(t *testing.T) {
	s := depthSearcher(0)
	s.pos = mustPosition(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	s.timeHandler.Start(0)
	s.checkpoint = s.opts.NodeCheckInterval
	near := s.alphabeta(-Inf, Inf, 3, 0)
	far := s.alphabeta(-Inf, Inf, 1, 0)
	if near >= far || far > -MateValue {
		t.Fatalf("mate with 3 plies left %d, with 1 ply left %d", near, far)
	}
}

func TestSearchCapturesHangingQueen(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	res := depthSearcher(3).Search(pos, 0, false)
	if got := res.Move.UCI(); got != "d1d5" {
		t.Fatalf("best move %s, want d1d5", got)
	}
}

func TestSearchRestoresPosition(t *testing.T) {
	pos := mustPosition(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	fen, hash := pos.FEN(), pos.Hash()
	s := depthSearcher(3)
	s.Search(pos, 0, false)
	if pos.FEN() != fen || pos.Hash() != hash {
		t.Fatalf("search left %s, want %s", pos.FEN(), fen)
	}
	if s.Reps.Len() != 0 {
		t.Fatalf("search left %d keys on the repetition stack", s.Reps.Len())
	}
}

func TestRepetitionScoresContempt(t *testing.T) {
	opts := testOptions()
	s := NewSearcher(nil, nil, opts, zerolog.Nop())
	s.pos = mustPosition(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	s.timeHandler.Start(0)
	s.checkpoint = opts.NodeCheckInterval

	var m board.Move
	for _, c := range s.pos.LegalMoves() {
		if c.UCI() == "a1a2" {
			m = c
		}
	}
	s.pos.MakeMove(m)
	s.Reps.Push(s.pos.Hash())
	s.pos.UndoMove(m)

	s.repActive = true
	if got := s.searchChild(m, -Inf, Inf, 2, 0); got != opts.Contempt {
		t.Fatalf("repeated position scored %d, want %d", got, opts.Contempt)
	}
	s.repActive = false
	if got := s.searchChild(m, -Inf, Inf, 2, 0); got < RookValue {
		t.Fatalf("inactive repetition scored %d, want the material edge", got)
	}
	if s.Reps.Len() != 1 {
		t.Fatalf("repetition stack holds %d keys, want 1", s.Reps.Len())
	}
}

func TestSearchReportsIterations(t *testing.T) {
	s := depthSearcher(4)
	var depths []int
	s.OnIteration = func(info Info) {
		depths = append(depths, info.Depth)
		if info.Best.IsNull() {
			t.Fatalf("iteration %d has no best move", info.Depth)
		}
	}
	res := s.Search(board.NewPosition(), 0, false)
	if len(depths) != 3 || depths[0] != 2 || depths[2] != 4 {
		t.Fatalf("iterations %v, want depths 2 to 4", depths)
	}
	if res.Depth != 4 || res.Nodes == 0 {
		t.Fatalf("result depth %d nodes %d", res.Depth, res.Nodes)
	}
	if st := s.Stats(); st.Nodes != res.Nodes || st.BetaCutoffs == 0 {
		t.Fatalf("statistics %+v do not match the search", st)
	}
}

func TestStopInterruptsSearch(t *testing.T) {
	s := depthSearcher(0)
	done := make(chan Result)
	go func() {
		done <- s.Search(board.NewPosition(), 0, false)
	}()

	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(30 * time.Second)
	for {
		select {
		case res := <-done:
			if res.Move.IsNull() {
				t.Fatalf("stopped search returned no move")
			}
			return
		case <-tick.C:
			s.Stop()
		case <-timeout:
			t.Fatalf("search did not stop")
		}
	}
}

func TestSearchHonorsBudget(t *testing.T) {
	s := depthSearcher(0)
	start := time.Now()
	res := s.Search(board.NewPosition(), 100*time.Millisecond, false)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("100ms search took %v", elapsed)
	}
	if res.Move.IsNull() {
		t.Fatalf("timed search returned no move")
	}
}

func TestStopBeforeSearchIsKept(t *testing.T) {
	opts := testOptions()
	opts.MaxDepth = 3
	opts.NodeCheckInterval = 1
	s := NewSearcher(nil, nil, opts, zerolog.Nop())

	s.Stop()
	res := s.Search(board.NewPosition(), 0, false)
	if res.Depth != 0 || res.Move.IsNull() {
		t.Fatalf("pre-stopped search reached depth %d with move %s", res.Depth, res.Move)
	}

	// The stop was used up by the search it ended.
	res = s.Search(board.NewPosition(), 0, false)
	if res.Depth != 3 {
		t.Fatalf("following search reached depth %d, want 3", res.Depth)
	}

	s.Stop()
	s.ResetStop()
	if res = s.Search(board.NewPosition(), 0, false); res.Depth != 3 {
		t.Fatalf("search after ResetStop reached depth %d, want 3", res.Depth)
	}
}

// nodeSearcher prepares s to call the recursive search directly on fen.
func nodeSearcher(t *testing.T, fen string) *Searcher {
	t.Helper()
	s := NewSearcher(nil, nil, testOptions(), zerolog.Nop())
	s.pos = mustPosition(t, fen)
	s.timeHandler.Start(0)
	s.checkpoint = s.opts.NodeCheckInterval
	return s
}

func TestQuiescence(t *testing.T) {
	for _, tc := range []struct {
		name        string
		fen         string
		alpha, beta int32
		check       func(s *Searcher, standPat, got int32) string
	}{
		{
			name:  "stand pat above beta",
			fen:   "4k3/8/8/8/8/8/8/QQ2K3 w - - 0 1",
			alpha: -Inf,
			beta:  0,
			check: func(s *Searcher, standPat, got int32) string {
				if got != 0 || s.stats.QStandPatCutoffs != 1 || s.nodes != 1 {
					return "expected an immediate stand-pat cutoff"
				}
				return ""
			},
		},
		{
			name:  "quiet position searches no moves",
			fen:   "4k3/8/8/8/8/8/8/4K2R w - - 0 1",
			alpha: -Inf,
			beta:  Inf,
			check: func(s *Searcher, standPat, got int32) string {
				if got != standPat || s.nodes != 1 {
					return "quiet moves were searched"
				}
				return ""
			},
		},
		{
			name:  "hanging queen is taken",
			fen:   "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
			alpha: -Inf,
			beta:  Inf,
			check: func(s *Searcher, standPat, got int32) string {
				if standPat >= 0 || got <= 0 {
					return "capture of the queen was not found"
				}
				return ""
			},
		},
		{
			name:  "defended pawn is left alone",
			fen:   "4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1",
			alpha: -Inf,
			beta:  Inf,
			check: func(s *Searcher, standPat, got int32) string {
				if got != standPat {
					return "losing capture changed the score"
				}
				return ""
			},
		},
		{
			name:  "capture refutes a low beta",
			fen:   "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
			alpha: -Inf,
			beta:  0,
			check: func(s *Searcher, standPat, got int32) string {
				if got != 0 || s.stats.QBetaCutoffs != 1 {
					return "expected a capture beta cutoff"
				}
				return ""
			},
		},
	} {
		s := nodeSearcher(t, tc.fen)
		fen := s.pos.FEN()
		standPat := Evaluate(s.pos)
		got := s.quiescence(tc.alpha, tc.beta, 0)
		if msg := tc.check(s, standPat, got); msg != "" {
			t.Fatalf("%s: %s (stand pat %d, score %d, stats %+v)", tc.name, msg, standPat, got, s.stats)
		}
		if s.pos.FEN() != fen {
			t.Fatalf("%s: quiescence left %s", tc.name, s.pos.FEN())
		}
	}
}

func TestAspirationResearch(t *testing.T) {
	// The mate in two only shows up at depth 4, far outside a narrow window.
	const mateInTwo = "k7/8/2K5/8/8/8/8/7R w - - 0 1"
	for _, tc := range []struct {
		window       int32
		wantResearch bool
	}{
		{window: 1, wantResearch: true},
		{window: Inf, wantResearch: false},
	} {
		opts := testOptions()
		opts.MaxDepth = 4
		opts.AspirationWindow = tc.window
		s := NewSearcher(nil, nil, opts, zerolog.Nop())
		res := s.Search(mustPosition(t, mateInTwo), 0, false)
		if !IsMateScore(res.Score) || res.Score < 0 {
			t.Fatalf("window %d: best %s score %d, want a winning mate", tc.window, res.Move, res.Score)
		}
		if got := s.Stats().Researches > 0; got != tc.wantResearch {
			t.Fatalf("window %d: researches %d", tc.window, s.Stats().Researches)
		}
	}
}
