package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"princess-engine/board"
	"princess-engine/engine"
	"princess-engine/san"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 6, "search depth in plies (0 = limited by -movetime only)")
	moveTime := flag.Duration("movetime", 0, "time budget per search (0 = no limit)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	hashFlag := flag.Int("hash", engine.DefaultOptions().HashSize, "transposition table slots")
	verbose := flag.Bool("v", false, "log every iteration to stderr")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *depthFlag < 0 || (*depthFlag == 0 && *moveTime <= 0) {
		log.Fatal().Int("depth", *depthFlag).Dur("movetime", *moveTime).Msg("need a positive depth or a move time")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	opts := engine.DefaultOptions()
	opts.MaxDepth = *depthFlag
	opts.HashSize = *hashFlag
	if err := opts.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad options")
	}

	// FEN selection
	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}

	fmt.Printf("searchbench: fen=%q depth=%d movetime=%v repeat=%d\n", fen, *depthFlag, *moveTime, *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position and tables for each run
		pos, err := board.FromFEN(fen)
		if err != nil {
			log.Fatal().Err(err).Msg("bad FEN")
		}
		s := engine.NewSearcher(nil, nil, opts, log)

		iterStart := time.Now()
		res := s.Search(pos, *moveTime, false)
		iterElapsed := time.Since(iterStart)
		totalNodes += res.Nodes

		best := "(none)"
		if !res.Move.IsNull() {
			best = san.WriteWithSuffix(pos, res.Move)
		}
		fmt.Printf("iteration %d: bestmove %s score %d depth %d nodes %d time=%v\n",
			i+1, best, res.Score, res.Depth, res.Nodes, iterElapsed)
		st := s.Stats()
		fmt.Printf("  cutoffs: tt %d early %d beta %d q-standpat %d q-beta %d researches %d tt-stores %d\n",
			st.TTCutoffs, st.EarlyCutoffs, st.BetaCutoffs, st.QStandPatCutoffs, st.QBetaCutoffs, st.Researches, s.TT.Stored())
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d nps: %.0f\n", totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
