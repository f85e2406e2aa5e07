package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"

	"princess-engine/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare the divide against the dragontoothmg generator")
	workers := flag.Int("workers", runtime.NumCPU(), "Root moves counted in parallel")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide || *verify {
		div, err := parallelDivide(context.Background(), pos, *depth, *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "divide: %v\n", err)
			os.Exit(1)
		}
		if *divide {
			printDivide(div)
		}
		if *verify {
			ref := referenceDivide(*fen, *depth)
			if bad := compareDivides(div, ref); len(bad) > 0 {
				for _, line := range bad {
					fmt.Println(line)
				}
				os.Exit(1)
			}
			fmt.Println("verified against dragontoothmg")
		}
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += pos.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

// parallelDivide counts the leaves below every legal root move, each on its
// own copy of the position.
func parallelDivide(ctx context.Context, pos *board.Position, depth, workers int) (map[string]uint64, error) {
	moves := pos.LegalMoves()
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := pos.Clone()
			p.MakeMove(m)
			counts[i] = p.Perft(depth - 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	div := make(map[string]uint64, len(moves))
	for i, m := range moves {
		div[m.UCI()] = counts[i]
	}
	return div, nil
}

func referenceDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	div := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		div[strings.ToLower(m.String())] = referencePerft(&b, depth-1)
		unapply()
	}
	return div
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		n += referencePerft(b, depth-1)
		unapply()
	}
	return n
}

// compareDivides lists the root moves whose counts differ.
func compareDivides(got, want map[string]uint64) []string {
	keys := maps.Keys(got)
	for _, k := range maps.Keys(want) {
		if _, ok := got[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var bad []string
	for _, k := range keys {
		if got[k] != want[k] {
			bad = append(bad, fmt.Sprintf("%s: got %d, want %d", k, got[k], want[k]))
		}
	}
	return bad
}

func printDivide(div map[string]uint64) {
	keys := maps.Keys(div)
	sort.Strings(keys)
	var sum uint64
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, div[k])
		sum += div[k]
	}
	fmt.Printf("Total: %d\n", sum)
}
