package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"princess-engine/board"
	"princess-engine/engine"
)

const engineName = "Princess 1.0"

func main() {
	opts := engine.DefaultOptions()
	flag.IntVar(&opts.HashSize, "hash", opts.HashSize, "transposition table slots")
	flag.StringVar(&opts.BookPath, "book", opts.BookPath, "opening book file")
	flag.BoolVar(&opts.UseBook, "usebook", opts.UseBook, "play moves from the opening book")
	flag.IntVar(&opts.MaxDepth, "depth", opts.MaxDepth, "maximum search depth (0 = limited by time only)")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "seed for book line selection (0 = random)")
	contempt := flag.Int("contempt", int(opts.Contempt), "score for repeating a position")
	level := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()
	opts.Contempt = int32(*contempt)

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad log level %q: %v\n", *level, err)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	eng, err := engine.NewEngine(opts, log)
	if err != nil {
		log.Fatal().Err(err).Msg("engine-setup")
	}
	if err := xboardLoop(os.Stdin, os.Stdout, eng, log); err != nil {
		log.Fatal().Err(err).Msg("read-input")
	}
}

// session carries the protocol state between commands.
type session struct {
	eng   *engine.Engine
	out   io.Writer
	log   zerolog.Logger
	force bool
	post  bool

	// thinking delivers the engine's reply while a move is being searched.
	thinking chan string
	pending  []string
}

// xboardLoop reads commands from in until quit or end of input. While the
// engine thinks, "?" and "quit" are acted on at once and everything else is
// queued until the move is sent.
func xboardLoop(in io.Reader, out io.Writer, eng *engine.Engine, log zerolog.Logger) error {
	s := &session{eng: eng, out: out, log: log}
	eng.OnThinking = func(info engine.Info, best string) {
		if s.post {
			fmt.Fprintln(s.out, engine.ThinkingLine(info, best))
		}
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				if s.thinking != nil {
					s.reply(<-s.thinking)
				}
				return <-scanErr
			}
			if s.thinking != nil {
				switch strings.TrimSpace(line) {
				case "?":
					s.eng.Stop()
				case "quit":
					s.eng.Stop()
					<-s.thinking
					return nil
				default:
					s.pending = append(s.pending, line)
				}
				continue
			}
			if s.handle(line) {
				return nil
			}
		case move := <-s.thinking:
			s.thinking = nil
			s.reply(move)
			for len(s.pending) > 0 && s.thinking == nil {
				line := s.pending[0]
				s.pending = s.pending[1:]
				if s.handle(line) {
					return nil
				}
			}
		}
	}
}

// handle runs one command and reports whether the session is over.
func (s *session) handle(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), tokens[0]))

	switch tokens[0] {
	case "xboard", "accepted", "rejected", "random", "hard", "easy", "computer", "level", "st", "sd":
	case "protover":
		fmt.Fprintf(s.out, "feature san=1 usermove=1 setboard=1 time=1 sigint=0 sigterm=0 myname=%q done=1\n", engineName)
	case "new":
		s.eng.NewGame()
		s.force = false
	case "white":
		s.eng.SetSideToMove(board.White)
	case "black":
		s.eng.SetSideToMove(board.Black)
	case "force":
		s.force = true
	case "go":
		s.force = false
		s.eng.SetSideToMove(s.eng.Position().SideToMove())
		s.think()
	case "usermove":
		if err := s.eng.ReceiveMove(arg); err != nil {
			s.log.Warn().Err(err).Str("move", arg).Msg("unreadable-move")
			fmt.Fprintf(s.out, "Illegal move: %s\n", arg)
			return false
		}
		if !s.force && s.eng.Position().SideToMove() == s.eng.Side() {
			s.think()
		}
	case "time":
		cs, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Error (bad time): %s\n", line)
			return false
		}
		s.eng.SetTime(time.Duration(cs) * 10 * time.Millisecond)
	case "otim":
	case "post":
		s.post = true
	case "nopost":
		s.post = false
	case "setboard":
		if err := s.eng.SetPosition(arg); err != nil {
			s.log.Warn().Err(err).Msg("bad-setboard")
			fmt.Fprintln(s.out, "tellusererror Illegal position")
		}
	case "?":
	case "quit":
		return true
	default:
		fmt.Fprintf(s.out, "Error (unknown command): %s\n", tokens[0])
	}
	return false
}

// think starts the search for the engine's move in the background.
func (s *session) think() {
	s.eng.ResetStop()
	s.thinking = make(chan string, 1)
	go func(done chan<- string) {
		done <- s.eng.RequestMove(0)
	}(s.thinking)
}

func (s *session) reply(move string) {
	if move == "" {
		fmt.Fprintln(s.out, "resign")
		return
	}
	fmt.Fprintf(s.out, "move %s\n", move)
}
