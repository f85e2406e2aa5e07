package san

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"

	"princess-engine/board"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustFEN(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return p
}

func TestParseBasicMoves(t *testing.T) {
	cases := []struct {
		fen  string
		san  string
		want string
	}{
		{board.StartFEN, "e4", "e2e4"},
		{board.StartFEN, "Nf3", "g1f3"},
		{board.StartFEN, "Nc3+", "b1c3"},
		{kiwipeteFEN, "O-O", "e1g1"},
		{kiwipeteFEN, "O-O-O", "e1c1"},
		{kiwipeteFEN, "Bxa6", "e2a6"},
		{kiwipeteFEN, "dxe6", "d5e6"},
		{kiwipeteFEN, "Qxf6", "f3f6"},
		{"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "exd6", "e5d6"},
		{"1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=N", "a7a8n"},
		{"1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "axb8=Q+", "a7b8q"},
		{"1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8", "a7a8q"},
		{"4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "Rad1", "a1d1"},
		{"4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "Rhf1", "h1f1"},
		{"4k3/R7/8/8/8/8/8/R3K3 w - - 0 1", "R1a4", "a1a4"},
	}
	for _, tc := range cases {
		p := mustFEN(t, tc.fen)
		before := p.FEN()
		m, err := Parse(p, tc.san)
		if err != nil {
			t.Fatalf("Parse(%q) in %s: %v", tc.san, tc.fen, err)
		}
		if m.UCI() != tc.want {
			t.Fatalf("Parse(%q): got %s want %s", tc.san, m.UCI(), tc.want)
		}
		if p.FEN() != before {
			t.Fatalf("Parse(%q) changed the position", tc.san)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		san  string
		want error
	}{
		{"", ErrUnparseable},
		{"z9", ErrUnparseable},
		{"Xe4", ErrUnparseable},
		{"e8=K", ErrUnparseable},
		{"Nf3=Q", ErrUnparseable},
		{"e5", ErrNoSuchMove},
		{"Nf4", ErrNoSuchMove},
		{"O-O", ErrNoSuchMove},
		{"Nxf3", ErrNoSuchMove},
	}
	p := board.NewPosition()
	for _, tc := range cases {
		_, err := Parse(p, tc.san)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q): got %v want %v", tc.san, err, tc.want)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Text != tc.san {
			t.Fatalf("Parse(%q): error %v is not a ParseError for the input", tc.san, err)
		}
	}
}

func TestWriteDisambiguation(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"none needed", board.StartFEN, "g1f3", "Nf3"},
		{"file", "4k3/8/8/8/8/8/4K3/R6R w - - 0 1", "a1d1", "Rad1"},
		{"rank", "4k3/R7/8/8/8/8/8/R3K3 w - - 0 1", "a1a4", "R1a4"},
		{"file and rank", "4k3/8/8/8/8/8/Q7/Q1Q1K3 w - - 0 1", "a1b1", "Qa1b1"},
		{"pinned rival ignored", "4k3/4r3/8/N7/8/4N3/8/4K3 w - - 0 1", "a5c4", "Nc4"},
		{"pawn capture", kiwipeteFEN, "d5e6", "dxe6"},
		{"promotion capture", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8r", "axb8=R"},
		{"castle", kiwipeteFEN, "e1c1", "O-O-O"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			m := findMove(t, p, tc.uci)
			if got := Write(p, m); got != tc.want {
				t.Fatalf("Write(%s): got %q want %q", tc.uci, got, tc.want)
			}
		})
	}
}

func TestWriteWithSuffix(t *testing.T) {
	p := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	if got := WriteWithSuffix(p, findMove(t, p, "d8h4")); got != "Qh4#" {
		t.Fatalf("fool's mate: got %q", got)
	}
	p = mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if got := WriteWithSuffix(p, findMove(t, p, "a1a8")); got != "Ra8+" {
		t.Fatalf("rook check: got %q", got)
	}
}

func TestRoundTripAllLegalMoves(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	p := mustFEN(t, kiwipeteFEN)
	for ply := 0; ply < 60; ply++ {
		moves := p.LegalMoves()
		if len(moves) == 0 {
			break
		}
		for _, m := range moves {
			text := Write(p, m)
			back, err := Parse(p, text)
			if err != nil {
				t.Fatalf("Parse(Write(%s)=%q): %v", m, text, err)
			}
			if back != m {
				t.Fatalf("round trip of %q: got %s want %s", text, back, m)
			}
		}
		p.MakeMove(moves[rnd.Intn(len(moves))])
	}
}

// TestWriteAgreesWithReferenceEncoder replays random games side by side with
// an independent SAN encoder and compares every legal move's notation.
func TestWriteAgreesWithReferenceEncoder(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for _, fen := range []string{board.StartFEN, kiwipeteFEN} {
		p := mustFEN(t, fen)
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("chess.FEN: %v", err)
		}
		game := chess.NewGame(opt)
		notation := chess.AlgebraicNotation{}
		for ply := 0; ply < 40; ply++ {
			moves := p.LegalMoves()
			if len(moves) == 0 {
				break
			}
			ours := make(map[string]string, len(moves))
			for _, m := range moves {
				ours[m.UCI()] = WriteWithSuffix(p, m)
			}
			theirs := make(map[string]string, len(moves))
			byUCI := make(map[string]*chess.Move, len(moves))
			for _, m := range game.ValidMoves() {
				theirs[m.String()] = notation.Encode(game.Position(), m)
				byUCI[m.String()] = m
			}
			if diff := cmp.Diff(theirs, ours); diff != "" {
				t.Fatalf("%s ply %d (-reference +ours):\n%s", fen, ply, diff)
			}
			m := moves[rnd.Intn(len(moves))]
			p.MakeMove(m)
			if err := game.Move(byUCI[m.UCI()]); err != nil {
				t.Fatalf("reference rejected %s: %v", m, err)
			}
		}
	}
}

func findMove(t *testing.T, p *board.Position, uci string) board.Move {
	t.Helper()
	for _, m := range p.LegalMoves() {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("no legal move %s in %s", uci, p.FEN())
	return board.NullMove
}
