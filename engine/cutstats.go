package engine

import "github.com/rs/zerolog"

// CutStatistics counts how the nodes of the last search were resolved.
type CutStatistics struct {
	Nodes uint64
	// TTCutoffs are nodes answered by a deep enough table entry.
	TTCutoffs uint64
	// EarlyCutoffs are beta cutoffs by the table move or a killer, before
	// any move was generated.
	EarlyCutoffs     uint64
	BetaCutoffs      uint64
	RepetitionHits   uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	Researches       uint64
}

func (cs *CutStatistics) log(l zerolog.Logger) {
	l.Debug().
		Uint64("nodes", cs.Nodes).
		Uint64("tt-cutoffs", cs.TTCutoffs).
		Uint64("early-cutoffs", cs.EarlyCutoffs).
		Uint64("beta-cutoffs", cs.BetaCutoffs).
		Uint64("repetitions", cs.RepetitionHits).
		Uint64("q-standpat", cs.QStandPatCutoffs).
		Uint64("q-beta", cs.QBetaCutoffs).
		Uint64("researches", cs.Researches).
		Msg("cut-statistics")
}
