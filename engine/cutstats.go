package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// Stats collects counts for one top-level search.
type Stats struct {
	Nodes       uint64
	LeafEvals   uint64
	Terminals   uint64
	TTHits      uint64
	TTStores    uint64
	BetaCutoffs uint64
	Elapsed     time.Duration
}

func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("leaf_evals", s.LeafEvals).
		Uint64("terminals", s.Terminals).
		Uint64("tt_hits", s.TTHits).
		Uint64("tt_stores", s.TTStores).
		Uint64("beta_cutoffs", s.BetaCutoffs).
		Dur("elapsed", s.Elapsed)
}

// NodesPerSecond is zero until the search has measurably run.
func (s Stats) NodesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Nodes) / s.Elapsed.Seconds()
}
