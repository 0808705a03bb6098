package engine

import (
	"chess-opponent/board"
)

const (
	// Flags
	AlphaFlag = iota // upper bound: the true score is at most Score
	BetaFlag         // lower bound: the true score is at least Score
	ExactFlag
)

type TTEntry struct {
	Depth int
	Score Score
	Flag  int8
}

// TransTable caches search scores by position key. Entries are only trusted
// for requests no deeper than the depth they were searched to.
type TransTable struct {
	entries map[board.Key]TTEntry
}

func NewTransTable() *TransTable {
	return &TransTable{entries: make(map[board.Key]TTEntry)}
}

// Lookup returns the exact score stored for key if it was searched at least
// minDepth deep.
func (tt *TransTable) Lookup(key board.Key, minDepth int) (Score, bool) {
	entry, ok := tt.entries[key]
	if !ok || entry.Flag != ExactFlag || entry.Depth < minDepth {
		return 0, false
	}
	return entry.Score, true
}

// Store records an exact score, replacing whatever was stored for key.
func (tt *TransTable) Store(key board.Key, depth int, score Score) {
	tt.storeEntry(key, depth, score, ExactFlag)
}

func (tt *TransTable) Clear() { clear(tt.entries) }

func (tt *TransTable) Len() int { return len(tt.entries) }

/*
This is an "always replace"-approach, same as Store. Bounds are kept next to
exact scores so a search can reuse a fail-soft result from a different window.
*/
func (tt *TransTable) storeEntry(key board.Key, depth int, score Score, flag int8) {
	tt.entries[key] = TTEntry{Depth: depth, Score: score, Flag: flag}
}

// useEntry returns a cached score that decides the node for the (alpha, beta)
// window.
func (tt *TransTable) useEntry(key board.Key, depth int, alpha, beta Score) (Score, bool) {
	entry, ok := tt.entries[key]
	if !ok || entry.Depth < depth {
		return 0, false
	}
	switch entry.Flag {
	case ExactFlag:
		return entry.Score, true
	case AlphaFlag:
		if entry.Score <= alpha {
			return entry.Score, true
		}
	case BetaFlag:
		if entry.Score >= beta {
			return entry.Score, true
		}
	}
	return 0, false
}

// boundFlag classifies a fail-soft score against the window it was searched with.
func boundFlag(score, alpha, beta Score) int8 {
	switch {
	case score <= alpha:
		return AlphaFlag
	case score >= beta:
		return BetaFlag
	}
	return ExactFlag
}
