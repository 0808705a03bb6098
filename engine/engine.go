package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrInvalidDepth = errors.New("engine: search depth must be positive")

type Option func(e *Engine)

// Engine is a fixed-depth alpha-beta searcher. It keeps a transposition table
// and counters between calls, so one Engine serves one goroutine.
type Engine struct {
	depth    int
	tt       *TransTable
	useCache bool
	shuffler Shuffler
	logger   zerolog.Logger
	stats    Stats
}

// WithSeed shuffles quiet moves with a generator seeded by seed, so equal
// positions get the same move for the same seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.shuffler = rand.New(rand.NewSource(seed))
	}
}

func WithShuffler(shuffler Shuffler) Option {
	return func(e *Engine) {
		if shuffler != nil {
			e.shuffler = shuffler
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithoutCache turns off the transposition table.
func WithoutCache() Option {
	return func(e *Engine) {
		e.useCache = false
	}
}

func New(depth int, options ...Option) (*Engine, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	e := &Engine{ // Default values
		depth:    depth,
		tt:       NewTransTable(),
		useCache: true,
		logger:   log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

func (e *Engine) Depth() int { return e.depth }

// Stats returns the counters of the last SearchRoot, plus any Search calls
// made since.
func (e *Engine) Stats() Stats { return e.stats }

// Cache exposes the transposition table, mostly for inspection in tests.
func (e *Engine) Cache() *TransTable { return e.tt }
