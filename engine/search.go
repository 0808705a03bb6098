package engine

import (
	"math"
	"time"

	"chess-opponent/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================

// Score is from White's point of view: positive favours White.
type Score float64

const (
	// MateScore outranks any material and positional total. Mate scores are
	// MateScore plus the depth left when the mate was found.
	MateScore Score = 1_000_000
	DrawScore Score = 0
)

var Infinity = Score(math.Inf(1))

// Result is a score and the move that reaches it, or board.NoMove.
type Result struct {
	Score Score
	Move  board.Move
}

// SearchRoot picks the best move for side at the engine's depth. The
// transposition table and stats are reset first: cached draw scores depend on
// the move history behind the root.
func (e *Engine) SearchRoot(pos board.Position, side board.Color) Result {
	start := time.Now()
	e.tt.Clear()
	e.stats = Stats{}

	if side != pos.SideToMove() {
		e.logger.Warn().
			Str("side", side.String()).
			Str("fen", pos.FEN()).
			Msg("searching for the side not to move")
	}
	maximizing := side == board.White

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		result := e.search(pos, e.depth, -Infinity, Infinity, maximizing, 0)
		e.finish(start, result)
		return result
	}

	alpha, beta := -Infinity, Infinity
	best := Result{Score: Infinity, Move: board.NoMove}
	if maximizing {
		best.Score = -Infinity
	}
	for _, m := range OrderMoves(pos, moves, e.shuffler) {
		score := e.searchMove(pos, m, e.depth-1, alpha, beta, !maximizing, 1)
		if maximizing {
			if score > best.Score {
				best = Result{Score: score, Move: m}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				best = Result{Score: score, Move: m}
			}
			beta = min(beta, best.Score)
		}
	}
	e.finish(start, best)
	return best
}

// BestMove returns the move SearchRoot selects, and false when side has no
// legal move.
func (e *Engine) BestMove(pos board.Position, side board.Color) (board.Move, bool) {
	result := e.SearchRoot(pos, side)
	return result.Move, !result.Move.IsNull()
}

// Search runs alpha-beta to depth from pos. It uses whatever the
// transposition table already holds; SearchRoot is the entry point that
// starts from a clean table.
func (e *Engine) Search(pos board.Position, depth int, alpha, beta Score, maximizing bool) Result {
	return e.search(pos, depth, alpha, beta, maximizing, 0)
}

func (e *Engine) search(pos board.Position, depth int, alpha, beta Score, maximizing bool, ply int) Result {
	e.stats.Nodes++

	switch status := pos.Status(); {
	case status == board.Checkmate:
		e.stats.Terminals++
		return Result{Score: mateScore(depth, maximizing), Move: board.NoMove}
	case status.IsOver():
		e.stats.Terminals++
		return Result{Score: DrawScore, Move: board.NoMove}
	}

	if depth <= 0 {
		e.stats.LeafEvals++
		return Result{Score: Evaluate(pos), Move: board.NoMove}
	}

	/*
		TRANSPOSITION TABLE LOOKUP
		Skipped at the top of a search so that the caller always gets a move.
	*/
	key := pos.Key()
	if e.useCache && ply > 0 {
		if score, ok := e.tt.useEntry(key, depth, alpha, beta); ok {
			e.stats.TTHits++
			return Result{Score: score, Move: board.NoMove}
		}
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		// Status said the game goes on; trust the static score.
		e.stats.LeafEvals++
		return Result{Score: Evaluate(pos), Move: board.NoMove}
	}

	alphaOrig, betaOrig := alpha, beta
	best := Result{Score: Infinity, Move: board.NoMove}
	if maximizing {
		best.Score = -Infinity
	}

	for _, m := range OrderMoves(pos, moves, e.shuffler) {
		score := e.searchMove(pos, m, depth-1, alpha, beta, !maximizing, ply+1)

		// Strict comparison keeps the first of equally scored moves.
		if maximizing {
			if score > best.Score {
				best = Result{Score: score, Move: m}
			}
			alpha = max(alpha, best.Score)
		} else {
			if score < best.Score {
				best = Result{Score: score, Move: m}
			}
			beta = min(beta, best.Score)
		}

		if beta <= alpha {
			e.stats.BetaCutoffs++
			break
		}
	}

	if e.useCache {
		e.tt.storeEntry(key, depth, best.Score, boundFlag(best.Score, alphaOrig, betaOrig))
		e.stats.TTStores++
	}
	return best
}

// searchMove applies m, searches the child and undoes m on every exit path,
// panics included.
func (e *Engine) searchMove(pos board.Position, m board.Move, depth int, alpha, beta Score, maximizing bool, ply int) Score {
	undo := pos.Apply(m)
	defer undo()
	return e.search(pos, depth, alpha, beta, maximizing, ply).Score
}

// mateScore is the score of a checkmated node: a loss for the side to move.
// More depth left means a faster mate, so it scores further from zero.
func mateScore(depth int, maximizing bool) Score {
	score := MateScore + Score(max(depth, 0))
	if maximizing {
		return -score
	}
	return score
}

// IsMateScore reports whether score comes from a forced mate.
func IsMateScore(score Score) bool {
	return score >= MateScore || score <= -MateScore
}

func (e *Engine) finish(start time.Time, result Result) {
	e.stats.Elapsed = time.Since(start)
	e.logger.Debug().
		Int("depth", e.depth).
		Str("move", result.Move.String()).
		Float64("score", float64(result.Score)).
		Object("stats", e.stats).
		Msg("search complete")
}
