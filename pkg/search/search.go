// Package search contains the move selection search.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/fianchetto/fianchetto/pkg/board"
	"github.com/fianchetto/fianchetto/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Mate is the sentinel score for a lost position. Mate scores decay with the
// ply at which the mate is found, so shallower mates score higher.
const Mate = 25000

// ErrHalted is returned when a search is cancelled before completion. No move
// is selected and no partial state leaks.
var ErrHalted = errors.New("search halted")

// PV is the outcome of a completed search.
type PV struct {
	Move  board.Move
	Score int // from White's point of view
	Nodes uint64
}

func (pv PV) String() string {
	return fmt.Sprintf("move=%v score=%v nodes=%v", pv.Move, pv.Score, pv.Nodes)
}

// Minimax is a depth-limited minimax search. White maximizes, Black
// minimizes. Pseudo-code:
//
//	function minimax(node, depth, maximizingPlayer) is
//	    if depth = 0 or node is a terminal node then
//	        return the heuristic value of node
//	    if maximizingPlayer then
//	        value := −∞
//	        for each child of node do
//	            value := max(value, minimax(child, depth − 1, FALSE))
//	        return value
//	    else (* minimizing player *)
//	        value := +∞
//	        for each child of node do
//	            value := min(value, minimax(child, depth − 1, TRUE))
//	        return value
//
// With AlphaBeta set, an (alpha, beta) window is threaded through the
// recursion and subtrees that cannot affect the root choice are cut off.
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	// Depth is the maximum ply depth. At least 1.
	Depth int
	// AlphaBeta enables alpha-beta pruning.
	AlphaBeta bool
	// PositionalFactor scales the non-material evaluation terms, in percent.
	PositionalFactor int
}

// Search selects the best move for the side to move. Returns ErrHalted if the
// context is cancelled mid-search, and false if the position has no legal
// moves.
func (m Minimax) Search(ctx context.Context, b *board.Board) (PV, bool, error) {
	if m.Depth < 1 {
		m.Depth = 1
	}
	run := &runMinimax{opts: m}

	score, move, ok := run.search(ctx, b, m.Depth, -Mate-1, Mate+1)
	if contextx.IsCancelled(ctx) {
		return PV{}, false, ErrHalted
	}
	return PV{Move: move, Score: score, Nodes: run.nodes}, ok, nil
}

type runMinimax struct {
	opts  Minimax
	nodes uint64
}

// search returns the score from White's point of view and the best move, if
// any legal move exists.
func (r *runMinimax) search(ctx context.Context, b *board.Board, depth int, alpha, beta int) (int, board.Move, bool) {
	r.nodes++
	if contextx.IsCancelled(ctx) {
		return 0, board.Move{}, false
	}

	rs := b.Analyze(b.Turn())
	moves := b.LegalMovesAnalyzed(rs)
	if len(moves) == 0 {
		// No legal moves: mate if checked, else stalemate.
		if rs.ChecksAmount > 0 {
			ply := r.opts.Depth - depth
			if b.Turn() == board.White {
				return -Mate + ply, board.Move{}, false
			}
			return Mate - ply, board.Move{}, false
		}
		return 0, board.Move{}, false
	}
	if depth == 0 {
		return eval.Evaluate(b).Scale(r.opts.PositionalFactor).Total(), board.Move{}, false
	}

	SortByPriority(moves)

	maximizing := b.Turn() == board.White
	best := moves[0]
	score := Mate + 1
	if maximizing {
		score = -Mate - 1
	}

	for _, m := range moves {
		next := *b
		if err := next.Apply(m); err != nil {
			continue // unreachable for generator moves
		}

		s, _, _ := r.search(ctx, &next, depth-1, alpha, beta)

		if maximizing {
			if s > score {
				score, best = s, m
			}
			if s > alpha {
				alpha = s
			}
		} else {
			if s < score {
				score, best = s, m
			}
			if s < beta {
				beta = s
			}
		}

		if r.opts.AlphaBeta && alpha >= beta {
			break // cutoff
		}
	}
	return score, best, true
}
