// Package perft counts the leaf nodes of the legal move tree, the usual
// way to check a move generator against known totals and against an
// independent implementation.
package perft

import (
	"context"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/hashing"
	"github.com/lgbarn/checkmate-go/internal/worker"
)

// Count returns the number of move sequences of exactly depth plies from s.
func Count(s *engine.State, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := s.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Count(s.NextForMove(m), depth-1)
	}
	return nodes
}

// CountCached is Count with subtree totals shared through cache. A nil
// cache counts without one.
func CountCached(s *engine.State, depth int, cache *hashing.Cache) uint64 {
	if cache == nil || depth < 2 {
		return Count(s, depth)
	}
	key := hashing.Key(s)
	if nodes, ok := cache.Get(key, depth); ok {
		return nodes
	}
	var nodes uint64
	for _, m := range s.LegalMoves() {
		nodes += CountCached(s.NextForMove(m), depth-1, cache)
	}
	cache.Put(key, depth, nodes)
	return nodes
}

// Divide returns the leaf count below each root move, keyed by the move in
// long algebraic form. Root moves are searched on workers goroutines.
func Divide(ctx context.Context, s *engine.State, depth, workers int) (map[string]uint64, error) {
	return DivideCached(ctx, s, depth, workers, nil)
}

// DivideCached is Divide with the workers sharing cache.
func DivideCached(ctx context.Context, s *engine.State, depth, workers int, cache *hashing.Cache) (map[string]uint64, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: CountCached(item.State, item.Depth, cache),
		}
	}, worker.WithWorkers(workers))
	pool.Start()

	moves := s.LegalMoves()
	go func() {
		defer pool.Close()
		for i, m := range moves {
			item := worker.WorkItem{Index: i, Move: m, State: s.NextForMove(m), Depth: depth - 1}
			if !pool.Submit(ctx, item) {
				pool.Stop()
				return
			}
		}
	}()

	counts := make(map[string]uint64, len(moves))
	for r := range pool.Results() {
		counts[r.Move.String()] = r.Nodes
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Total sums a divide.
func Total(counts map[string]uint64) uint64 {
	var total uint64
	for _, n := range counts {
		total += n
	}
	return total
}

// Reference computes the same divide as Divide with an independent
// bitboard move generator.
func Reference(fen string, depth int) (map[string]uint64, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}
	// The reference parser does not report errors, so the position is
	// checked here first.
	if _, err := engine.ParseFEN(fen); err != nil {
		return nil, err
	}

	board := dragontoothmg.ParseFen(fen)
	counts := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		counts[m.String()] = referenceCount(&board, depth-1)
		unapply()
	}
	return counts, nil
}

func referenceCount(board *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += referenceCount(board, depth-1)
		unapply()
	}
	return nodes
}

// Missing marks a move one side of a comparison did not generate.
const Missing = -1

// Mismatch is a root move whose counts differ between two divides.
type Mismatch struct {
	Move      string
	Ours      int64 // Missing if we did not generate the move
	Reference int64 // Missing if the reference did not generate the move
}

// Compare lists the root moves on which two divides disagree, sorted by move.
func Compare(ours, reference map[string]uint64) []Mismatch {
	var out []Mismatch
	for mv, n := range ours {
		ref, ok := reference[mv]
		switch {
		case !ok:
			out = append(out, Mismatch{Move: mv, Ours: int64(n), Reference: Missing})
		case ref != n:
			out = append(out, Mismatch{Move: mv, Ours: int64(n), Reference: int64(ref)})
		}
	}
	for mv, ref := range reference {
		if _, ok := ours[mv]; !ok {
			out = append(out, Mismatch{Move: mv, Ours: Missing, Reference: int64(ref)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Move < out[j].Move })
	return out
}

// SortedMoves returns the keys of a divide in order.
func SortedMoves(counts map[string]uint64) []string {
	moves := make([]string, 0, len(counts))
	for mv := range counts {
		moves = append(moves, mv)
	}
	sort.Strings(moves)
	return moves
}
