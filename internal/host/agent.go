// Package host runs games between move sources and keeps track of the
// games in progress.
package host

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/config"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/notation"
)

// Agent chooses the move for the side to move. The state it is given is
// immutable and may be kept.
type Agent interface {
	NextMove(ctx context.Context, s *engine.State) (chess.Move, error)
}

// NewAgent builds the agent named by kind. Random agents draw from a
// source seeded with seed, or from the clock when seed is 0.
func NewAgent(kind config.AgentKind, seed int64) (Agent, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch kind {
	case config.AgentRandom:
		return NewRandomAgent(seed), nil
	case config.AgentNoBlunder:
		return NewNoBlunderAgent(seed), nil
	case config.AgentManual:
		return NewManualAgent(), nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "unknown agent %q", kind)
}

// seededRand is a random source safe for use from several goroutines.
type seededRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSeededRand(seed int64) *seededRand {
	return &seededRand{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // G404: move choice needs no crypto randomness
}

func (r *seededRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	rng *seededRand
}

// NewRandomAgent creates a RandomAgent with a fixed seed.
func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{rng: newSeededRand(seed)}
}

// NextMove implements Agent.
func (a *RandomAgent) NextMove(ctx context.Context, s *engine.State) (chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return chess.Move{}, err
	}
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// NoBlunderAgent mates in one when it can. Otherwise it scores each move
// by the material it captures, less the moving piece when the opponent
// attacks its destination afterwards, and plays a random move among the
// best.
type NoBlunderAgent struct {
	rng *seededRand
}

// NewNoBlunderAgent creates a NoBlunderAgent with a fixed seed.
func NewNoBlunderAgent(seed int64) *NoBlunderAgent {
	return &NoBlunderAgent{rng: newSeededRand(seed)}
}

// NextMove implements Agent.
func (a *NoBlunderAgent) NextMove(ctx context.Context, s *engine.State) (chess.Move, error) {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}

	var best []chess.Move
	bestScore := 0
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return chess.Move{}, err
		}
		next := s.NextForMove(m)
		if next.IsCheckmate() {
			return m, nil
		}
		score := m.Taken.Type.Value()
		if next.IsAttacked(m.To, m.Piece.Colour) {
			score -= m.Piece.Type.Value()
		}
		switch {
		case len(best) == 0 || score > bestScore:
			best, bestScore = []chess.Move{m}, score
		case score == bestScore:
			best = append(best, m)
		}
	}
	return best[a.rng.Intn(len(best))], nil
}

// ManualAgent plays moves submitted from outside, such as a terminal or a
// remote player. Text may be short or long algebraic notation.
type ManualAgent struct {
	mu      sync.Mutex
	pending []string
	notify  chan struct{}
}

// NewManualAgent creates a ManualAgent with nothing queued.
func NewManualAgent() *ManualAgent {
	return &ManualAgent{notify: make(chan struct{}, 1)}
}

// Submit queues move text for a later NextMove.
func (a *ManualAgent) Submit(text string) {
	a.mu.Lock()
	a.pending = append(a.pending, text)
	a.mu.Unlock()

	select {
	case a.notify <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued moves.
func (a *ManualAgent) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// NextMove waits for submitted text and resolves it against s. Text that
// names no legal move is consumed and reported.
func (a *ManualAgent) NextMove(ctx context.Context, s *engine.State) (chess.Move, error) {
	for {
		if text, ok := a.pop(); ok {
			return notation.ParseAny(s, text)
		}
		select {
		case <-a.notify:
		case <-ctx.Done():
			return chess.Move{}, ctx.Err()
		}
	}
}

func (a *ManualAgent) pop() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pending) == 0 {
		return "", false
	}
	text := a.pending[0]
	a.pending = a.pending[1:]
	return text, true
}
