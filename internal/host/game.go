package host

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/config"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/notation"
)

// seat is one side of a game. Its lock is held while the agent thinks, so
// a seat never works on two moves at once.
type seat struct {
	mu    sync.Mutex
	agent Agent
}

// Game is a hosted game between two agents.
type Game struct {
	id  string
	cfg *config.Config

	start *engine.State

	mu     sync.Mutex // guards state and result
	state  *engine.State
	result *engine.EndResult

	seats [chess.NumColours]seat
}

// NewGame creates a game from start with a fresh id. A nil start means the
// standard initial position.
func NewGame(cfg *config.Config, start *engine.State, white, black Agent) *Game {
	if start == nil {
		start = engine.NewState()
	}
	g := &Game{
		id:    uuid.New().String(),
		cfg:   cfg,
		start: start,
		state: start,
	}
	g.seats[chess.White].agent = white
	g.seats[chess.Black].agent = black
	if r, over := start.CheckResult(); over {
		g.result = &r
	}
	return g
}

// ID returns the game id.
func (g *Game) ID() string {
	return g.id
}

// Start returns the state the game began from.
func (g *Game) Start() *engine.State {
	return g.start
}

// State returns the current state.
func (g *Game) State() *engine.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Result returns the result once the game has ended.
func (g *Game) Result() (engine.EndResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.result == nil {
		return engine.EndResult{}, false
	}
	return *g.result, true
}

// Agent returns the agent playing colour.
func (g *Game) Agent(colour chess.Colour) Agent {
	return g.seats[colour].agent
}

// Tick asks the side to move for a move and plays it. The move is checked
// against the state the agent was shown, and is dropped with ErrStaleState
// if the game changed in the meantime.
func (g *Game) Tick(ctx context.Context) (chess.Move, error) {
	g.mu.Lock()
	if g.result != nil {
		g.mu.Unlock()
		return chess.Move{}, g.wrap(errors.ErrGameOver, 0, "")
	}
	snapshot := g.state
	g.mu.Unlock()

	colour := snapshot.ActiveColour()
	s := &g.seats[colour]
	s.mu.Lock()
	defer s.mu.Unlock()

	ply := snapshot.Ply() + 1
	m, err := s.agent.NextMove(ctx, snapshot)
	if err != nil {
		return chess.Move{}, g.wrap(err, ply, "")
	}
	if !snapshot.IsLegal(m) {
		return chess.Move{}, g.wrap(errors.ErrIllegalMove, ply, m.String())
	}
	next := snapshot.NextForMove(m)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != snapshot {
		return chess.Move{}, g.wrap(errors.ErrStaleState, ply, m.String())
	}
	if g.result != nil {
		return chess.Move{}, g.wrap(errors.ErrGameOver, ply, m.String())
	}
	g.state = next
	g.cfg.Logf(2, "game %s ply %d: %s", g.id, ply, notation.FormatMoveWithCheck(snapshot, m))

	if r, over := next.CheckResult(); over {
		g.finish(r)
	}
	return m, nil
}

// Resign ends the game with colour giving up.
func (g *Game) Resign(colour chess.Colour) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.result != nil {
		return g.wrap(errors.ErrGameOver, 0, "")
	}
	g.finish(engine.Resignation(colour))
	return nil
}

// finish records the result. The caller holds g.mu.
func (g *Game) finish(r engine.EndResult) {
	g.result = &r
	g.cfg.Logf(1, "game %s ended after %d plies: %v %s", g.id, g.state.Ply(), r, r.Score())
}

// Submit queues move text for colour's seat, which must be a ManualAgent
// whose turn it is.
func (g *Game) Submit(colour chess.Colour, text string) error {
	manual, ok := g.seats[colour].agent.(*ManualAgent)
	if !ok {
		return g.wrap(errors.Wrapf(errors.ErrInvalidConfig, "%v seat is not manual", colour), 0, text)
	}
	s := g.State()
	if s.ActiveColour() != colour {
		return g.wrap(errors.ErrNotYourTurn, s.Ply()+1, text)
	}
	if _, over := g.Result(); over {
		return g.wrap(errors.ErrGameOver, 0, text)
	}
	manual.Submit(text)
	return nil
}

// Run ticks until the game ends, maxPlies moves have been played (0 means
// no limit), or ctx is done. It reports whether the game has ended.
func (g *Game) Run(ctx context.Context, maxPlies int) (engine.EndResult, bool, error) {
	for played := 0; maxPlies == 0 || played < maxPlies; played++ {
		if r, over := g.Result(); over {
			return r, true, nil
		}
		if _, err := g.Tick(ctx); err != nil {
			return engine.EndResult{}, false, err
		}
	}
	r, over := g.Result()
	return r, over, nil
}

// PGN returns the move list played so far.
func (g *Game) PGN() string {
	return notation.FormatPGN(g.State())
}

// Snapshot returns the JSON view of the current state.
func (g *Game) Snapshot() *notation.JSONState {
	js := notation.Snapshot(g.State())
	if r, over := g.Result(); over {
		js.Result = notation.EndToJSON(r)
	}
	return js
}

func (g *Game) wrap(err error, ply int, moveText string) error {
	return &errors.GameError{Err: err, GameID: g.id, PlyNum: ply, MoveText: moveText}
}
