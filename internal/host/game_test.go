package host

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/config"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/testutil"
)

// agentFunc adapts a function to the Agent interface.
type agentFunc func(ctx context.Context, s *engine.State) (chess.Move, error)

func (f agentFunc) NextMove(ctx context.Context, s *engine.State) (chess.Move, error) {
	return f(ctx, s)
}

func quietConfig() (*config.Config, *bytes.Buffer) {
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&log).WithVerbosity(2).Build()
	return cfg, &log
}

func TestGameScholarsMate(t *testing.T) {
	cfg, log := quietConfig()
	white, black := NewManualAgent(), NewManualAgent()
	g := NewGame(cfg, nil, white, black)

	moves := []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7"}
	for i, text := range moves {
		colour := chess.Colours[i%2]
		testutil.AssertNoError(t, g.Submit(colour, text), "Submit(%s)", text)
		_, err := g.Tick(context.Background())
		testutil.AssertNoError(t, err, "Tick after %s", text)
	}

	r, over := g.Result()
	if !over {
		t.Fatal("game should be over")
	}
	testutil.AssertEqual(t, r, engine.Win(engine.Checkmate, chess.White))
	testutil.AssertEqual(t, g.PGN(), "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7 ...")
	testutil.AssertContains(t, log.String(), "ply 7: Qxf7#")
	testutil.AssertContains(t, log.String(), "Checkmate(White) 1-0")

	_, err := g.Tick(context.Background())
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	js := g.Snapshot()
	if js.Result == nil || js.Result.Winner != "white" {
		t.Errorf("Snapshot().Result = %+v, want a white win", js.Result)
	}
}

func TestGameRunRandom(t *testing.T) {
	g := NewGame(nil, nil, NewRandomAgent(3), NewNoBlunderAgent(4))

	r, over, err := g.Run(context.Background(), 10)
	testutil.AssertNoError(t, err)
	if over {
		t.Fatalf("game ended after 10 plies: %v", r)
	}
	testutil.AssertEqual(t, g.State().Ply(), 10)

	// Nothing forces a finish, so a long run may end either way.
	r, over, err = g.Run(context.Background(), 1000)
	testutil.AssertNoError(t, err)
	if got, ended := g.Result(); got != r || ended != over {
		t.Errorf("Run() = %v %v, Result() = %v %v", r, over, got, ended)
	}
	if !over {
		testutil.AssertEqual(t, g.State().Ply(), 1010)
	}
}

func TestGameRunFinishesInsufficientMaterial(t *testing.T) {
	start := engine.MustParseFEN("4k3/8/8/8/8/8/3q4/3K4 w - - 0 1")
	g := NewGame(nil, start, NewRandomAgent(1), NewRandomAgent(2))

	r, over, err := g.Run(context.Background(), 1)
	testutil.AssertNoError(t, err)
	if !over {
		t.Fatal("taking the last piece should end the game")
	}
	testutil.AssertEqual(t, r, engine.Draw(engine.InsufficientMaterial))
}

func TestGameStartsFinished(t *testing.T) {
	start := engine.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	g := NewGame(nil, start, NewRandomAgent(1), NewRandomAgent(2))

	if _, over := g.Result(); !over {
		t.Error("bare kings should be a finished game")
	}
	_, _, err := g.Run(context.Background(), 5)
	testutil.AssertNoError(t, err)
}

func TestGameResign(t *testing.T) {
	g := NewGame(nil, nil, NewRandomAgent(1), NewRandomAgent(2))

	testutil.AssertNoError(t, g.Resign(chess.White))
	r, over := g.Result()
	if !over {
		t.Fatal("game should be over")
	}
	testutil.AssertEqual(t, r, engine.Win(engine.Surrender, chess.Black))
	testutil.AssertEqual(t, r.Score(), "0-1")

	testutil.AssertErrorIs(t, g.Resign(chess.Black), errors.ErrGameOver)
}

func TestGameRejectsIllegalMove(t *testing.T) {
	cheat := agentFunc(func(ctx context.Context, s *engine.State) (chess.Move, error) {
		return chess.NewMove(chess.W(chess.Pawn), chess.MustParsePosition("e2"), chess.MustParsePosition("e5")), nil
	})
	g := NewGame(nil, nil, cheat, NewRandomAgent(1))

	_, err := g.Tick(context.Background())
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	var gameErr *errors.GameError
	if !errors.As(err, &gameErr) || gameErr.GameID != g.ID() || gameErr.PlyNum != 1 || gameErr.MoveText != "e2e5" {
		t.Errorf("error = %#v, want a GameError for ply 1 e2e5", err)
	}
	testutil.AssertEqual(t, g.State().Ply(), 0)
}

func TestGameSubmitErrors(t *testing.T) {
	g := NewGame(nil, nil, NewManualAgent(), NewRandomAgent(1))

	testutil.AssertErrorIs(t, g.Submit(chess.Black, "e5"), errors.ErrInvalidConfig)

	testutil.AssertNoError(t, g.Submit(chess.White, "e4"))
	_, err := g.Tick(context.Background())
	testutil.AssertNoError(t, err)

	testutil.AssertErrorIs(t, g.Submit(chess.White, "d4"), errors.ErrNotYourTurn)
}

func TestGameTickCancelled(t *testing.T) {
	g := NewGame(nil, nil, NewManualAgent(), NewRandomAgent(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := g.Tick(ctx)
	testutil.AssertErrorIs(t, err, context.DeadlineExceeded)
}

func TestGameStaleState(t *testing.T) {
	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	slow := agentFunc(func(ctx context.Context, s *engine.State) (chess.Move, error) {
		entered <- struct{}{}
		<-release
		return s.LegalMoves()[0], nil
	})
	g := NewGame(nil, nil, slow, NewRandomAgent(1))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = g.Tick(context.Background())
	}()
	<-entered

	// The second tick takes its snapshot now, then waits for the seat.
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = g.Tick(context.Background())
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	testutil.AssertNoError(t, errs[0])
	testutil.AssertErrorIs(t, errs[1], errors.ErrStaleState)
	testutil.AssertEqual(t, g.State().Ply(), 1)
}
