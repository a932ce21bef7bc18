// commands.go - The position, perft and play commands
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/config"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/hashing"
	"github.com/lgbarn/checkmate-go/internal/host"
	"github.com/lgbarn/checkmate-go/internal/notation"
	"github.com/lgbarn/checkmate-go/internal/output"
	"github.com/lgbarn/checkmate-go/internal/perft"
)

// runOptions carries the command-line choices that are not configuration.
type runOptions struct {
	moves  string    // movetext played before the command runs
	play   bool      // host games instead of describing the position
	input  io.Reader // move source for manual seats
	prompt io.Writer // prompts and rejected input for manual seats; nil discards
}

// run dispatches to the command selected by cfg and opts.
func run(ctx context.Context, cfg *config.Config, opts runOptions) error {
	s, err := startPosition(cfg, opts.moves)
	if err != nil {
		return err
	}

	switch {
	case cfg.Perft.Depth > 0:
		return runPerft(ctx, cfg, s)
	case opts.play:
		if s.Ply() > 0 {
			cfg.Host.StartFEN = engine.FormatFEN(s)
		}
		return runPlay(ctx, cfg, opts)
	default:
		return showPosition(cfg.OutputFile, s, cfg.Output.JSON)
	}
}

// startPosition returns the configured start position with movetext
// played on it.
func startPosition(cfg *config.Config, movetext string) (*engine.State, error) {
	s := engine.NewState()
	if cfg.Host.StartFEN != "" {
		var err error
		if s, err = engine.ParseFEN(cfg.Host.StartFEN); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(movetext) == "" {
		return s, nil
	}
	return notation.ParsePGNFrom(s, movetext)
}

// showPosition describes s: the board, its FEN, the moves that led to it and
// either the result or the legal moves.
func showPosition(w io.Writer, s *engine.State, asJSON bool) error {
	if asJSON {
		return notation.WriteState(w, s)
	}

	fmt.Fprint(w, s.Board())
	fmt.Fprintf(w, "FEN: %s\n", engine.FormatFEN(s))
	if pgn := notation.FormatPGN(s); pgn != "" {
		fmt.Fprintf(w, "Moves: %s\n", pgn)
	}
	if r, over := s.CheckResult(); over {
		fmt.Fprintf(w, "Result: %v %s\n", r, r.Score())
		return nil
	}

	fmt.Fprintf(w, "%v to move", s.ActiveColour())
	if s.InCheck() {
		fmt.Fprint(w, " (in check)")
	}
	fmt.Fprintln(w)

	moves := s.LegalMoves()
	sans := make([]string, len(moves))
	for i, m := range moves {
		sans[i] = notation.FormatMoveWithCheck(s, m)
	}
	fmt.Fprintf(w, "Legal moves (%d): %s\n", len(moves), strings.Join(sans, " "))
	return nil
}

// runPerft counts the move tree below s and optionally checks the counts
// against the reference generator.
func runPerft(ctx context.Context, cfg *config.Config, s *engine.State) error {
	depth := cfg.Perft.Depth
	w := cfg.OutputFile

	var cache *hashing.Cache
	if cfg.Perft.Cache > 0 {
		cache = hashing.NewCache(cfg.Perft.Cache)
	}

	start := time.Now()
	counts, err := perft.DivideCached(ctx, s, depth, cfg.Perft.Workers, cache)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	total := perft.Total(counts)

	if cfg.Perft.Divide {
		for _, mv := range perft.SortedMoves(counts) {
			fmt.Fprintf(w, "%s: %d\n", mv, counts[mv])
		}
		fmt.Fprintf(w, "Total: %d\n", total)
	} else {
		fmt.Fprintf(w, "perft(%d) = %d\n", depth, total)
	}
	if secs := elapsed.Seconds(); secs > 0 {
		cfg.Logf(1, "%d nodes in %s (%.0f nps)", total, elapsed, float64(total)/secs)
	}
	if cache != nil {
		hits, misses := cache.Stats()
		cfg.Logf(2, "cache: %d entries, %d hits, %d misses", cache.Len(), hits, misses)
	}

	if !cfg.Perft.Verify {
		return nil
	}
	ref, err := perft.Reference(engine.FormatFEN(s), depth)
	if err != nil {
		return err
	}
	mismatches := perft.Compare(counts, ref)
	for _, m := range mismatches {
		fmt.Fprintf(w, "Mismatch %s: ours %d, reference %d\n", m.Move, m.Ours, m.Reference)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("perft(%d): %d root moves disagree with the reference", depth, len(mismatches))
	}
	fmt.Fprintln(w, "Verified against reference")
	return nil
}

// runPlay hosts the configured number of games between the configured
// agents, one after another, and writes each as it ends. Manual seats read
// one move per line from opts.input; "resign" or the end of input resigns.
func runPlay(ctx context.Context, cfg *config.Config, opts runOptions) error {
	var lines *bufio.Scanner
	if opts.input != nil {
		lines = bufio.NewScanner(opts.input)
	}
	prompt := opts.prompt
	if prompt == nil {
		prompt = io.Discard
	}

	reg := host.NewRegistry(cfg)
	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	for i := 0; i < cfg.Host.Games; i++ {
		g, err := reg.CreateFromConfig()
		if err != nil {
			return err
		}
		if err := playGame(ctx, cfg, g, lines, prompt); err != nil {
			return err
		}
		if err := writer.WriteGame(g); err != nil {
			return err
		}
		if err := reg.Remove(g.ID()); err != nil {
			return err
		}
	}
	return writer.Close()
}

// playGame plays g to its end or to the configured ply limit. Manual seats
// are prompted on prompt, which stays apart from the game output.
func playGame(ctx context.Context, cfg *config.Config, g *host.Game, lines *bufio.Scanner, prompt io.Writer) error {
	if !hasManualSeat(g) {
		_, _, err := g.Run(ctx, cfg.Host.MaxPlies)
		return err
	}

	for played := 0; cfg.Host.MaxPlies == 0 || played < cfg.Host.MaxPlies; {
		if _, over := g.Result(); over {
			break
		}
		colour := g.State().ActiveColour()
		if _, manual := g.Agent(colour).(*host.ManualAgent); manual {
			text, ok := nextLine(prompt, lines, colour.String())
			if !ok || text == "resign" {
				if err := g.Resign(colour); err != nil {
					return err
				}
				break
			}
			if text == "" {
				continue
			}
			if err := g.Submit(colour, text); err != nil {
				return err
			}
		}

		if _, err := g.Tick(ctx); err != nil {
			if errors.Is(err, errors.ErrParse) || errors.Is(err, errors.ErrInvalidState) {
				fmt.Fprintln(prompt, err)
				continue
			}
			return err
		}
		played++
	}
	return nil
}

func hasManualSeat(g *host.Game) bool {
	for _, colour := range chess.Colours {
		if _, ok := g.Agent(colour).(*host.ManualAgent); ok {
			return true
		}
	}
	return false
}

// nextLine prompts for and reads one line of input. It reports false at
// the end of input.
func nextLine(w io.Writer, lines *bufio.Scanner, side string) (string, bool) {
	fmt.Fprintf(w, "%s to move: ", side)
	if lines == nil || !lines.Scan() {
		fmt.Fprintln(w)
		return "", false
	}
	return strings.TrimSpace(lines.Text()), true
}
