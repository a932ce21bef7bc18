// checkmate is a chess rules engine: it describes positions, counts move
// trees and hosts games between simple agents.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/checkmate-go/internal/config"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1 // the command failed
	exitUsage = 2 // bad flags, configuration or notation
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("checkmate version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fail(err)
	}
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	// Set up logging and output files
	logOut := setupLogFile(cfg)
	out := setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, runOptions{
		moves:  *moveText,
		play:   *play,
		input:  os.Stdin,
		prompt: os.Stderr,
	})
	stop()

	if closeErr := closeFile(out); err == nil {
		err = closeErr
	}
	closeFile(logOut) //nolint:errcheck // nothing left to report a log failure to
	if err != nil {
		fail(err)
	}
}

// closeFile closes f, which may be nil.
func closeFile(f *os.File) error {
	if f == nil {
		return nil
	}
	return f.Close()
}

// loadConfig reads the configuration file if one was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.Load(path)
}

// setupLogFile configures the log file based on command-line flags. It
// returns the opened file, or nil when logging goes to the default stream.
func setupLogFile(cfg *config.Config) *os.File {
	if *logFile == "" {
		return nil
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(exitError)
	}
	cfg.SetLog(file)
	return file
}

// setupOutputFile configures the output file based on command-line flags.
// It returns the created file, or nil when output goes to stdout.
func setupOutputFile(cfg *config.Config) *os.File {
	if *outputFile == "" {
		return nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitError)
	}
	cfg.SetOutput(file)
	return file
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errors.ErrInvalidConfig),
		errors.Is(err, errors.ErrParse),
		errors.Is(err, errors.ErrInvalidState):
		return exitUsage
	}
	return exitError
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "checkmate: %v\n", err)
	os.Exit(exitCode(err))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: checkmate [options]\n\n")
	fmt.Fprintf(os.Stderr, "Describes a chess position, counts its move tree or plays games from it.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  checkmate -moves '1. e4 e5 2. Qh5'\n")
	fmt.Fprintf(os.Stderr, "  checkmate -perft 4 -divide -verify\n")
	fmt.Fprintf(os.Stderr, "  checkmate -play -white manual -black noblunder\n")
	fmt.Fprintf(os.Stderr, "  checkmate -play -games 10 -seed 1 -o games.pgn\n")
	fmt.Fprintf(os.Stderr, "  checkmate -perft 5 -hash 1000000\n")
}
