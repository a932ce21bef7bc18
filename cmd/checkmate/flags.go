// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/checkmate-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Start position in FEN (default: configured start, else the initial position)")
	moveText  = flag.String("moves", "", "Movetext to play from the start position (e.g. '1. e4 e5 2. Nf3')")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output positions and games in JSON format")
	lineLength = flag.Int("w", 0, "Maximum movetext line length for PGN output (default 80)")

	// Perft options
	perftDepth   = flag.Int("perft", 0, "Count the move tree to this depth")
	perftDivide  = flag.Bool("divide", false, "Print the count below each root move")
	perftVerify  = flag.Bool("verify", false, "Check the counts against the reference generator")
	perftWorkers = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	perftHash    = flag.Int("hash", 0, "Cache up to N subtree counts while counting (0 = no cache)")

	// Play options
	play       = flag.Bool("play", false, "Play games between the configured agents")
	games      = flag.Int("games", 0, "Number of games to play (default 1)")
	whiteAgent = flag.String("white", "", "White agent: random, noblunder, manual")
	blackAgent = flag.String("black", "", "Black agent: random, noblunder, manual")
	seed       = flag.Int64("seed", 0, "Seed for the random agents (0 = from the clock)")
	maxPlies   = flag.Int("maxplies", 0, "Stop an unfinished game after N plies")

	// Configuration and logging
	configFile = flag.String("config", "", "YAML configuration file")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 game lifecycle, 2 every move")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags applies command-line flags to the configuration. Only flags in
// set override values loaded from a configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyHostFlags(cfg, set)
	applyPerftFlags(cfg, set)
	applyOutputFlags(cfg, set)

	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyHostFlags configures the game host.
func applyHostFlags(cfg *config.Config, set map[string]bool) {
	if set["white"] {
		cfg.Host.White = config.AgentKind(*whiteAgent)
	}
	if set["black"] {
		cfg.Host.Black = config.AgentKind(*blackAgent)
	}
	if set["seed"] {
		cfg.Host.Seed = *seed
	}
	if set["maxplies"] {
		cfg.Host.MaxPlies = *maxPlies
	}
	if set["games"] {
		cfg.Host.Games = *games
	}
	if set["fen"] {
		cfg.Host.StartFEN = *fenString
	}
}

// applyPerftFlags configures move tree counting.
func applyPerftFlags(cfg *config.Config, set map[string]bool) {
	if set["perft"] {
		cfg.Perft.Depth = *perftDepth
	}
	if set["workers"] && *perftWorkers > 0 {
		cfg.Perft.Workers = *perftWorkers
	}
	if set["hash"] {
		cfg.Perft.Cache = *perftHash
	}
	cfg.Perft.Divide = cfg.Perft.Divide || *perftDivide
	cfg.Perft.Verify = cfg.Perft.Verify || *perftVerify
}

// applyOutputFlags configures position and game output.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["w"] {
		cfg.Output.LineLength = *lineLength
	}
	cfg.Output.JSON = cfg.Output.JSON || *jsonOutput
}
