package config

import (
	"fmt"

	"github.com/lgbarn/checkmate-go/internal/errors"
)

// AgentKind names a move source for one seat of a game.
type AgentKind string

const (
	AgentRandom    AgentKind = "random"    // Uniform random legal move
	AgentNoBlunder AgentKind = "noblunder" // Avoids hanging material
	AgentManual    AgentKind = "manual"    // Moves submitted from outside
)

// HostConfig holds settings for hosted games.
type HostConfig struct {
	// White and Black choose the agent for each seat
	White AgentKind `yaml:"white"`
	Black AgentKind `yaml:"black"`

	// Seed for the random agents; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// MaxPlies stops a game that has not finished (0 = no limit)
	MaxPlies int `yaml:"max_plies"`

	// MaxGames caps the number of live games in a registry (0 = no limit)
	MaxGames int `yaml:"max_games"`

	// StartFEN is the position new games start from
	StartFEN string `yaml:"start_fen"`

	// Games is the number of games played one after another
	Games int `yaml:"games"`
}

// NewHostConfig creates a HostConfig with default values.
func NewHostConfig() *HostConfig {
	return &HostConfig{
		White:    AgentNoBlunder,
		Black:    AgentRandom,
		MaxPlies: 400,
		Games:    1,
	}
}

// Validate checks that the host configuration is valid.
func (h *HostConfig) Validate() error {
	for _, kind := range []AgentKind{h.White, h.Black} {
		switch kind {
		case AgentRandom, AgentNoBlunder, AgentManual:
		default:
			return invalid("unknown agent %q", kind)
		}
	}
	if h.MaxPlies < 0 {
		return invalid("max plies %d is negative", h.MaxPlies)
	}
	if h.MaxGames < 0 {
		return invalid("max games %d is negative", h.MaxGames)
	}
	if h.Games < 1 {
		return invalid("games %d, need at least 1", h.Games)
	}
	return nil
}

// invalid returns an ErrInvalidConfig carrying a description.
func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig)
}
