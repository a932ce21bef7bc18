// Package errors provides sentinel errors and error types for the checkmate engine.
// It defines the two notation failure kinds (malformed text and text that
// names no legal move or position) plus game-host conditions, as structured
// error types that allow inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrParse indicates a malformed token: wrong length, unrecognized
	// character or a grammar mismatch.
	ErrParse = errors.New("parse error")

	// ErrInvalidState indicates well-formed text with no matching legal move,
	// or a position that cannot occur in a game.
	ErrInvalidState = errors.New("invalid state")

	// ErrIllegalMove indicates a move that is not among the legal moves of the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move or tick on a game that has finished.
	ErrGameOver = errors.New("game over")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrNotYourTurn indicates a seat acting while the other colour is to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrStaleState indicates the game moved on while a seat was thinking.
	ErrStaleState = errors.New("state changed during move selection")
)

// NotationError reports text that could not be turned into a move or state.
// Err is ErrParse or ErrInvalidState.
type NotationError struct {
	Err    error  // ErrParse or ErrInvalidState
	Format string // Notation being read: "fen", "san", "pgn", "uci", "square"
	Token  string // The offending token
	Detail string // Optional explanation
}

// NewParseError returns a NotationError of kind ErrParse.
func NewParseError(format, token string) *NotationError {
	return &NotationError{Err: ErrParse, Format: format, Token: token}
}

// NewInvalidStateError returns a NotationError of kind ErrInvalidState.
func NewInvalidStateError(format, token string) *NotationError {
	return &NotationError{Err: ErrInvalidState, Format: format, Token: token}
}

// WithDetail returns a copy of e carrying an explanation.
func (e *NotationError) WithDetail(format string, args ...interface{}) *NotationError {
	out := *e
	out.Detail = fmt.Sprintf(format, args...)
	return &out
}

// Error returns a formatted error message with the notation and token.
func (e *NotationError) Error() string {
	var parts []string
	if e.Format != "" {
		parts = append(parts, e.Format)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	msg := strings.Join(parts, ": ")
	msg += fmt.Sprintf(" %q", e.Token)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with game context, including the game id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // 1-based ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, "game "+e.GameID)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
