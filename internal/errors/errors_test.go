package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrParse", ErrParse},
		{"ErrInvalidState", ErrInvalidState},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrGameOver", ErrGameOver},
		{"ErrGameNotFound", ErrGameNotFound},
		{"ErrNotYourTurn", ErrNotYourTurn},
		{"ErrStaleState", ErrStaleState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("tick failed: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

// TestNotationError_Kinds verifies the two notation error kinds stay distinct
func TestNotationError_Kinds(t *testing.T) {
	parseErr := NewParseError("fen", "rnbqkbnr/ppp")
	stateErr := NewInvalidStateError("san", "O-O")

	if !errors.Is(parseErr, ErrParse) {
		t.Error("errors.Is(parseErr, ErrParse) = false, want true")
	}
	if errors.Is(parseErr, ErrInvalidState) {
		t.Error("errors.Is(parseErr, ErrInvalidState) = true, want false")
	}
	if !errors.Is(stateErr, ErrInvalidState) {
		t.Error("errors.Is(stateErr, ErrInvalidState) = false, want true")
	}
}

// TestNotationError_Error verifies the message names the notation and token
func TestNotationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotationError
		contains []string
	}{
		{
			name:     "parse",
			err:      NewParseError("square", "z9"),
			contains: []string{"square", "parse error", `"z9"`},
		},
		{
			name:     "invalid state with detail",
			err:      NewInvalidStateError("san", "Nf6").WithDetail("no legal move matches"),
			contains: []string{"san", "invalid state", `"Nf6"`, "no legal move matches"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

// TestNotationError_WithDetailCopies verifies WithDetail leaves the receiver untouched
func TestNotationError_WithDetailCopies(t *testing.T) {
	base := NewParseError("uci", "e2e9")
	detailed := base.WithDetail("rank %d", 9)

	if base.Detail != "" {
		t.Errorf("base.Detail = %q, want empty", base.Detail)
	}
	if detailed.Detail != "rank 9" {
		t.Errorf("detailed.Detail = %q, want %q", detailed.Detail, "rank 9")
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *GameError
		want string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameID:   "abc",
				PlyNum:   12,
				MoveText: "Nxe5",
			},
			want: `game abc, ply 12, move "Nxe5": illegal move`,
		},
		{
			name: "ply only",
			err:  &GameError{Err: ErrInvalidState, PlyNum: 3},
			want: "ply 3: invalid state",
		},
		{
			name: "no context",
			err:  &GameError{Err: ErrGameOver},
			want: "game over",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestGameError_As verifies that errors.As works through nested wrappers
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      NewInvalidStateError("san", "O-O-O"),
		PlyNum:   24,
		MoveText: "O-O-O",
	}
	wrapped := fmt.Errorf("replay failed: %w", gameErr)

	var extracted *GameError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract GameError")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}

	var notation *NotationError
	if !As(wrapped, &notation) {
		t.Fatal("As() could not extract NotationError")
	}
	if notation.Token != "O-O-O" {
		t.Errorf("notation.Token = %q, want %q", notation.Token, "O-O-O")
	}
	if !Is(wrapped, ErrInvalidState) {
		t.Error("Is(wrapped, ErrInvalidState) = false, want true")
	}
}

// TestWrap verifies the Wrap helpers
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrapf(ErrIllegalMove, "move %d", 15)
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
