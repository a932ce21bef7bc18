package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/checkmate-go/internal/chess"
)

// MoveStrings returns the long algebraic form of each move, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SortedMoveStrings is MoveStrings sorted, for order-independent comparisons.
func SortedMoveStrings(moves []chess.Move) []string {
	out := MoveStrings(moves)
	sort.Strings(out)
	return out
}

// FindMove returns the move whose long algebraic form is uci.
// It calls t.Fatal if there is none.
func FindMove(t testing.TB, moves []chess.Move, uci string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not found among %v", uci, MoveStrings(moves))
	return chess.Move{}
}

// Square parses an algebraic square name, calling t.Fatal on error.
func Square(t testing.TB, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return pos
}
