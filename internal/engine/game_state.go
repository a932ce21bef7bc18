package engine

import (
	"fmt"

	"github.com/lgbarn/checkmate-go/internal/chess"
)

// Condition is the reason a game ended.
type Condition int

const (
	Checkmate Condition = iota
	Stalemate
	InsufficientMaterial
	Surrender
)

// String returns the condition name.
func (c Condition) String() string {
	switch c {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	case Surrender:
		return "Surrender"
	}
	return "Unknown"
}

// EndResult describes a finished game. Winner is meaningful only when
// Decisive is set; otherwise the game is drawn.
type EndResult struct {
	Condition Condition
	Winner    chess.Colour
	Decisive  bool
}

// Win returns a decisive result.
func Win(condition Condition, winner chess.Colour) EndResult {
	return EndResult{Condition: condition, Winner: winner, Decisive: true}
}

// Draw returns a drawn result.
func Draw(condition Condition) EndResult {
	return EndResult{Condition: condition}
}

// Resignation returns the result of colour giving up.
func Resignation(colour chess.Colour) EndResult {
	return Win(Surrender, colour.Opposite())
}

// IsDraw returns true if nobody won.
func (r EndResult) IsDraw() bool {
	return !r.Decisive
}

// Score returns the PGN result token: "1-0", "0-1" or "1/2-1/2".
func (r EndResult) Score() string {
	switch {
	case !r.Decisive:
		return "1/2-1/2"
	case r.Winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// String returns e.g. "Checkmate(White)" or "Draw(Stalemate)".
func (r EndResult) String() string {
	if r.Decisive {
		return fmt.Sprintf("%v(%v)", r.Condition, r.Winner)
	}
	return fmt.Sprintf("Draw(%v)", r.Condition)
}

// CheckResult returns the result if the game is over: a draw when only
// the two kings remain, otherwise checkmate or stalemate when the side to
// move has no legal move.
func (s *State) CheckResult() (EndResult, bool) {
	if s.board.HasOnlyKing(chess.White) && s.board.HasOnlyKing(chess.Black) {
		return Draw(InsufficientMaterial), true
	}
	if s.HasLegalMoves() {
		return EndResult{}, false
	}
	if s.InCheck() {
		return Win(Checkmate, s.active.Opposite()), true
	}
	return Draw(Stalemate), true
}

// IsCheckmate returns true if the side to move is checkmated.
func (s *State) IsCheckmate() bool {
	r, over := s.CheckResult()
	return over && r.Condition == Checkmate
}

// IsStalemate returns true if the side to move is stalemated.
func (s *State) IsStalemate() bool {
	r, over := s.CheckResult()
	return over && r.Condition == Stalemate
}
