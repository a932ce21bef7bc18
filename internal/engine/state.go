// Package engine provides chess move generation, game state transitions and
// the FEN codec.
//
// A State is an immutable snapshot: every transition returns a new State and
// leaves its parent untouched, so States may be shared freely between
// goroutines.
package engine

import (
	"github.com/lgbarn/checkmate-go/internal/chess"
)

// State is an immutable game position: board, side to move, history and
// the rights that depend on history.
type State struct {
	board   *chess.Board
	active  chess.Colour
	history *historyNode

	castles [chess.NumColours]chess.CastleRights

	// Square skipped by the last double pawn push; valid only for the
	// very next move.
	enPassant    chess.Position
	hasEnPassant bool

	halfmoveClock  int
	fullmoveNumber int
}

// historyNode is one link of the move history. Successor states share
// their parent's list.
type historyNode struct {
	move chess.Move
	prev *historyNode
	ply  int
}

// NewState returns the standard starting position with White to move.
func NewState() *State {
	return &State{
		board:          chess.InitialBoard(),
		active:         chess.White,
		castles:        [chess.NumColours]chess.CastleRights{chess.AllCastles, chess.AllCastles},
		fullmoveNumber: 1,
	}
}

// Board returns the board. It must not be modified.
func (s *State) Board() *chess.Board {
	return s.board
}

// ActiveColour returns the colour to move next.
func (s *State) ActiveColour() chess.Colour {
	return s.active
}

// CastleRights returns the castling rights the colour still holds.
func (s *State) CastleRights(colour chess.Colour) chess.CastleRights {
	return s.castles[colour]
}

// EnPassantTarget returns the square a pawn skipped on the previous move.
func (s *State) EnPassantTarget() (chess.Position, bool) {
	return s.enPassant, s.hasEnPassant
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (s *State) HalfmoveClock() int {
	return s.halfmoveClock
}

// FullmoveNumber returns the move number, incremented after each Black move.
func (s *State) FullmoveNumber() int {
	return s.fullmoveNumber
}

// Ply returns the number of moves played to reach this state.
func (s *State) Ply() int {
	if s.history == nil {
		return 0
	}
	return s.history.ply
}

// History returns the moves played to reach this state, oldest first.
func (s *State) History() []chess.Move {
	moves := make([]chess.Move, s.Ply())
	for n := s.history; n != nil; n = n.prev {
		moves[n.ply-1] = n.move
	}
	return moves
}

// LastMove returns the most recent move.
func (s *State) LastMove() (chess.Move, bool) {
	if s.history == nil {
		return chess.Move{}, false
	}
	return s.history.move, true
}

// Visited reports whether any move in the history ended on pos.
func (s *State) Visited(pos chess.Position) bool {
	for n := s.history; n != nil; n = n.prev {
		if n.move.To == pos {
			return true
		}
	}
	return false
}

// NextForMove returns the state after playing m. The move must come from
// LegalMoves of this state; anything else is a programming error.
func (s *State) NextForMove(m chess.Move) *State {
	next := &State{
		board:          s.board.ApplyMove(m),
		active:         s.active.Opposite(),
		history:        &historyNode{move: m, prev: s.history, ply: s.Ply() + 1},
		castles:        s.castles,
		halfmoveClock:  s.halfmoveClock + 1,
		fullmoveNumber: s.fullmoveNumber,
	}

	mover := m.Piece.Colour
	next.castles[mover] = next.castles[mover].Without(m.DisallowedCastles())
	if m.IsCapture() {
		next.castles[m.Taken.Colour] = next.castles[m.Taken.Colour].Without(m.CapturedCastles())
	}

	if m.IsDoublePush() {
		next.enPassant = chess.Pos((m.From.Rank+m.To.Rank)/2, m.From.File)
		next.hasEnPassant = true
	}

	if m.Piece.Type == chess.Pawn || m.IsCapture() {
		next.halfmoveClock = 0
	}
	if mover == chess.Black {
		next.fullmoveNumber++
	}
	return next
}

// probe returns a bare state with m applied, used only to ask whether the
// mover's king would be capturable.
func (s *State) probe(m chess.Move) *State {
	return &State{
		board:  s.board.ApplyMove(m),
		active: m.Piece.Colour.Opposite(),
	}
}
