package engine

import "github.com/lgbarn/checkmate-go/internal/chess"

// IsCheckAgainst returns true if colour's king could be captured by one of
// the opponent's pseudo-legal replies.
func (s *State) IsCheckAgainst(colour chess.Colour) bool {
	for _, pos := range s.board.PositionsFor(colour.Opposite()) {
		for _, m := range s.movesFrom(pos, LookaheadOnly, nil) {
			if m.Taken.Type == chess.King {
				return true
			}
		}
	}
	return false
}

// InCheck returns true if the side to move is in check.
func (s *State) InCheck() bool {
	return s.IsCheckAgainst(s.active)
}

// leavesInCheck reports whether playing m would leave the mover's own king
// capturable.
func (s *State) leavesInCheck(m chess.Move) bool {
	return s.probe(m).IsCheckAgainst(m.Piece.Colour)
}

// GivesCheck reports whether playing m checks the opponent.
func (s *State) GivesCheck(m chess.Move) bool {
	return s.probe(m).IsCheckAgainst(m.Piece.Colour.Opposite())
}

// IsAttacked reports whether a piece of colour standing on pos could be
// captured by the opponent's next move.
func (s *State) IsAttacked(pos chess.Position, colour chess.Colour) bool {
	for _, from := range s.board.PositionsFor(colour.Opposite()) {
		for _, m := range s.movesFrom(from, LookaheadOnly, nil) {
			if m.To == pos && m.IsCapture() {
				return true
			}
		}
	}
	return false
}
