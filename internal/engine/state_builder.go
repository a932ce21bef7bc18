package engine

import (
	"fmt"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

// StateBuilder assembles a State from parts, e.g. the fields of a FEN string.
type StateBuilder struct {
	board        *chess.BoardBuilder
	active       chess.Colour
	castles      [chess.NumColours]chess.CastleRights
	enPassant    chess.Position
	hasEnPassant bool
	halfmove     int
	fullmove     int
}

// NewStateBuilder creates a builder for an empty board, White to move,
// no castling rights, move 1.
func NewStateBuilder() *StateBuilder {
	return &StateBuilder{
		board:    chess.NewBoardBuilder(),
		active:   chess.White,
		fullmove: 1,
	}
}

// Place puts piece on pos.
func (sb *StateBuilder) Place(piece chess.Piece, pos chess.Position) *StateBuilder {
	sb.board.Place(piece, pos)
	return sb
}

// SetActive sets the colour to move.
func (sb *StateBuilder) SetActive(colour chess.Colour) *StateBuilder {
	sb.active = colour
	return sb
}

// SetCastles sets the castling rights of colour.
func (sb *StateBuilder) SetCastles(colour chess.Colour, rights chess.CastleRights) *StateBuilder {
	sb.castles[colour] = rights
	return sb
}

// SetEnPassant sets the square skipped by the last double pawn push.
func (sb *StateBuilder) SetEnPassant(pos chess.Position) *StateBuilder {
	sb.enPassant = pos
	sb.hasEnPassant = true
	return sb
}

// SetClocks sets the halfmove clock and fullmove number.
func (sb *StateBuilder) SetClocks(halfmove, fullmove int) *StateBuilder {
	sb.halfmove = halfmove
	sb.fullmove = fullmove
	return sb
}

// Build validates the position and returns the State. Positions that cannot
// arise in a game are reported as ErrInvalidState.
func (sb *StateBuilder) Build() (*State, error) {
	s := &State{
		board:          sb.board.Build(),
		active:         sb.active,
		castles:        sb.castles,
		enPassant:      sb.enPassant,
		hasEnPassant:   sb.hasEnPassant,
		halfmoveClock:  sb.halfmove,
		fullmoveNumber: sb.fullmove,
	}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// validate rejects positions that no sequence of legal moves can reach.
func validate(s *State) error {
	for _, colour := range chess.Colours {
		kings := 0
		for _, pos := range s.board.PositionsFor(colour) {
			p, _ := s.board.PieceAt(pos)
			switch {
			case p.Type == chess.King:
				kings++
			case p.Type == chess.Pawn && (pos.Rank == 0 || pos.Rank == chess.BoardSize-1):
				return errors.NewInvalidStateError("position", pos.String()).
					WithDetail("%v pawn on back rank", colour)
			}
		}
		if kings != 1 {
			return errors.NewInvalidStateError("position", string(chess.NewPiece(colour, chess.King).FENLetter())).
				WithDetail("%v has %d kings", colour, kings)
		}
	}

	if s.hasEnPassant {
		if err := validateEnPassant(s); err != nil {
			return err
		}
	}

	if s.IsCheckAgainst(s.active.Opposite()) {
		return errors.NewInvalidStateError("position", fmt.Sprintf("%v to move", s.active)).
			WithDetail("%v is in check", s.active.Opposite())
	}
	return nil
}

// validateEnPassant checks the target sits behind a pawn that just
// advanced two squares.
func validateEnPassant(s *State) error {
	target := s.enPassant
	pusher := s.active.Opposite()
	token := target.String()

	if target.Rank != pusher.PawnRank()+pusher.Direction() {
		return errors.NewInvalidStateError("position", token).
			WithDetail("en passant target on wrong rank for %v to move", s.active)
	}
	if !s.board.IsEmpty(target) || !s.board.IsEmpty(target.Forward(s.active)) {
		return errors.NewInvalidStateError("position", token).
			WithDetail("en passant squares are occupied")
	}
	if p, ok := s.board.PieceAt(target.Forward(pusher)); !ok || !p.Is(pusher, chess.Pawn) {
		return errors.NewInvalidStateError("position", token).
			WithDetail("no %v pawn in front of en passant target", pusher)
	}
	return nil
}
