package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated FEN fields.
const fenFields = 6

// ParseFEN creates a state from a FEN string. Malformed fields are reported
// as ErrParse, impossible positions as ErrInvalidState.
func ParseFEN(fen string) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, errors.NewParseError("fen", fen).
			WithDetail("want %d fields, got %d", fenFields, len(parts))
	}

	sb := NewStateBuilder()
	if err := parsePiecePlacement(sb, parts[0]); err != nil {
		return nil, err
	}
	if err := parseActiveColour(sb, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(sb, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(sb, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(sb, parts[4], parts[5]); err != nil {
		return nil, err
	}

	s, err := sb.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "fen %q", fen)
	}
	return s, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is intended for
// constant positions.
func MustParseFEN(fen string) *State {
	s, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// parsePiecePlacement parses the piece placement field, rank 8 first.
func parsePiecePlacement(sb *StateBuilder, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewParseError("fen", placement).
			WithDetail("want %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if file >= chess.BoardSize {
				return errors.NewParseError("fen", row).WithDetail("rank %d overflows", rank+1)
			}
			if c >= '1' && c <= '8' {
				if j > 0 && row[j-1] >= '1' && row[j-1] <= '8' {
					return errors.NewParseError("fen", row).WithDetail("adjacent empty-square counts")
				}
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFEN(c)
			if !ok {
				return errors.NewParseError("fen", string(c)).WithDetail("invalid piece character")
			}
			sb.Place(piece, chess.Pos(rank, file))
			file++
		}
		if file != chess.BoardSize {
			return errors.NewParseError("fen", row).
				WithDetail("rank %d has %d squares", rank+1, file)
		}
	}
	return nil
}

// parseActiveColour parses the side to move field.
func parseActiveColour(sb *StateBuilder, field string) error {
	switch field {
	case "w":
		sb.SetActive(chess.White)
	case "b":
		sb.SetActive(chess.Black)
	default:
		return errors.NewParseError("fen", field).WithDetail("invalid side to move")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters
// must appear in KQkq order.
func parseCastlingRights(sb *StateBuilder, field string) error {
	if field == "-" {
		return nil
	}
	var rights [chess.NumColours]chess.CastleRights
	last := -1
	for _, c := range []byte(field) {
		if i := strings.IndexByte("KQkq", c); i >= 0 {
			if i <= last {
				return errors.NewParseError("fen", field).WithDetail("castling %q out of KQkq order", c)
			}
			last = i
		}
		var colour chess.Colour
		var side chess.CastleRights
		switch c {
		case 'K':
			colour, side = chess.White, chess.KingSide
		case 'Q':
			colour, side = chess.White, chess.QueenSide
		case 'k':
			colour, side = chess.Black, chess.KingSide
		case 'q':
			colour, side = chess.Black, chess.QueenSide
		default:
			return errors.NewParseError("fen", field).WithDetail("invalid castling character %q", c)
		}
		rights[colour] |= side
	}
	for _, colour := range chess.Colours {
		sb.SetCastles(colour, rights[colour])
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(sb *StateBuilder, field string) error {
	if field == "-" {
		return nil
	}
	pos, err := chess.ParsePosition(field)
	if err != nil {
		return errors.NewParseError("fen", field).WithDetail("invalid en passant square")
	}
	sb.SetEnPassant(pos)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(sb *StateBuilder, halfField, fullField string) error {
	halfmove, err := strconv.Atoi(halfField)
	if err != nil || halfmove < 0 {
		return errors.NewParseError("fen", halfField).WithDetail("invalid halfmove clock")
	}
	fullmove, err := strconv.Atoi(fullField)
	if err != nil || fullmove < 1 {
		return errors.NewParseError("fen", fullField).WithDetail("invalid fullmove number")
	}
	sb.SetClocks(halfmove, fullmove)
	return nil
}

// FormatFEN converts a state to a FEN string.
func FormatFEN(s *State) string {
	var sb strings.Builder

	writePiecePlacement(&sb, s.board)
	sb.WriteByte(' ')
	sb.WriteByte(s.active.FENLetter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, s)
	sb.WriteByte(' ')
	writeEnPassant(&sb, s)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.fullmoveNumber))

	return sb.String()
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.Pos(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, s *State) {
	rights := s.castles[chess.White].FEN(chess.White) + s.castles[chess.Black].FEN(chess.Black)
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, s *State) {
	if s.hasEnPassant {
		sb.WriteString(s.enPassant.String())
	} else {
		sb.WriteByte('-')
	}
}

// String returns the FEN of the state.
func (s *State) String() string {
	return FormatFEN(s)
}
