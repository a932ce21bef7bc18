package notation

import (
	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

const formatUCI = "uci"

// ParseUCI resolves a long algebraic move such as "e2e4" or "e7e8q"
// against the legal moves of s.
func ParseUCI(s *engine.State, text string) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, errors.NewParseError(formatUCI, text)
	}
	from, err := chess.ParsePosition(text[0:2])
	if err != nil {
		return chess.Move{}, errors.NewParseError(formatUCI, text).WithDetail("bad origin")
	}
	to, err := chess.ParsePosition(text[2:4])
	if err != nil {
		return chess.Move{}, errors.NewParseError(formatUCI, text).WithDetail("bad destination")
	}
	promotion := chess.NoPieceType
	if len(text) == 5 {
		promotion = chess.PieceTypeFromLetter(text[4])
		if promotion == chess.NoPieceType || promotion == chess.Pawn || promotion == chess.King {
			return chess.Move{}, errors.NewParseError(formatUCI, text).WithDetail("bad promotion piece")
		}
	}

	for _, m := range s.MovesFrom(from, engine.Strict) {
		if m.Piece.Colour == s.ActiveColour() && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.Move{}, errors.NewInvalidStateError(formatUCI, text).WithDetail("no legal move for %v", s.ActiveColour())
}

// FormatUCI writes m in long algebraic form.
func FormatUCI(m chess.Move) string {
	return m.String()
}

// ParseAny reads text as long algebraic notation when it looks like it,
// and as short algebraic notation otherwise.
func ParseAny(s *engine.State, text string) (chess.Move, error) {
	if looksLikeUCI(text) {
		return ParseUCI(s, text)
	}
	return ParseMove(s, text)
}

// looksLikeUCI returns true for a square pair with an optional promotion letter.
func looksLikeUCI(text string) bool {
	if len(text) != 4 && len(text) != 5 {
		return false
	}
	return isFile(text[0]) && isRank(text[1]) && isFile(text[2]) && isRank(text[3])
}
