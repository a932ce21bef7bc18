// Package notation reads and writes moves and games as text.
package notation

import (
	"strings"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

const formatSAN = "san"

// noFile and noRank mark an absent origin hint.
const (
	noFile = -1
	noRank = -1
)

// decodedMove holds what could be read from a move text before it is
// resolved against a position.
type decodedMove struct {
	pieceType chess.PieceType
	fromFile  int
	fromRank  int
	capture   bool
	to        chess.Position
	promotion chess.PieceType
}

// isFile returns true if c is a file letter.
func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a rank digit.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPieceLetter returns the piece type for an uppercase piece letter.
func isPieceLetter(c byte) chess.PieceType {
	if c < 'A' || c > 'Z' {
		return chess.NoPieceType
	}
	return chess.PieceTypeFromLetter(c)
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// isCastling returns true for the O-O and O-O-O spellings.
func isCastling(text string) bool {
	t := strings.ReplaceAll(text, "0", "O")
	return t == "O-O" || t == "O-O-O"
}

// decodeSAN splits an algebraic move into its parts without looking at
// any position.
func decodeSAN(text string) (decodedMove, error) {
	move := text
	for len(move) > 0 && isCheck(move[len(move)-1]) {
		move = move[:len(move)-1]
	}
	d := decodedMove{pieceType: chess.Pawn, fromFile: noFile, fromRank: noRank}

	if move == "" {
		return d, errors.NewParseError(formatSAN, text)
	}
	if isCastling(move) {
		return d, errors.NewInvalidStateError(formatSAN, text).WithDetail("castles are written as king moves")
	}

	if i := strings.IndexByte(move, '='); i >= 0 {
		if i != len(move)-2 {
			return d, errors.NewParseError(formatSAN, text)
		}
		d.promotion = isPieceLetter(move[i+1])
		if d.promotion == chess.NoPieceType || d.promotion == chess.Pawn || d.promotion == chess.King {
			return d, errors.NewParseError(formatSAN, text).WithDetail("bad promotion piece")
		}
		move = move[:i]
	}

	if len(move) < 2 {
		return d, errors.NewParseError(formatSAN, text)
	}
	to, err := chess.ParsePosition(move[len(move)-2:])
	if err != nil {
		return d, errors.NewParseError(formatSAN, text).WithDetail("bad destination")
	}
	d.to = to

	prefix := move[:len(move)-2]
	if strings.HasSuffix(prefix, "x") {
		d.capture = true
		prefix = prefix[:len(prefix)-1]
	}

	if prefix == "" {
		return d, nil
	}
	if pt := isPieceLetter(prefix[0]); pt != chess.NoPieceType {
		d.pieceType = pt
		prefix = prefix[1:]
		// One origin hint may follow the piece letter: "Nbd2" or "R1e2".
		switch {
		case prefix == "":
		case len(prefix) == 1 && isFile(prefix[0]):
			d.fromFile = int(prefix[0] - 'a')
		case len(prefix) == 1 && isRank(prefix[0]):
			d.fromRank = int(prefix[0] - '1')
		default:
			return d, errors.NewParseError(formatSAN, text)
		}
		return d, nil
	}
	if len(prefix) == 1 && isFile(prefix[0]) {
		d.fromFile = int(prefix[0] - 'a')
		return d, nil
	}
	return d, errors.NewParseError(formatSAN, text)
}

// matches reports whether legal move m is described by d.
func (d decodedMove) matches(m chess.Move) bool {
	if m.To != d.to || m.Piece.Type != d.pieceType {
		return false
	}
	if d.capture && !m.IsCapture() {
		return false
	}
	if d.fromFile != noFile && m.From.File != d.fromFile {
		return false
	}
	if d.fromRank != noRank && m.From.Rank != d.fromRank {
		return false
	}
	if d.promotion != chess.NoPieceType && m.Promotion != d.promotion {
		return false
	}
	return true
}

// ParseMove resolves an algebraic move such as "e4", "Nf3", "exd5" or
// "e8=Q+" against the legal moves of s. The first legal move that fits
// wins; promotions default to a queen. Castles are written as the king's
// move ("Kg1"); "O-O" is rejected.
func ParseMove(s *engine.State, text string) (chess.Move, error) {
	d, err := decodeSAN(text)
	if err != nil {
		return chess.Move{}, err
	}
	for _, m := range s.LegalMoves() {
		if d.matches(m) {
			return m, nil
		}
	}
	return chess.Move{}, errors.NewInvalidStateError(formatSAN, text).WithDetail("no legal move for %v", s.ActiveColour())
}

// FormatMove writes m in short algebraic form. Pawns are written by their
// file when capturing. Check suffixes and disambiguation are not written.
func FormatMove(m chess.Move) string {
	var sb strings.Builder
	if m.Piece.Type == chess.Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.From.FileLetter())
		}
	} else {
		sb.WriteByte(m.Piece.Type.Letter())
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}

// FormatMoveWithCheck is FormatMove plus "+" or "#" when m, played in s,
// checks or mates the opponent.
func FormatMoveWithCheck(s *engine.State, m chess.Move) string {
	text := FormatMove(m)
	if !s.GivesCheck(m) {
		return text
	}
	if s.NextForMove(m).IsCheckmate() {
		return text + "#"
	}
	return text + "+"
}
