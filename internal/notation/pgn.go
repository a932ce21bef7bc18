package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

// resultTokens are the game termination markers of a move list.
var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// isMoveNumber returns true for "12." and "12...".
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// stripMoveNumber removes a move number glued to a move, as in "1.e4".
func stripMoveNumber(tok string) string {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 || i == len(tok) || tok[i] != '.' {
		return tok
	}
	return strings.TrimLeft(tok[i:], ".")
}

// moveTokens returns the move texts of a move list in order.
func moveTokens(text string) []string {
	var moves []string
	for _, tok := range strings.Fields(text) {
		if tok == "..." || isMoveNumber(tok) || resultTokens[tok] {
			continue
		}
		moves = append(moves, stripMoveNumber(tok))
	}
	return moves
}

// ParsePGN replays a move list such as "1. e4 e5 2. Nf3 Nc6" from the
// initial position.
func ParsePGN(text string) (*engine.State, error) {
	return ParsePGNFrom(engine.NewState(), text)
}

// ParsePGNFrom replays a move list from s. A move that cannot be read or
// played is reported as a GameError naming its ply and text.
func ParsePGNFrom(s *engine.State, text string) (*engine.State, error) {
	for _, tok := range moveTokens(text) {
		m, err := ParseMove(s, tok)
		if err != nil {
			return nil, &errors.GameError{Err: err, PlyNum: s.Ply() + 1, MoveText: tok}
		}
		s = s.NextForMove(m)
	}
	return s, nil
}

// FormatPGN writes the move history of s as numbered turns. An unfinished
// final turn ends in "...", and a history that began with Black to move
// opens with "n. ...".
func FormatPGN(s *engine.State) string {
	history := s.History()
	if len(history) == 0 {
		return ""
	}

	colour, number := startOf(s)
	var turns []string
	var turn strings.Builder
	for i, m := range history {
		san := FormatMove(m)
		switch {
		case colour == chess.White:
			fmt.Fprintf(&turn, "%d. %s", number, san)
			if i == len(history)-1 {
				turn.WriteString(" ...")
			}
		case i == 0:
			fmt.Fprintf(&turn, "%d. ... %s", number, san)
		default:
			fmt.Fprintf(&turn, " %s", san)
		}
		if colour == chess.Black || i == len(history)-1 {
			turns = append(turns, turn.String())
			turn.Reset()
			number++
		}
		colour = colour.Opposite()
	}
	return strings.Join(turns, " ")
}

// startOf returns the side to move and the move number of the position
// the history of s began from.
func startOf(s *engine.State) (chess.Colour, int) {
	ply := s.Ply()
	colour := s.ActiveColour()
	if ply%2 == 1 {
		colour = colour.Opposite()
	}
	blackMoves := ply / 2
	if colour == chess.Black {
		blackMoves = (ply + 1) / 2
	}
	return colour, s.FullmoveNumber() - blackMoves
}
