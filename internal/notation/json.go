package notation

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
)

// JSONState represents a state in JSON format.
type JSONState struct {
	FEN        string     `json:"fen"`
	Active     string     `json:"active"` // "white" or "black"
	Ply        int        `json:"ply"`
	History    []JSONMove `json:"history,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
	InCheck    bool       `json:"inCheck"`
	Result     *JSONEnd   `json:"result,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	SAN       string `json:"san"`
	UCI       string `json:"uci"`
	Color     string `json:"color"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
}

// JSONEnd represents a finished game.
type JSONEnd struct {
	Condition string `json:"condition"`
	Winner    string `json:"winner,omitempty"`
	Score     string `json:"score"`
}

// Snapshot converts a state to its JSON representation.
func Snapshot(s *engine.State) *JSONState {
	js := &JSONState{
		FEN:     engine.FormatFEN(s),
		Active:  colourName(s.ActiveColour()),
		Ply:     s.Ply(),
		InCheck: s.InCheck(),
	}

	for _, m := range s.History() {
		js.History = append(js.History, moveToJSON(m))
	}
	for _, m := range s.LegalMoves() {
		js.LegalMoves = append(js.LegalMoves, FormatUCI(m))
	}
	if r, over := s.CheckResult(); over {
		js.Result = EndToJSON(r)
	}
	return js
}

// EndToJSON converts a game result to its JSON representation.
func EndToJSON(r engine.EndResult) *JSONEnd {
	end := &JSONEnd{Condition: r.Condition.String(), Score: r.Score()}
	if r.Decisive {
		end.Winner = colourName(r.Winner)
	}
	return end
}

// MarshalState returns the indented JSON form of s.
func MarshalState(s *engine.State) ([]byte, error) {
	return json.MarshalIndent(Snapshot(s), "", "  ")
}

// WriteState writes the JSON form of s to w.
func WriteState(w io.Writer, s *engine.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot(s))
}

func moveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		SAN:    FormatMove(m),
		UCI:    FormatUCI(m),
		Color:  colourName(m.Piece.Colour),
		Piece:  m.Piece.Type.String(),
		Castle: m.IsCastle(),
	}
	if m.IsCapture() {
		jm.Captured = m.Taken.Type.String()
	}
	if m.IsPromotion() {
		jm.Promotion = m.Promotion.String()
	}
	return jm
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
