package output

import (
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/host"
	"github.com/lgbarn/checkmate-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string              `json:"id"`
	Tags       map[string]string   `json:"tags"`
	InitialFEN string              `json:"initialFEN,omitempty"`
	Moves      string              `json:"moves,omitempty"`
	PlyCount   int                 `json:"plyCount"`
	Final      *notation.JSONState `json:"final"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts g, the round'th game of a session, to JSON format.
func GameToJSON(g *host.Game, round int) *JSONGame {
	jg := &JSONGame{
		ID:       g.ID(),
		Tags:     make(map[string]string),
		Moves:    notation.FormatPGN(g.State()),
		PlyCount: len(playedMoves(g)),
		Final:    g.Snapshot(),
	}
	for _, tag := range GameTags(g, round) {
		jg.Tags[tag.Name] = tag.Value
	}
	if fen := engine.FormatFEN(g.Start()); fen != engine.InitialFEN {
		jg.InitialFEN = fen
	}
	return jg
}
