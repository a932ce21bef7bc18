// Package output writes hosted games as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/host"
	"github.com/lgbarn/checkmate-go/internal/notation"
)

// SevenTagRoster lists the tags every exported game carries, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// terminations maps an end condition to its PGN Termination value.
var terminations = map[engine.Condition]string{
	engine.Checkmate:            "checkmate",
	engine.Stalemate:            "stalemate",
	engine.InsufficientMaterial: "insufficient material",
	engine.Surrender:            "resignation",
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of 0 means
// 80 columns.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Tag is one PGN tag pair.
type Tag struct {
	Name, Value string
}

// GameTags returns the tags describing g as the round'th game of a session.
func GameTags(g *host.Game, round int) []Tag {
	tags := []Tag{
		{"Event", "checkmate game"},
		{"Site", "?"},
		{"Date", "????.??.??"},
		{"Round", fmt.Sprint(round)},
		{"White", SeatName(g.Agent(chess.White))},
		{"Black", SeatName(g.Agent(chess.Black))},
		{"Result", resultToken(g)},
	}

	if fen := engine.FormatFEN(g.Start()); fen != engine.InitialFEN {
		tags = append(tags, Tag{"SetUp", "1"}, Tag{"FEN", fen})
	}
	tags = append(tags, Tag{"PlyCount", fmt.Sprint(len(playedMoves(g)))})

	termination := "unterminated"
	if r, over := g.Result(); over {
		termination = terminations[r.Condition]
	}
	return append(tags, Tag{"Termination", termination})
}

// SeatName names the kind of agent playing a seat.
func SeatName(a host.Agent) string {
	switch a.(type) {
	case *host.RandomAgent:
		return "random"
	case *host.NoBlunderAgent:
		return "noblunder"
	case *host.ManualAgent:
		return "manual"
	}
	return "?"
}

// OutputGame writes g in PGN format: tag pairs, a blank line, movetext
// wrapped at lineLength and a blank line.
func OutputGame(w io.Writer, g *host.Game, round, lineLength int) {
	for _, tag := range GameTags(g, round) {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag.Name, escapeTagValue(tag.Value))
	}
	fmt.Fprintln(w)

	outputMoves(g, NewOutputWriter(w, lineLength))
	fmt.Fprintln(w)
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the moves played since the start of g, then the result.
func outputMoves(g *host.Game, ow *OutputWriter) {
	s := g.Start()
	moveNum := s.FullmoveNumber()
	isWhite := s.ActiveColour() == chess.White

	for i, m := range playedMoves(g) {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}

		ow.Write(notation.FormatMoveWithCheck(s, m))
		s = s.NextForMove(m)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.Write(resultToken(g))
	ow.NewLine()
}

// playedMoves returns the moves made in g, excluding any history its start
// state already carried.
func playedMoves(g *host.Game) []chess.Move {
	return g.State().History()[g.Start().Ply():]
}

func resultToken(g *host.Game) string {
	if r, over := g.Result(); over {
		return r.Score()
	}
	return "*"
}
