package notation

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/testutil"
)

// oracleFENs are start positions for random playouts checked against an
// independent move generator.
var oracleFENs = map[string]string{
	"initial":   engine.InitialFEN,
	"kiwipete":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"endgame":   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"promotion": "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
}

func oraclePosition(t *testing.T, fen string) *nchess.Position {
	t.Helper()
	opt, err := nchess.FEN(fen)
	if err != nil {
		t.Fatalf("oracle rejected %q: %v", fen, err)
	}
	return nchess.NewGame(opt).Position()
}

func oracleMoves(pos *nchess.Position) []string {
	out := []string{}
	for _, m := range pos.ValidMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func placement(fen string) string {
	return strings.Fields(fen)[0]
}

// TestAgainstOracle plays seeded random games and checks the legal move
// sets, the resulting placement and the reading of the oracle's SAN at
// every ply.
func TestAgainstOracle(t *testing.T) {
	const (
		games    = 6
		maxPlies = 120
	)

	for name, fen := range oracleFENs {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			for g := 0; g < games; g++ {
				s := mustFEN(t, fen)
				pos := oraclePosition(t, fen)

				for ply := 0; ply < maxPlies; ply++ {
					ours := s.LegalMoves()
					testutil.AssertEqual(t, testutil.SortedMoveStrings(ours), oracleMoves(pos),
						"legal moves at %s", engine.FormatFEN(s))
					if len(ours) == 0 {
						break
					}

					checkOracleSAN(t, s, pos)

					m := ours[rng.Intn(len(ours))]
					var next *nchess.Move
					for _, om := range pos.ValidMoves() {
						if om.String() == m.String() {
							next = om
							break
						}
					}
					if next == nil {
						t.Fatalf("oracle has no move %s at %s", m, engine.FormatFEN(s))
					}

					s = s.NextForMove(m)
					pos = pos.Update(next)
					if got, want := placement(engine.FormatFEN(s)), placement(pos.String()); got != want {
						t.Fatalf("after %s: placement %q, oracle %q", m, got, want)
					}
				}
			}
		})
	}
}

// checkOracleSAN reads every move the oracle writes in SAN and expects
// the same move back. Castles are expected to be refused.
func checkOracleSAN(t *testing.T, s *engine.State, pos *nchess.Position) {
	t.Helper()
	for _, om := range pos.ValidMoves() {
		san := nchess.AlgebraicNotation{}.Encode(pos, om)
		m, err := ParseMove(s, san)
		switch {
		case strings.HasPrefix(san, "O-O"):
			testutil.AssertErrorIs(t, err, errors.ErrInvalidState)
		case errors.Is(err, errors.ErrParse):
			// Full square disambiguation such as "Qh4e1" is not read.
		case err != nil:
			t.Errorf("ParseMove(%q) at %s: %v", san, engine.FormatFEN(s), err)
		case m.String() != om.String():
			t.Errorf("ParseMove(%q) = %s, oracle %s", san, m, om)
		}
	}
}
