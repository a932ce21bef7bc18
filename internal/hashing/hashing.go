// Package hashing computes Zobrist keys for positions and remembers move
// tree counts by key.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
)

// keySeed fixes the key table so keys are stable between runs.
const keySeed = 0x5eed

// keyTable holds one random number per position feature.
type keyTable struct {
	pieces      [chess.NumColours][7][64]uint64 // indexed by PieceType
	castles     [chess.NumColours][4]uint64     // indexed by CastleRights
	enPassant   [chess.BoardSize]uint64         // by file
	blackToMove uint64
}

var keys = newKeyTable(keySeed)

func newKeyTable(seed int64) *keyTable {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: keys need no crypto randomness
	t := &keyTable{}
	for c := range t.pieces {
		for p := range t.pieces[c] {
			for sq := range t.pieces[c][p] {
				t.pieces[c][p][sq] = rng.Uint64()
			}
		}
		for r := range t.castles[c] {
			t.castles[c][r] = rng.Uint64()
		}
	}
	for f := range t.enPassant {
		t.enPassant[f] = rng.Uint64()
	}
	t.blackToMove = rng.Uint64()
	return t
}

// Key returns the Zobrist key of s: piece placement, side to move, castling
// rights and en passant file. The move history and clocks are ignored.
func Key(s *engine.State) uint64 {
	var key uint64
	board := s.Board()
	for _, colour := range chess.Colours {
		c := colour.Index()
		for _, pos := range board.PositionsFor(colour) {
			p, _ := board.PieceAt(pos)
			key ^= keys.pieces[c][p.Type][pos.Rank*chess.BoardSize+pos.File]
		}
		key ^= keys.castles[c][s.CastleRights(colour)]
	}
	if s.ActiveColour() == chess.Black {
		key ^= keys.blackToMove
	}
	if ep, ok := s.EnPassantTarget(); ok {
		key ^= keys.enPassant[ep.File]
	}
	return key
}
