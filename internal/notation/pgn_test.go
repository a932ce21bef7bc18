package notation

import (
	"testing"

	"github.com/lgbarn/checkmate-go/internal/chess"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
	"github.com/lgbarn/checkmate-go/internal/testutil"
)

func TestParsePGN(t *testing.T) {
	s, err := ParsePGN("1. e4 e5 2. Nf3 Nc6")
	testutil.AssertNoError(t, err)

	tests := []struct {
		square string
		want   chess.Piece
	}{
		{"e4", chess.W(chess.Pawn)},
		{"e5", chess.B(chess.Pawn)},
		{"f3", chess.W(chess.Knight)},
		{"c6", chess.B(chess.Knight)},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, ok := s.Board().PieceAt(testutil.Square(t, tt.square))
			if !ok || got != tt.want {
				t.Errorf("PieceAt(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
	if s.Ply() != 4 {
		t.Errorf("Ply() = %d, want 4", s.Ply())
	}
}

func TestParsePGNTokens(t *testing.T) {
	want := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	tests := []struct {
		name string
		pgn  string
	}{
		{"spaced numbers", "1. e4 e5 2. Nf3 Nc6"},
		{"glued numbers", "1.e4 e5 2.Nf3 Nc6"},
		{"black move numbers", "1. e4 1... e5 2. Nf3 2... Nc6"},
		{"result token", "1. e4 e5 2. Nf3 Nc6 *"},
		{"extra whitespace", "  1. e4\te5\n2. Nf3   Nc6  "},
		{"check marks", "1. e4 e5 2. Nf3+ Nc6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParsePGN(tt.pgn)
			testutil.AssertNoError(t, err)
			if got := engine.FormatFEN(s); got != want {
				t.Errorf("FEN = %q, want %q", got, want)
			}
		})
	}
}

func TestParsePGNErrors(t *testing.T) {
	tests := []struct {
		name     string
		pgn      string
		ply      int
		moveText string
		kind     error
	}{
		{"illegal white move", "1. e4 e5 2. Nf6", 3, "Nf6", errors.ErrInvalidState},
		{"illegal first move", "1. e5", 1, "e5", errors.ErrInvalidState},
		{"garbage black move", "1. e4 ??", 2, "??", errors.ErrParse},
		{"castle token", "1. e4 e5 2. Nf3 Nc6 3. Bc4 Nf6 4. O-O", 7, "O-O", errors.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePGN(tt.pgn)
			if err == nil {
				t.Fatalf("ParsePGN(%q) succeeded, want error", tt.pgn)
			}
			testutil.AssertErrorIs(t, err, tt.kind)

			var gameErr *errors.GameError
			if !errors.As(err, &gameErr) {
				t.Fatalf("error %v is not a GameError", err)
			}
			if gameErr.PlyNum != tt.ply || gameErr.MoveText != tt.moveText {
				t.Errorf("GameError = ply %d move %q, want ply %d move %q",
					gameErr.PlyNum, gameErr.MoveText, tt.ply, tt.moveText)
			}
		})
	}
}

func TestFormatPGN(t *testing.T) {
	blackToMove := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

	tests := []struct {
		name  string
		fen   string
		moves string
		want  string
	}{
		{"no moves", engine.InitialFEN, "", ""},
		{"one move", engine.InitialFEN, "e4", "1. e4 ..."},
		{"full turns", engine.InitialFEN, "e4 e5 Nf3 Nc6", "1. e4 e5 2. Nf3 Nc6"},
		{"unfinished turn", engine.InitialFEN, "e4 e5 Nf3", "1. e4 e5 2. Nf3 ..."},
		{"captures", engine.InitialFEN, "e4 d5 exd5 Qxd5", "1. e4 d5 2. exd5 Qxd5"},
		{"black starts", blackToMove, "e5 Nf3 Nc6", "1. ... e5 2. Nf3 Nc6"},
		{"black starts unfinished", blackToMove, "e5 Nf3", "1. ... e5 2. Nf3 ..."},
		{"later move number", "4k3/8/8/8/8/8/8/R3K3 w - - 3 40", "Ra7 Kd8", "40. Ra7 Kd8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustPGN(t, mustFEN(t, tt.fen), tt.moves)
			if got := FormatPGN(s); got != tt.want {
				t.Errorf("FormatPGN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPGNRoundTrip(t *testing.T) {
	games := []string{
		"1. e4 e5 2. Nf3 Nc6 3. Bb5 a6",
		scholarsPGN + " ...",
		"1. d4 d5 2. c4 dxc4 3. e4 b5 4. a4 c6 5. axb5 cxb5",
	}

	for _, pgn := range games {
		t.Run(pgn, func(t *testing.T) {
			s, err := ParsePGN(pgn)
			testutil.AssertNoError(t, err)
			if got := FormatPGN(s); got != pgn {
				t.Errorf("FormatPGN(ParsePGN(%q)) = %q", pgn, got)
			}
		})
	}
}
