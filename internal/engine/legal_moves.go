package engine

import "github.com/lgbarn/checkmate-go/internal/chess"

// Mode selects how far move generation goes.
type Mode int

const (
	// Strict produces legal moves: every candidate is played on a copy of
	// the board and discarded if it leaves the mover's king capturable.
	Strict Mode = iota

	// LookaheadOnly produces pseudo-legal moves without the self-check
	// filter or castling. It is used only to find attacked squares, which
	// bounds check detection to one extra level of generation.
	LookaheadOnly
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Strict {
		return "Strict"
	}
	return "LookaheadOnly"
}

// stepCondition restricts which target squares tryStep accepts.
type stepCondition int

const (
	anyStep     stepCondition = iota // empty or enemy
	captureOnly                      // enemy only
	quietOnly                        // empty only
)

// moveBuilder accumulates the moves of one piece on one square.
type moveBuilder struct {
	state *State
	from  chess.Position
	piece chess.Piece
	mode  Mode
	moves []chess.Move
}

// tryStep offers a move to target. It returns true when the square is
// reachable under cond, whether or not the self-check filter then keeps
// the move; sliding and double pushes continue past filtered squares.
func (b *moveBuilder) tryStep(target chess.Position, cond stepCondition) bool {
	if !target.IsValid() {
		return false
	}
	defender, occupied := b.state.board.PieceAt(target)
	if occupied && defender.Colour == b.piece.Colour {
		return false
	}
	if (cond == captureOnly && !occupied) || (cond == quietOnly && occupied) {
		return false
	}

	m := chess.NewMove(b.piece, b.from, target)
	if occupied {
		m.Taken = defender
	}
	b.push(m)
	return true
}

// push applies the self-check filter and records m, expanding a pawn
// reaching its last rank into the four promotion variants.
func (b *moveBuilder) push(m chess.Move) bool {
	if b.mode == Strict && b.state.leavesInCheck(m) {
		return false
	}
	if m.Piece.Type == chess.Pawn && m.To.Rank == m.Piece.Colour.PromotionRank() {
		for _, pt := range chess.PromotionTypes {
			b.moves = append(b.moves, m.WithPromotion(pt))
		}
		return true
	}
	b.moves = append(b.moves, m)
	return true
}

// walk casts a ray from the piece, stopping at the first occupied square
// or the edge of the board.
func (b *moveBuilder) walk(dir chess.Direction) {
	for to := b.from.Add(dir); b.tryStep(to, anyStep); to = to.Add(dir) {
		if !b.state.board.IsEmpty(to) {
			return
		}
	}
}

// LegalMoves returns the legal moves of the side to move, in generation order.
func (s *State) LegalMoves() []chess.Move {
	return s.LegalMovesFor(s.active)
}

// LegalMovesFor returns the legal moves of colour.
func (s *State) LegalMovesFor(colour chess.Colour) []chess.Move {
	return s.MovesFor(colour, Strict)
}

// MovesFor generates moves for every piece of colour, piece by piece in
// board occupancy order.
func (s *State) MovesFor(colour chess.Colour, mode Mode) []chess.Move {
	var moves []chess.Move
	for _, pos := range s.board.PositionsFor(colour) {
		moves = s.movesFrom(pos, mode, moves)
	}
	return moves
}

// MovesFrom returns the moves of the piece standing on pos.
func (s *State) MovesFrom(pos chess.Position, mode Mode) []chess.Move {
	return s.movesFrom(pos, mode, nil)
}

// movesFrom appends the moves of the piece on pos to moves.
func (s *State) movesFrom(pos chess.Position, mode Mode, moves []chess.Move) []chess.Move {
	piece, ok := s.board.PieceAt(pos)
	if !ok {
		return moves
	}
	b := moveBuilder{state: s, from: pos, piece: piece, mode: mode, moves: moves}
	generate(&b)
	return b.moves
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (s *State) HasLegalMoves() bool {
	for _, pos := range s.board.PositionsFor(s.active) {
		if len(s.movesFrom(pos, Strict, nil)) > 0 {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of the legal moves of this state.
func (s *State) IsLegal(m chess.Move) bool {
	if p, ok := s.board.PieceAt(m.From); !ok || p.Colour != s.active {
		return false
	}
	for _, legal := range s.movesFrom(m.From, Strict, nil) {
		if sameMove(legal, m) {
			return true
		}
	}
	return false
}

// sameMove compares moves by value, following the castle rook pointer.
func sameMove(a, b chess.Move) bool {
	if (a.Castle == nil) != (b.Castle == nil) {
		return false
	}
	if a.Castle != nil && *a.Castle != *b.Castle {
		return false
	}
	return a.From == b.From && a.To == b.To && a.Piece == b.Piece &&
		a.Taken == b.Taken && a.Promotion == b.Promotion
}
