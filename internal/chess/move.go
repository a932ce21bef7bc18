package chess

// RookMove is the secondary rook relocation of a castle.
type RookMove struct {
	From Position
	To   Position
}

// Move is a completed, self-describing ply. It can be replayed onto any
// compatible board without further context.
type Move struct {
	// Source and destination squares of the moving piece.
	From Position
	To   Position

	// The piece being moved, as it was before the move.
	Piece Piece

	// The piece captured (empty if no capture). For en passant this is the
	// pawn beside the destination, not the piece on To.
	Taken Piece

	// The piece type promoted to (NoPieceType if not a promotion).
	Promotion PieceType

	// The rook relocation when the move is a castle.
	Castle *RookMove
}

// NewMove creates a quiet move of piece from one square to another.
func NewMove(piece Piece, from, to Position) Move {
	return Move{From: from, To: to, Piece: piece}
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Taken.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if this move is castling.
func (m Move) IsCastle() bool {
	return m.Castle != nil
}

// IsDoublePush returns true if this move is a pawn advancing two ranks.
func (m Move) IsDoublePush() bool {
	if m.Piece.Type != Pawn {
		return false
	}
	d := m.To.Rank - m.From.Rank
	return m.From.File == m.To.File && (d == 2 || d == -2)
}

// WithPromotion returns a copy of the move promoting to pieceType.
func (m Move) WithPromotion(pieceType PieceType) Move {
	m.Promotion = pieceType
	return m
}

// WithTaken returns a copy of the move capturing taken.
func (m Move) WithTaken(taken Piece) Move {
	m.Taken = taken
	return m
}

// DisallowedCastles returns the castling rights the mover loses by making this move.
func (m Move) DisallowedCastles() CastleRights {
	switch m.Piece.Type {
	case King:
		return AllCastles
	case Rook:
		return cornerRights(m.Piece.Colour, m.From)
	}
	return NoCastles
}

// CapturedCastles returns the castling rights the defender loses because a
// rook was captured on its home corner.
func (m Move) CapturedCastles() CastleRights {
	if m.Taken.Type != Rook {
		return NoCastles
	}
	return cornerRights(m.Taken.Colour, m.To)
}

// cornerRights returns the right tied to a rook starting on pos.
func cornerRights(colour Colour, pos Position) CastleRights {
	if pos.Rank != colour.HomeRank() {
		return NoCastles
	}
	switch pos.File {
	case KingSideRookFile:
		return KingSide
	case QueenSideRookFile:
		return QueenSide
	}
	return NoCastles
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// Home files of the castling pieces.
const (
	KingFile          = 4
	KingSideRookFile  = BoardSize - 1
	QueenSideRookFile = 0
)
