package chess

import (
	"fmt"
	"slices"
	"strings"
)

// Board is an immutable 8x8 grid of pieces plus a per-colour occupancy cache.
// Every change produces a new Board; the receiver is never modified.
type Board struct {
	// squares[rank][file]; the zero Piece is an empty square.
	squares [BoardSize][BoardSize]Piece

	// Occupied squares of each colour, in a stable order. The order drives
	// move generation order: a piece that moves is appended at the end.
	occupancy [NumColours][]Position
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// InitialBoard creates a board with the standard starting position.
func InitialBoard() *Board {
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	bb := NewBoardBuilder()
	for _, colour := range Colours {
		for file := 0; file < BoardSize; file++ {
			bb.Place(NewPiece(colour, Pawn), Pos(colour.PawnRank(), file))
		}
		for file := 0; file < BoardSize; file++ {
			bb.Place(NewPiece(colour, backRank[file]), Pos(colour.HomeRank(), file))
		}
	}
	return bb.Build()
}

// PieceAt returns the piece at pos. It returns false for empty squares and
// for positions off the board.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.IsValid() {
		return Piece{}, false
	}
	p := b.squares[pos.Rank][pos.File]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.IsValid() && b.squares[pos.Rank][pos.File].IsEmpty()
}

// PositionsFor returns a snapshot of the squares occupied by colour.
func (b *Board) PositionsFor(colour Colour) []Position {
	return slices.Clone(b.occupancy[colour])
}

// KingPosition returns the square of the colour's king.
func (b *Board) KingPosition(colour Colour) (Position, bool) {
	for _, pos := range b.occupancy[colour] {
		if b.squares[pos.Rank][pos.File].Type == King {
			return pos, true
		}
	}
	return Position{}, false
}

// HasOnlyKing reports whether the colour has nothing left but its king.
func (b *Board) HasOnlyKing(colour Colour) bool {
	occupied := b.occupancy[colour]
	return len(occupied) == 1 && b.squares[occupied[0].Rank][occupied[0].File].Type == King
}

// CountMaterial returns the total material value of the colour's pieces.
func (b *Board) CountMaterial(colour Colour) int {
	total := 0
	for _, pos := range b.occupancy[colour] {
		total += b.squares[pos.Rank][pos.File].Type.Value()
	}
	return total
}

// ApplyMove returns a new board with the move played. No legality checking
// is done; the move must come from move generation or a validated parse.
// It panics if the origin square is empty.
func (b *Board) ApplyMove(m Move) *Board {
	moving, ok := b.PieceAt(m.From)
	if !ok {
		panic(fmt.Sprintf("chess: apply %s: no piece on %s", m, m.From))
	}

	next := &Board{squares: b.squares}
	for i := range b.occupancy {
		next.occupancy[i] = make([]Position, len(b.occupancy[i]), len(b.occupancy[i])+1)
		copy(next.occupancy[i], b.occupancy[i])
	}

	if m.IsCapture() {
		victim := m.To
		if moving.Type == Pawn && next.IsEmpty(m.To) {
			// En passant: the captured pawn sits beside the destination.
			victim = Position{Rank: m.From.Rank, File: m.To.File}
		}
		next.remove(victim)
	}

	next.remove(m.From)
	if m.IsPromotion() {
		moving.Type = m.Promotion
	}
	next.put(moving, m.To)

	if m.Castle != nil {
		if rook, ok := next.PieceAt(m.Castle.From); ok {
			next.remove(m.Castle.From)
			next.put(rook, m.Castle.To)
		}
	}
	return next
}

// remove clears pos and drops it from its owner's occupancy list.
func (b *Board) remove(pos Position) {
	p := b.squares[pos.Rank][pos.File]
	if p.IsEmpty() {
		return
	}
	b.squares[pos.Rank][pos.File] = Piece{}
	list := b.occupancy[p.Colour]
	if i := slices.Index(list, pos); i >= 0 {
		b.occupancy[p.Colour] = slices.Delete(list, i, i+1)
	}
}

// put places p on pos, which must be empty, and appends it to the occupancy list.
func (b *Board) put(p Piece, pos Position) {
	b.remove(pos)
	b.squares[pos.Rank][pos.File] = p
	b.occupancy[p.Colour] = append(b.occupancy[p.Colour], pos)
}

// String returns an ASCII diagram with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			p := b.squares[rank][file]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENLetter())
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// BoardBuilder assembles arbitrary positions, e.g. from FEN or in tests.
type BoardBuilder struct {
	board *Board
}

// NewBoardBuilder creates a builder for an empty board.
func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{board: NewBoard()}
}

// Place puts piece on pos, replacing whatever was there.
func (bb *BoardBuilder) Place(piece Piece, pos Position) *BoardBuilder {
	if pos.IsValid() && !piece.IsEmpty() {
		bb.board.put(piece, pos)
	}
	return bb
}

// Build returns the assembled board. The builder may keep being used; later
// changes do not affect boards already built.
func (bb *BoardBuilder) Build() *Board {
	out := &Board{squares: bb.board.squares}
	for i := range bb.board.occupancy {
		out.occupancy[i] = slices.Clone(bb.board.occupancy[i])
	}
	return out
}
