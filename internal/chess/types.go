// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// Colours lists both colours in index order.
var Colours = [NumColours]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Index returns the array index of the colour (White 0, Black 1).
func (c Colour) Index() int {
	return int(c)
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the colour's pieces start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Direction()
}

// PromotionRank returns the farthest rank for the colour's pawns.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// FENLetter returns the active colour field used in FEN.
func (c Colour) FENLetter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota // Empty square or no promotion
	Pawn
	Bishop
	Rook
	Knight
	Queen
	King
)

// PromotionTypes lists the promotion targets in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Bishop", "Rook", "Knight", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'B', 'R', 'N', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value of the piece type.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// PieceTypeFromLetter converts an uppercase or lowercase letter to a piece type.
// It returns NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NewPiece creates a piece of the given colour and type.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Colour: colour, Type: pieceType}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether p holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// PieceFromFEN converts a FEN letter to a piece.
func PieceFromFEN(c byte) (Piece, bool) {
	pieceType := PieceTypeFromLetter(c)
	if pieceType == NoPieceType {
		return Piece{}, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, pieceType), true
}

// CastleRights is a bitmask of the castling moves still available to one colour.
type CastleRights uint8

const (
	KingSide CastleRights = 1 << iota
	QueenSide

	NoCastles  CastleRights = 0
	AllCastles              = KingSide | QueenSide
)

// Has reports whether all rights in other are held.
func (r CastleRights) Has(other CastleRights) bool {
	return other != 0 && r&other == other
}

// Without returns r with the given rights removed.
func (r CastleRights) Without(other CastleRights) CastleRights {
	return r &^ other
}

// FEN returns the FEN castling letters for the colour, or "" if none.
func (r CastleRights) FEN(colour Colour) string {
	var s []byte
	if r.Has(KingSide) {
		s = append(s, 'K')
	}
	if r.Has(QueenSide) {
		s = append(s, 'Q')
	}
	if colour == Black {
		for i := range s {
			s[i] += 'a' - 'A'
		}
	}
	return string(s)
}
