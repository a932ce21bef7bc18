package chess

import (
	"fmt"

	"github.com/lgbarn/checkmate-go/internal/errors"
)

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Position is a board coordinate. Rank 0 is "1" and file 0 is "a".
// Positions produced by stepping may be off the board; check IsValid before use.
type Position struct {
	Rank int
	File int
}

// Direction is a rank/file offset applied by Position.Add.
type Direction struct {
	Rank int
	File int
}

// Compass directions, seen from White's side of the board.
var (
	North     = Direction{1, 0}
	South     = Direction{-1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{1, -1}
	SouthEast = Direction{-1, 1}
	SouthWest = Direction{-1, -1}
)

// Pos creates a position from a rank and file index.
func Pos(rank, file int) Position {
	return Position{Rank: rank, File: file}
}

// IsValid reports whether the position lies on the board.
func (p Position) IsValid() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Up returns the position one rank towards Black.
func (p Position) Up() Position {
	return Position{p.Rank + 1, p.File}
}

// Down returns the position one rank towards White.
func (p Position) Down() Position {
	return Position{p.Rank - 1, p.File}
}

// Left returns the position one file towards the a-file.
func (p Position) Left() Position {
	return Position{p.Rank, p.File - 1}
}

// Right returns the position one file towards the h-file.
func (p Position) Right() Position {
	return Position{p.Rank, p.File + 1}
}

// Forward returns the position one rank ahead from the colour's point of view.
func (p Position) Forward(colour Colour) Position {
	return Position{p.Rank + colour.Direction(), p.File}
}

// Add returns the position offset by d.
func (p Position) Add(d Direction) Position {
	return Position{p.Rank + d.Rank, p.File + d.File}
}

// FileLetter returns the file as a letter 'a'-'h'.
func (p Position) FileLetter() byte {
	return byte('a' + p.File)
}

// RankDigit returns the rank as a digit '1'-'8'.
func (p Position) RankDigit() byte {
	return byte('1' + p.Rank)
}

// String returns the algebraic square name, e.g. "e4".
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return string([]byte{p.FileLetter(), p.RankDigit()})
}

// ParsePosition parses an algebraic square name such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, errors.NewParseError("square", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, errors.NewParseError("square", s)
	}
	return Position{Rank: int(rank - '1'), File: int(file - 'a')}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for constant square names.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
