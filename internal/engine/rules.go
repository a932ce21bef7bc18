package engine

import "github.com/lgbarn/checkmate-go/internal/chess"

// Ray orders used by the sliding pieces and the king.
var (
	diagonals  = []chess.Direction{chess.NorthWest, chess.NorthEast, chess.SouthWest, chess.SouthEast}
	orthogonal = []chess.Direction{chess.North, chess.South, chess.West, chess.East}

	knightJumps = []chess.Direction{
		{Rank: 2, File: -1}, {Rank: 2, File: 1}, // up-up-left, up-up-right
		{Rank: -2, File: -1}, {Rank: -2, File: 1}, // down-down-left, down-down-right
		{Rank: 1, File: -2}, {Rank: 1, File: 2}, // left-left-up, right-right-up
		{Rank: -1, File: -2}, {Rank: -1, File: 2}, // left-left-down, right-right-down
	}
)

// generate dispatches to the rule for the builder's piece type.
func generate(b *moveBuilder) {
	switch b.piece.Type {
	case chess.Pawn:
		pawnMoves(b)
	case chess.Knight:
		knightMoves(b)
	case chess.Bishop:
		slidingMoves(b, diagonals)
	case chess.Rook:
		slidingMoves(b, orthogonal)
	case chess.Queen:
		slidingMoves(b, diagonals)
		slidingMoves(b, orthogonal)
	case chess.King:
		kingMoves(b)
	}
}

// pawnMoves generates forward, double-forward, right and left captures,
// then en passant to the right and left.
func pawnMoves(b *moveBuilder) {
	colour := b.piece.Colour
	ahead := b.from.Forward(colour)

	if b.tryStep(ahead, quietOnly) &&
		b.from.Rank == colour.PawnRank() && !b.state.Visited(b.from) {
		b.tryStep(ahead.Forward(colour), quietOnly)
	}

	b.tryStep(ahead.Right(), captureOnly)
	b.tryStep(ahead.Left(), captureOnly)

	target, ok := b.state.EnPassantTarget()
	if !ok || colour != b.state.active {
		return
	}
	for _, side := range []chess.Position{b.from.Right(), b.from.Left()} {
		if side.Forward(colour) != target || !b.state.board.IsEmpty(target) {
			continue
		}
		victim, ok := b.state.board.PieceAt(side)
		if !ok || !victim.Is(colour.Opposite(), chess.Pawn) {
			continue
		}
		b.push(chess.NewMove(b.piece, b.from, target).WithTaken(victim))
	}
}

// knightMoves generates the eight jumps; none of them slide.
func knightMoves(b *moveBuilder) {
	for _, jump := range knightJumps {
		b.tryStep(b.from.Add(jump), anyStep)
	}
}

// slidingMoves walks each ray in order.
func slidingMoves(b *moveBuilder, rays []chess.Direction) {
	for _, dir := range rays {
		b.walk(dir)
	}
}

// kingMoves generates the eight single steps, then castling king-side and
// queen-side.
func kingMoves(b *moveBuilder) {
	for _, dir := range diagonals {
		b.tryStep(b.from.Add(dir), anyStep)
	}
	for _, dir := range orthogonal {
		b.tryStep(b.from.Add(dir), anyStep)
	}

	if b.mode != Strict {
		return
	}
	colour := b.piece.Colour
	if b.from != chess.Pos(colour.HomeRank(), chess.KingFile) || b.state.castles[colour] == chess.NoCastles {
		return
	}
	if b.state.IsCheckAgainst(colour) {
		return
	}
	castleMove(b, chess.KingSide, chess.East, chess.KingSideRookFile)
	castleMove(b, chess.QueenSide, chess.West, chess.QueenSideRookFile)
}

// castleMove emits the castle towards dir if the right is held, every
// square up to the rook is empty, the rook has never moved and the king
// does not cross an attacked square.
func castleMove(b *moveBuilder, side chess.CastleRights, dir chess.Direction, rookFile int) {
	colour := b.piece.Colour
	if !b.state.castles[colour].Has(side) {
		return
	}

	rookPos := b.from.Add(dir)
	for b.state.board.IsEmpty(rookPos) {
		rookPos = rookPos.Add(dir)
	}
	rook, ok := b.state.board.PieceAt(rookPos)
	if !ok || !rook.Is(colour, chess.Rook) || rookPos.File != rookFile || b.state.Visited(rookPos) {
		return
	}

	crossing := b.from.Add(dir)
	if b.state.leavesInCheck(chess.NewMove(b.piece, b.from, crossing)) {
		return
	}

	m := chess.NewMove(b.piece, b.from, crossing.Add(dir))
	m.Castle = &chess.RookMove{From: rookPos, To: crossing}
	b.push(m)
}
