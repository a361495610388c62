package engine

import "github.com/lgbarn/rchess-go/internal/chess"

var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalOffsets = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, colour.Opposite(), kingSq)
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Whatever stands on the square is ignored.
func IsSquareAttacked(board *chess.Board, by chess.Colour, sq chess.Square) bool {
	if !sq.Valid() {
		return false
	}

	is := func(at chess.Square, kinds ...chess.Kind) bool {
		p, ok := board.PieceAt(at)
		if !ok || p.Colour != by {
			return false
		}
		for _, k := range kinds {
			if p.Kind == k {
				return true
			}
		}
		return false
	}

	// Pawns attack from one rank behind, relative to their direction.
	pawnDir := -chess.ColourOffset(by)
	for _, dc := range []int{-1, 1} {
		if at, ok := sq.Offset(dc, pawnDir); ok && is(at, chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if at, ok := sq.Offset(off[0], off[1]); ok && is(at, chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if at, ok := sq.Offset(off[0], off[1]); ok && is(at, chess.King) {
			return true
		}
	}

	if isRayAttacked(board, sq, diagonalOffsets, is, chess.Bishop, chess.Queen) {
		return true
	}
	return isRayAttacked(board, sq, straightOffsets, is, chess.Rook, chess.Queen)
}

// isRayAttacked walks outward from sq along each direction and reports
// whether the first piece met is one of the given sliding kinds.
func isRayAttacked(board *chess.Board, sq chess.Square, dirs [][2]int,
	is func(chess.Square, ...chess.Kind) bool, kinds ...chess.Kind) bool {
	for _, dir := range dirs {
		at, ok := sq.Offset(dir[0], dir[1])
		for ok {
			if !board.IsEmpty(at) {
				if is(at, kinds...) {
					return true
				}
				break // Blocked
			}
			at, ok = at.Offset(dir[0], dir[1])
		}
	}
	return false
}
