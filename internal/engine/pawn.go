package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// pawnReaches applies the pawn's movement rules: a single step onto an empty
// square, a double step from the starting rank through an empty square, or a
// diagonal step onto an enemy piece.
func pawnReaches(board *chess.Board, pawn chess.Piece, to chess.Square) bool {
	from := pawn.Square
	dir := chess.ColourOffset(pawn.Colour)
	colDiff, rankDiff := delta(from, to)

	switch {
	case colDiff == 0 && rankDiff == dir:
		return board.IsEmpty(to)

	case colDiff == 0 && rankDiff == 2*dir:
		if from.Rank != chess.PawnRank(pawn.Colour) {
			return false
		}
		middle, ok := from.Offset(0, dir)
		return ok && board.IsEmpty(middle) && board.IsEmpty(to)

	case abs(colDiff) == 1 && rankDiff == dir:
		target, ok := board.PieceAt(to)
		return ok && target.Colour != pawn.Colour
	}

	return false
}

// pawnAttacks reports whether a pawn attacks sq, whatever stands there.
func pawnAttacks(pawn chess.Piece, sq chess.Square) bool {
	dir := chess.ColourOffset(pawn.Colour)
	dc, dr := delta(pawn.Square, sq)
	return abs(dc) == 1 && dr == dir
}

// CanCaptureEnPassant reports whether a pawn of the given colour may capture
// en passant onto target. The enemy pawn must stand directly behind target
// and the last move must have been exactly that pawn's double step.
func CanCaptureEnPassant(board *chess.Board, colour chess.Colour, target chess.Square, last *chess.Move) bool {
	if last == nil || !target.Valid() || !board.IsEmpty(target) {
		return false
	}
	victimSq, ok := target.Offset(0, -chess.ColourOffset(colour))
	if !ok {
		return false
	}
	victim, ok := board.PieceAt(victimSq)
	if !ok || victim.Kind != chess.Pawn || victim.Colour == colour {
		return false
	}
	return last.Piece.Kind == chess.Pawn &&
		last.Piece.Colour == victim.Colour &&
		last.IsDoublePawnStep() &&
		last.To == victimSq
}

// EnPassantTarget returns the square skipped by a double pawn step, or the
// zero Square when last is not one.
func EnPassantTarget(last *chess.Move) chess.Square {
	if last == nil || !last.IsDoublePawnStep() {
		return chess.Square{}
	}
	mid := (int(last.From.Rank) + int(last.To.Rank)) / 2
	return chess.Sq(last.From.Col, chess.Rank(mid))
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture made by colour onto target.
func enPassantVictim(colour chess.Colour, target chess.Square) chess.Square {
	return chess.Sq(target.Col, chess.Rank(int(target.Rank)-chess.ColourOffset(colour)))
}
