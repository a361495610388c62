package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// CanReach checks the movement pattern of a piece from its square to another,
// including the pawn's occupancy rules. It ignores what stands on the
// destination for non-pawns and whether the mover's king is left in check.
func CanReach(board *chess.Board, piece chess.Piece, to chess.Square) bool {
	from := piece.Square
	colDiff, rankDiff := distance(from, to)
	if colDiff == 0 && rankDiff == 0 {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnReaches(board, piece, to)

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff == rankDiff {
			return isPathClear(board, from, to)
		}
		if colDiff == 0 || rankDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isRowEmpty reports whether every square strictly between two squares on
// the same rank is empty.
func isRowEmpty(board *chess.Board, a, b chess.Square) bool {
	if a.Rank != b.Rank {
		return false
	}
	lo, hi := a.Col, b.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if !board.IsEmpty(chess.Sq(col, a.Rank)) {
			return false
		}
	}
	return true
}
