package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// CanMove reports whether piece may move to the given square by its movement
// pattern, ignoring whether its own king would be left in check.
// The destination must not hold a piece of the same colour or the enemy king.
// Castling and en passant are not covered; the move generator adds them.
func CanMove(board *chess.Board, piece chess.Piece, to chess.Square) bool {
	if !to.Valid() || !piece.Square.Valid() || to == piece.Square {
		return false
	}
	if target, ok := board.PieceAt(to); ok {
		if target.Colour == piece.Colour || target.Kind == chess.King {
			return false
		}
	}
	return CanReach(board, piece, to)
}

// Attacks reports whether piece attacks sq. Unlike CanMove the occupant of sq
// is ignored, so a king's square can be attacked, and pawns attack both
// forward diagonals whether or not anything stands there.
func Attacks(board *chess.Board, piece chess.Piece, sq chess.Square) bool {
	if !sq.Valid() || !piece.Square.Valid() || sq == piece.Square {
		return false
	}
	if piece.Kind == chess.Pawn {
		return pawnAttacks(piece, sq)
	}
	return CanReach(board, piece, sq)
}

// Attackers returns the pieces of the given colour attacking sq, in board
// order.
func Attackers(board *chess.Board, by chess.Colour, sq chess.Square) []chess.Piece {
	var attackers []chess.Piece
	for _, p := range board.PiecesOf(by) {
		if Attacks(board, p, sq) {
			attackers = append(attackers, p)
		}
	}
	return attackers
}
