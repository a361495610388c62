package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of the given colour that do not
// leave its own king in check, in generator order.
func LegalMoves(board *chess.Board, colour chess.Colour, last *chess.Move) []chess.Move {
	pseudo := GenerateMoves(board, colour, last)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if IsLegal(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, last *chess.Move) bool {
	squares := chess.AllSquares()
	for _, piece := range board.PiecesOf(colour) {
		for _, to := range squares {
			move, ok := classify(board, piece, to, last)
			if ok && tryMove(board, move) {
				return true
			}
		}
	}
	return false
}

// IsLegal reports whether a generated move keeps the mover's king safe.
func IsLegal(board *chess.Board, move chess.Move) bool {
	return tryMove(board, move)
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move) bool {
	testBoard := board.Clone()
	ApplyToBoard(testBoard, move)
	return !IsInCheck(testBoard, move.Piece.Colour)
}
