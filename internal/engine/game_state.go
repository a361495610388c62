package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour, last *chess.Move) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour, last)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour, last *chess.Move) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour, last)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, colour chess.Colour, last *chess.Move, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, colour, last)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for i := range moves {
		child := board.Clone()
		ApplyToBoard(child, moves[i])
		nodes += Perft(child, colour.Opposite(), &moves[i], depth-1)
	}
	return nodes
}
