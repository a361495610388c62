package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// GenerateMoves returns the pseudo-legal moves of the given colour: moves
// that obey piece movement but may leave the mover's own king in check.
// last is the move that produced the position; it is needed only to
// authorize en passant and may be nil.
//
// Pieces are visited by file then rank and so are destination squares,
// so the result order is deterministic.
func GenerateMoves(board *chess.Board, colour chess.Colour, last *chess.Move) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for _, piece := range board.PiecesOf(colour) {
		moves = append(moves, GenerateMovesForPiece(board, piece, last)...)
	}
	return moves
}

// classify decides whether piece can go to the square and, if so, what kind
// of move it would be.
func classify(board *chess.Board, piece chess.Piece, to chess.Square, last *chess.Move) (chess.Move, bool) {
	move := chess.Move{Piece: piece, From: piece.Square, To: to, Kind: chess.Normal}

	switch {
	case CanMove(board, piece, to):
		if target, ok := board.PieceAt(to); ok {
			move.Captured = target.Kind
			move.Kind = chess.Capture
		}
		if piece.Kind == chess.Pawn && to.Rank == chess.PromotionRank(piece.Colour) {
			move.Kind = chess.Promotion
		}
		return move, true

	case piece.Kind == chess.King:
		kingside, ok := isCastleAttempt(piece, to)
		if ok && CanCastle(board, piece.Colour, kingside) {
			move.Kind = chess.Castle
			return move, true
		}

	case piece.Kind == chess.Pawn:
		if last != nil && pawnAttacks(piece, to) && CanCaptureEnPassant(board, piece.Colour, to, last) {
			move.Kind = chess.EnPassant
			move.Captured = chess.Pawn
			return move, true
		}
	}

	return chess.Move{}, false
}

// GenerateMovesForPiece returns the pseudo-legal moves of one piece.
func GenerateMovesForPiece(board *chess.Board, piece chess.Piece, last *chess.Move) []chess.Move {
	var moves []chess.Move
	for _, to := range chess.AllSquares() {
		if move, ok := classify(board, piece, to, last); ok {
			moves = append(moves, move)
		}
	}
	return moves
}
