package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// ApplyToBoard performs the physical side of a generated move: the piece is
// relocated, the rook hops over the king when castling, the bypassed pawn
// is removed for en passant, and a promoting pawn becomes a queen.
// It returns the piece removed from play, if any. No legality check is made.
func ApplyToBoard(board *chess.Board, move chess.Move) (chess.Piece, bool) {
	captured, wasCapture := board.Relocate(move.From, move.To)

	switch move.Kind {
	case chess.Castle:
		_, _, rookFrom, rookTo := castleSquares(move.Piece.Colour, move.IsKingside())
		board.Relocate(rookFrom, rookTo)

	case chess.EnPassant:
		captured, wasCapture = board.Remove(enPassantVictim(move.Piece.Colour, move.To))

	case chess.Promotion:
		if pawn, ok := board.PieceAt(move.To); ok {
			pawn.Kind = chess.Queen
			board.Place(pawn, move.To)
		}
	}

	return captured, wasCapture
}
