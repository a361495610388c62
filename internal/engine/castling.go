package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// Files involved in castling.
const (
	kingCol          chess.Col = 'e'
	kingsideRookCol  chess.Col = 'h'
	queensideRookCol chess.Col = 'a'
	kingsideKingTo   chess.Col = 'g'
	queensideKingTo  chess.Col = 'c'
	kingsideRookTo   chess.Col = 'f'
	queensideRookTo  chess.Col = 'd'
)

// castleSquares returns the king's start and landing squares and the rook's
// start and landing squares for one side and wing.
func castleSquares(colour chess.Colour, kingside bool) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	rank := chess.HomeRank(colour)
	kingFrom = chess.Sq(kingCol, rank)
	if kingside {
		return kingFrom, chess.Sq(kingsideKingTo, rank), chess.Sq(kingsideRookCol, rank), chess.Sq(kingsideRookTo, rank)
	}
	return kingFrom, chess.Sq(queensideKingTo, rank), chess.Sq(queensideRookCol, rank), chess.Sq(queensideRookTo, rank)
}

// CanCastle reports whether the given colour may castle on one wing.
// The king and rook must be on their original squares and never have moved,
// every square between them must be empty, the king must not be in check,
// and neither square the king crosses or lands on may be attacked.
func CanCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	kingFrom, kingTo, rookFrom, _ := castleSquares(colour, kingside)

	king, ok := board.PieceAt(kingFrom)
	if !ok || king.Kind != chess.King || king.Colour != colour || king.Moved {
		return false
	}
	rook, ok := board.PieceAt(rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Colour != colour || rook.Moved {
		return false
	}
	if !isRowEmpty(board, kingFrom, rookFrom) {
		return false
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(board, enemy, kingFrom) {
		return false
	}
	dir, _ := step(kingFrom, kingTo)
	for sq, ok := kingFrom.Offset(dir, 0); ok; sq, ok = sq.Offset(dir, 0) {
		if IsSquareAttacked(board, enemy, sq) {
			return false
		}
		if sq == kingTo {
			break
		}
	}
	return true
}

// CastlingRightsOf derives the remaining castling rights from the board:
// a right survives while its king and rook stand unmoved on their original
// squares.
func CastlingRightsOf(board *chess.Board) chess.CastlingRights {
	var rights chess.CastlingRights
	for _, colour := range chess.Colours {
		for _, kingside := range []bool{true, false} {
			kingFrom, _, rookFrom, _ := castleSquares(colour, kingside)
			king, okK := board.PieceAt(kingFrom)
			rook, okR := board.PieceAt(rookFrom)
			if okK && okR &&
				king.Kind == chess.King && king.Colour == colour && !king.Moved &&
				rook.Kind == chess.Rook && rook.Colour == colour && !rook.Moved {
				setRight(&rights, colour, kingside)
			}
		}
	}
	return rights
}

func setRight(r *chess.CastlingRights, colour chess.Colour, kingside bool) {
	switch {
	case colour == chess.White && kingside:
		r.WhiteKingside = true
	case colour == chess.White:
		r.WhiteQueenside = true
	case kingside:
		r.BlackKingside = true
	default:
		r.BlackQueenside = true
	}
}

// isCastleAttempt reports whether a king move is the two-file step that
// castling produces.
func isCastleAttempt(king chess.Piece, to chess.Square) (kingside, ok bool) {
	if king.Kind != chess.King {
		return false, false
	}
	kingFrom, ksTo, _, _ := castleSquares(king.Colour, true)
	_, qsTo, _, _ := castleSquares(king.Colour, false)
	if king.Square != kingFrom {
		return false, false
	}
	switch to {
	case ksTo:
		return true, true
	case qsTo:
		return false, true
	}
	return false, false
}
