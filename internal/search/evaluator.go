package search

import "github.com/lgbarn/rchess-go/internal/chess"

// Piece values in centipawns. The king's value only keeps it out of trades.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 10000
)

// PieceValue returns the material value of a kind.
func PieceValue(kind chess.Kind) int {
	switch kind {
	case chess.Pawn:
		return PawnValue
	case chess.Knight:
		return KnightValue
	case chess.Bishop:
		return BishopValue
	case chess.Rook:
		return RookValue
	case chess.Queen:
		return QueenValue
	case chess.King:
		return KingValue
	}
	return 0
}

// Evaluator scores a board from one side's point of view.
type Evaluator interface {
	Evaluate(board *chess.Board, perspective chess.Colour) int
}

// MaterialEvaluator scores a board by material balance.
type MaterialEvaluator struct{}

// Evaluate returns the material of perspective minus that of its opponent.
func (MaterialEvaluator) Evaluate(board *chess.Board, perspective chess.Colour) int {
	score := 0
	for _, p := range board.Pieces() {
		if p.Colour == perspective {
			score += PieceValue(p.Kind)
		} else {
			score -= PieceValue(p.Kind)
		}
	}
	return score
}
