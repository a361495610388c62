package engine

import "github.com/lgbarn/rchess-go/internal/chess"

// delta returns the signed file and rank distance from one square to another.
func delta(from, to chess.Square) (dc, dr int) {
	return int(to.Col) - int(from.Col), int(to.Rank) - int(from.Rank)
}

// distance returns the unsigned file and rank distance between two squares.
func distance(from, to chess.Square) (dc, dr int) {
	dc, dr = delta(from, to)
	return abs(dc), abs(dr)
}

// step returns the unit offset that walks from one square towards another.
// It is only meaningful for squares sharing a line or diagonal.
func step(from, to chess.Square) (dc, dr int) {
	dc, dr = delta(from, to)
	return sign(dc), sign(dr)
}

// isPathClear reports whether every square strictly between from and to is
// empty, walking along their shared line or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dc, dr := step(from, to)
	for sq, ok := from.Offset(dc, dr); ok && sq != to; sq, ok = sq.Offset(dc, dr) {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
