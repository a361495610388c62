package chess

// Square identifies one of the 64 board squares by file and rank.
// The zero Square means "no square".
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	return sq, sq.Valid()
}

// Valid reports whether the square lies on the 8x8 board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// IsZero reports whether s is the "no square" value.
func (s Square) IsZero() bool {
	return s == Square{}
}

// Offset returns the square dc files and dr ranks away.
// The second result is false when the target leaves the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	col := int(s.Col) + dc
	rank := int(s.Rank) + dr
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return Square{}, false
	}
	return Square{Col: Col(col), Rank: Rank(rank)}, true
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.Col-FirstCol)+int(s.Rank-FirstRank))%2 == 1
}

// String returns the algebraic name of the square, or "-" for no square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// AllSquares returns every square ordered by file then rank (a1, a2, ... h8).
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for col := Col(FirstCol); col <= LastCol; col++ {
		for rank := Rank(FirstRank); rank <= LastRank; rank++ {
			squares = append(squares, Square{Col: col, Rank: rank})
		}
	}
	return squares
}
