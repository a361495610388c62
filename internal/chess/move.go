package chess

import "strings"

// MoveKind categorizes different types of chess moves.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	EnPassant
	Castle
	Promotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move is a single move as produced by the move generator.
// Check and mate are properties of the resulting position and are not
// recorded here.
type Move struct {
	// Snapshot of the moving piece before the move.
	Piece Piece

	// Source and destination squares.
	From Square
	To   Square

	// The kind of piece captured (NoKind if nothing was captured).
	// For en passant this is Pawn even though To is empty.
	Captured Kind

	// Classification of the move.
	Kind MoveKind
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoKind || m.Kind == EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == Castle
}

// IsKingside reports whether a castling move goes toward the h-file.
func (m Move) IsKingside() bool {
	return m.Kind == Castle && m.To.Col > m.From.Col
}

// IsDoublePawnStep reports whether the move is a pawn's two-rank advance.
func (m Move) IsDoublePawnStep() bool {
	if m.Piece.Kind != Pawn || m.From.Col != m.To.Col {
		return false
	}
	diff := int(m.To.Rank) - int(m.From.Rank)
	return diff == 2 || diff == -2
}

// String returns coordinate notation such as "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += "q"
	}
	return s
}

// ParseCoordinates parses coordinate notation ("e2e4", "e7e8q") into its
// source and destination squares. A trailing promotion letter is accepted
// and ignored; promotion is always to a queen.
func ParseCoordinates(s string) (from, to Square, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Square{}, Square{}, false
	}
	from, okFrom := ParseSquare(s[0:2])
	to, okTo := ParseSquare(s[2:4])
	if !okFrom || !okTo {
		return Square{}, Square{}, false
	}
	return from, to, true
}

// CastlingRights records which castling moves remain available.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights grants every castling right.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports the right for one side and wing.
func (r CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return r.WhiteKingside
	case colour == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// String returns the FEN castling field ("KQkq", "-").
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
