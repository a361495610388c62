package chess

import (
	"sort"
	"strings"
)

// Piece is a coloured piece together with where it stands and whether it
// has ever been relocated.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square
	Moved  bool
}

// NewPiece creates an unmoved piece that is not yet on the board.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight on g1".
func (p Piece) String() string {
	s := p.Colour.String() + " " + p.Kind.String()
	if p.Square.Valid() {
		s += " on " + p.Square.String()
	}
	return s
}

// Board holds the pieces currently in play, keyed by square.
// Only occupied squares are stored.
type Board struct {
	squares map[Square]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Square]Piece, 32)}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = make(map[Square]Piece, 32)

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, kind := range backRank {
		col := Col(FirstCol + i)
		b.Place(NewPiece(White, kind), Sq(col, HomeRank(White)))
		b.Place(NewPiece(White, Pawn), Sq(col, PawnRank(White)))
		b.Place(NewPiece(Black, Pawn), Sq(col, PawnRank(Black)))
		b.Place(NewPiece(Black, kind), Sq(col, HomeRank(Black)))
	}
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	return p, ok
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.squares[sq]
	return !ok
}

// Place puts p on sq, replacing any occupant. The piece's Square is updated;
// its Moved flag is left as given.
func (b *Board) Place(p Piece, sq Square) {
	if !sq.Valid() {
		return
	}
	p.Square = sq
	b.squares[sq] = p
}

// Remove takes the piece off sq and returns it.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	if !ok {
		return Piece{}, false
	}
	delete(b.squares, sq)
	p.Square = Square{}
	return p, true
}

// Relocate moves the piece on from to to, marking it as moved.
// The previous occupant of to, if any, is removed from play and returned.
// Relocate performs no legality checks; an empty from is a no-op.
func (b *Board) Relocate(from, to Square) (Piece, bool) {
	p, ok := b.squares[from]
	if !ok || !to.Valid() {
		return Piece{}, false
	}
	captured, wasCapture := b.Remove(to)
	delete(b.squares, from)
	p.Square = to
	p.Moved = true
	b.squares[to] = p
	return captured, wasCapture
}

// PiecesOf returns the pieces of one colour ordered by file then rank.
func (b *Board) PiecesOf(colour Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for _, p := range b.squares {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	sortPieces(pieces)
	return pieces
}

// Pieces returns every piece on the board ordered by file then rank.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b.squares))
	for _, p := range b.squares {
		pieces = append(pieces, p)
	}
	sortPieces(pieces)
	return pieces
}

func sortPieces(pieces []Piece) {
	sort.Slice(pieces, func(i, j int) bool {
		a, c := pieces[i].Square, pieces[j].Square
		if a.Col != c.Col {
			return a.Col < c.Col
		}
		return a.Rank < c.Rank
	})
}

// FindKing returns the square of the given colour's king.
// A board without that king is a valid state, reported by the second result.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for sq, p := range b.squares {
		if p.Kind == King && p.Colour == colour {
			return sq, true
		}
	}
	return Square{}, false
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return len(b.squares)
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{squares: make(map[Square]Piece, len(b.squares))}
	for sq, p := range b.squares {
		nb.squares[sq] = p
	}
	return nb
}

// Equal reports whether two boards hold the same pieces on the same squares.
// Moved flags are compared too.
func (b *Board) Equal(other *Board) bool {
	if len(b.squares) != len(other.squares) {
		return false
	}
	for sq, p := range b.squares {
		if q, ok := other.squares[sq]; !ok || q != p {
			return false
		}
	}
	return true
}

// String renders the board as an 8x8 diagram, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Rank(LastRank); rank >= FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		sb.WriteByte(' ')
		for col := Col(FirstCol); col <= LastCol; col++ {
			if p, ok := b.squares[Sq(col, rank)]; ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
