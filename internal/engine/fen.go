package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board together with the state FEN records about it.
// Castling rights and the en passant square are derived from the board's
// moved flags and from the last move respectively.
type Position struct {
	Board          *chess.Board
	ToMove         chess.Colour
	LastMove       *chess.Move
	HalfmoveClock  int
	FullmoveNumber int
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	return Position{
		Board:          chess.NewInitialBoard(),
		ToMove:         chess.White,
		FullmoveNumber: 1,
	}
}

// Castling returns the castling rights still available.
func (p Position) Castling() chess.CastlingRights {
	return CastlingRightsOf(p.Board)
}

// EnPassant returns the square skipped by the last double pawn step.
func (p Position) EnPassant() chess.Square {
	return EnPassantTarget(p.LastMove)
}

// ParseFEN parses a FEN string. Missing trailing fields take their usual
// defaults. Moved flags are inferred: a king or rook is unmoved only when a
// castling right names it, and a pawn is unmoved on its starting rank.
// An en passant square becomes a synthesized last move so that the capture
// stays available.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := Position{Board: chess.NewBoard(), ToMove: chess.White, FullmoveNumber: 1}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return Position{}, err
	}

	if err := parseSideToMove(&pos, parts); err != nil {
		return Position{}, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return Position{}, err
	}
	markMoved(pos.Board, rights)

	if err := parseEnPassant(&pos, parts); err != nil {
		return Position{}, err
	}

	if err := parseClocks(&pos, parts); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.Rank('8')
	col := chess.Col('a')

	for _, c := range positions {
		switch {
		case c == '/':
			if col != 'h'+1 {
				return fmt.Errorf("rank %c has wrong length: %w", rank, errors.ErrInvalidFEN)
			}
			rank--
			col = 'a'
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
			if col > 'h'+1 {
				return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
			}
		case c > unicode.MaxASCII:
			return fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col > 'h' || rank < '1' {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			board.Place(chess.NewPiece(colour, kind), chess.Sq(col, rank))
			col++
		}
	}
	if rank != '1' || col != 'h'+1 {
		return fmt.Errorf("placement does not cover 8 ranks: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// markMoved sets the moved flags a FEN cannot express directly.
func markMoved(board *chess.Board, rights chess.CastlingRights) {
	for _, p := range board.Pieces() {
		moved := false
		switch p.Kind {
		case chess.Pawn:
			moved = p.Square.Rank != chess.PawnRank(p.Colour)
		case chess.King:
			moved = p.Square != chess.Sq(kingCol, chess.HomeRank(p.Colour)) ||
				(!rights.Has(p.Colour, true) && !rights.Has(p.Colour, false))
		case chess.Rook:
			moved = true
			for _, kingside := range []bool{true, false} {
				_, _, rookFrom, _ := castleSquares(p.Colour, kingside)
				if p.Square == rookFrom && rights.Has(p.Colour, kingside) {
					moved = false
				}
			}
		}
		p.Moved = moved
		board.Place(p, p.Square)
	}
}

// parseEnPassant parses the en passant target square field and turns it into
// the double pawn step that must have produced it.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := pos.ToMove.Opposite()
	dir := chess.ColourOffset(mover)
	from, okFrom := target.Offset(0, -dir)
	to, okTo := target.Offset(0, dir)
	if !okFrom || !okTo {
		return fmt.Errorf("en passant square on wrong rank: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	pawn, ok := pos.Board.PieceAt(to)
	if !ok || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		// Nothing to capture; the square carries no information.
		return nil
	}

	snapshot := pawn
	snapshot.Square = from
	snapshot.Moved = false
	pos.LastMove = &chess.Move{Piece: snapshot, From: from, To: to, Kind: chess.Normal}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// ToFEN converts a position to a full six-field FEN string.
func ToFEN(pos Position) string {
	var sb strings.Builder

	writeKey(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// PositionKey returns the FEN without its clock fields. Two positions with
// equal keys count as the same position for repetition.
func PositionKey(pos Position) string {
	var sb strings.Builder
	writeKey(&sb, pos)
	return sb.String()
}

// PlacementFEN returns only the piece placement field.
func PlacementFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

func writeKey(sb *strings.Builder, pos Position) {
	writePiecePositions(sb, pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(sb, pos.ToMove)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling().String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant().String())
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece, ok := board.PieceAt(chess.Sq(col, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
