// Package game holds the state machine of a single chess game: whose turn it
// is, the clocks, repetition history and the outcome.
package game

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/engine"
)

// Game is a game in progress or concluded. It is not safe for concurrent use.
type Game struct {
	id           uuid.UUID
	status       Status
	history      []chess.Move
	repetitions  map[string]int
	mode         Mode
	computerSide chess.Colour
	initialFEN   string

	extendedMaterial bool
	logger           *zap.Logger
}

// New starts a game from the standard initial position.
func New(opts ...Option) *Game {
	return NewFromPosition(engine.NewInitialPosition(), opts...)
}

// NewFromBoard starts a game on the given board with White to move.
func NewFromBoard(board *chess.Board, opts ...Option) *Game {
	return NewFromPosition(engine.Position{
		Board:          board,
		ToMove:         chess.White,
		FullmoveNumber: 1,
	}, opts...)
}

// NewFromFEN starts a game from a FEN string.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewFromPosition(pos, opts...), nil
}

// NewFromPosition starts a game from a parsed position. The game takes
// ownership of the position's board.
func NewFromPosition(pos engine.Position, opts ...Option) *Game {
	if pos.Board == nil {
		pos.Board = chess.NewBoard()
	}
	if pos.FullmoveNumber < 1 {
		pos.FullmoveNumber = 1
	}

	g := &Game{
		id:           uuid.New(),
		repetitions:  make(map[string]int),
		mode:         ComputerVsComputer,
		computerSide: chess.White,
		logger:       zap.NewNop(),
		status: Status{
			Board:          pos.Board,
			ToMove:         pos.ToMove,
			HalfmoveClock:  pos.HalfmoveClock,
			FullmoveNumber: pos.FullmoveNumber,
			LastMove:       pos.LastMove,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game", g.id.String()))

	g.initialFEN = g.FEN()
	g.status.InCheck = engine.IsInCheck(g.status.Board, g.status.ToMove)
	g.recordPosition()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Mode returns which sides the computer plays.
func (g *Game) Mode() Mode {
	return g.mode
}

// ComputerSide returns the computer's colour in ComputerVsHuman mode.
func (g *Game) ComputerSide() chess.Colour {
	return g.computerSide
}

// IsComputerTurn reports whether the side to move is played by the computer.
func (g *Game) IsComputerTurn() bool {
	switch g.mode {
	case ComputerVsComputer:
		return true
	case ComputerVsHuman:
		return g.status.ToMove == g.computerSide
	default:
		return false
	}
}

// Status returns a copy of the current state.
func (g *Game) Status() Status {
	return g.status.clone()
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.status.Board.Clone()
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.status.ToMove
}

// Result returns the outcome, NoResult while the game is in progress.
func (g *Game) Result() Result {
	return g.status.Result
}

// Termination returns why the game ended.
func (g *Game) Termination() Termination {
	return g.status.Termination
}

// IsOver reports whether the game has concluded.
func (g *Game) IsOver() bool {
	return g.status.IsOver()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.status.InCheck
}

// LastMove returns the most recent move, or nil if none is known.
func (g *Game) LastMove() *chess.Move {
	if g.status.LastMove == nil {
		return nil
	}
	last := *g.status.LastMove
	return &last
}

// History returns the moves applied so far.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// Ply returns the number of moves applied.
func (g *Game) Ply() int {
	return len(g.history)
}

// Moves returns the history in coordinate notation separated by spaces.
func (g *Game) Moves() string {
	parts := make([]string, len(g.history))
	for i, m := range g.history {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// LegalMoves returns the legal moves of the side to move. It is empty once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.IsOver() {
		return nil
	}
	return engine.LegalMoves(g.status.Board, g.status.ToMove, g.status.LastMove)
}

// LegalMovesFrom returns the legal moves of the side to move's piece on sq.
// It is empty when sq holds no such piece or the game is over.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	st := &g.status
	piece, ok := st.Board.PieceAt(sq)
	if g.IsOver() || !ok || piece.Colour != st.ToMove {
		return nil
	}
	var legal []chess.Move
	for _, m := range engine.GenerateMovesForPiece(st.Board, piece, st.LastMove) {
		if engine.IsLegal(st.Board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// Position returns the current position. The board is a copy.
func (g *Game) Position() engine.Position {
	pos := g.status.Position()
	pos.Board = pos.Board.Clone()
	pos.LastMove = g.LastMove()
	return pos
}

// InitialFEN returns the FEN of the position the game started from.
func (g *Game) InitialFEN() string {
	return g.initialFEN
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.ToFEN(g.status.Position())
}

// PositionKey returns the repetition key of the current position.
func (g *Game) PositionKey() string {
	return engine.PositionKey(g.status.Position())
}

func (g *Game) recordPosition() int {
	key := g.PositionKey()
	g.status.PositionKeys = append(g.status.PositionKeys, key)
	g.repetitions[key]++
	return g.repetitions[key]
}
