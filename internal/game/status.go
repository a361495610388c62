package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/errors"
)

// Result is the outcome of a game.
type Result int

const (
	NoResult Result = iota // game still in progress
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN result token.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinFor returns the result of a win by the given colour.
func WinFor(colour chess.Colour) Result {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Termination records why a game ended.
type Termination int

const (
	Ongoing Termination = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
)

// String returns a human readable reason.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "ongoing"
	}
}

// Mode says which sides are played by the computer.
type Mode int

const (
	ComputerVsComputer Mode = iota
	ComputerVsHuman
	HumanVsHuman
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ComputerVsHuman:
		return "computer-vs-human"
	case HumanVsHuman:
		return "human-vs-human"
	default:
		return "computer-vs-computer"
	}
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "computer-vs-computer", "":
		return ComputerVsComputer, nil
	case "computer-vs-human":
		return ComputerVsHuman, nil
	case "human-vs-human":
		return HumanVsHuman, nil
	}
	return ComputerVsComputer, fmt.Errorf("unknown game mode %q: %w", s, errors.ErrInvalidConfig)
}

// ParseColour converts "white" or "black" into a colour.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidConfig)
}

// Status is a snapshot of the game state.
type Status struct {
	Board          *chess.Board
	ToMove         chess.Colour
	Result         Result
	Termination    Termination
	InCheck        bool
	HalfmoveClock  int
	FullmoveNumber int
	LastMove       *chess.Move

	// PositionKeys holds the key of every position reached, oldest first,
	// starting with the initial position.
	PositionKeys []string
}

// IsOver reports whether the game has concluded.
func (s Status) IsOver() bool {
	return s.Result != NoResult
}

// Castling returns the castling rights still available.
func (s Status) Castling() chess.CastlingRights {
	return engine.CastlingRightsOf(s.Board)
}

// EnPassant returns the en passant target square, or the zero Square.
func (s Status) EnPassant() chess.Square {
	return engine.EnPassantTarget(s.LastMove)
}

// Position returns the engine view of the status.
func (s Status) Position() engine.Position {
	return engine.Position{
		Board:          s.Board,
		ToMove:         s.ToMove,
		LastMove:       s.LastMove,
		HalfmoveClock:  s.HalfmoveClock,
		FullmoveNumber: s.FullmoveNumber,
	}
}

// clone returns a deep copy.
func (s Status) clone() Status {
	c := s
	c.Board = s.Board.Clone()
	if s.LastMove != nil {
		last := *s.LastMove
		c.LastMove = &last
	}
	c.PositionKeys = append([]string(nil), s.PositionKeys...)
	return c
}
