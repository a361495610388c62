package testutil

import (
	"testing"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/game"
)

// MustPosition parses a FEN and calls t.Fatal on failure.
func MustPosition(t testing.TB, fen string) engine.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return pos
}

// MustGame starts a game from fen and plays the coordinate moves.
// It calls t.Fatal if the FEN is invalid or a move is rejected.
func MustGame(t testing.TB, fen string, moves ...string) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	PlayMoves(t, g, moves...)
	return g
}

// PlayMoves applies coordinate moves to g, calling t.Fatal on the first
// rejection.
func PlayMoves(t testing.TB, g *game.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.ApplyCoordinates(m); err != nil {
			t.Fatalf("move %q after %q: %v", m, g.Moves(), err)
		}
	}
}

// MoveStrings renders moves in coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
