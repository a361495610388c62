// Package search picks moves for the computer side and caches position
// scores. It consumes the rules engine and never changes game state.
package search

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/engine"
)

// Selector picks a move for the side to move.
type Selector interface {
	// SelectMove returns one of the legal moves of toMove, or false when
	// there is none or ctx is done.
	SelectMove(ctx context.Context, board *chess.Board, toMove chess.Colour, last *chess.Move) (chess.Move, bool)
}

// RandomSelector picks uniformly among the legal moves. It is safe for
// concurrent use; with a fixed seed and a single caller the sequence of
// choices is reproducible.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector creates a selector seeded with seed.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))}
}

// SelectMove implements Selector.
func (s *RandomSelector) SelectMove(ctx context.Context, board *chess.Board, toMove chess.Colour, last *chess.Move) (chess.Move, bool) {
	if ctx.Err() != nil {
		return chess.Move{}, false
	}
	moves := engine.LegalMoves(board, toMove, last)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	s.mu.Lock()
	i := s.rng.IntN(len(moves))
	s.mu.Unlock()
	return moves[i], true
}
