package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/config"
	"github.com/lgbarn/rchess-go/internal/errors"
)

// ScoreStore caches position scores under position keys.
// Implementations are safe for concurrent use.
type ScoreStore interface {
	Store(ctx context.Context, key string, score int) error
	// Retrieve returns false when no score is cached for key.
	Retrieve(ctx context.Context, key string) (int, bool, error)
}

// MemoryStore keeps scores in a map.
type MemoryStore struct {
	mu     sync.RWMutex
	scores map[string]int
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// Store implements ScoreStore.
func (s *MemoryStore) Store(_ context.Context, key string, score int) error {
	s.mu.Lock()
	s.scores[key] = score
	s.mu.Unlock()
	return nil
}

// Retrieve implements ScoreStore.
func (s *MemoryStore) Retrieve(_ context.Context, key string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[key]
	return score, ok, nil
}

// Len returns the number of cached scores.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scores)
}

// NopStore caches nothing.
type NopStore struct{}

// Store implements ScoreStore.
func (NopStore) Store(context.Context, string, int) error { return nil }

// Retrieve implements ScoreStore.
func (NopStore) Retrieve(context.Context, string) (int, bool, error) { return 0, false, nil }

// OpenStore builds the store selected by cfg. The returned close function
// releases any connection and is never nil. A Redis backend is pinged so an
// unreachable server is reported here rather than on first use.
func OpenStore(ctx context.Context, cfg config.CacheConfig) (ScoreStore, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Backend {
	case config.CacheNone:
		return NopStore{}, noClose, nil
	case config.CacheMemory, "":
		return NewMemoryStore(), noClose, nil
	case config.CacheRedis:
		ttl := time.Duration(cfg.TTLSeconds) * time.Second
		store, err := NewRedisStoreFromURL(cfg.RedisURL, cfg.KeyPrefix, ttl)
		if err != nil {
			return nil, nil, err
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("cache backend %q: %w", cfg.Backend, errors.ErrInvalidConfig)
}

// CachedScore returns the cached score for key, evaluating the board and
// caching the result on a miss. The boolean reports a cache hit.
func CachedScore(ctx context.Context, store ScoreStore, eval Evaluator, key string,
	board *chess.Board, perspective chess.Colour) (int, bool, error) {
	if score, ok, err := store.Retrieve(ctx, key); err != nil || ok {
		return score, ok, err
	}
	score := eval.Evaluate(board, perspective)
	return score, false, store.Store(ctx, key, score)
}
