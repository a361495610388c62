package search

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lgbarn/rchess-go/internal/errors"
)

// RedisStore keeps scores in Redis so several processes share one cache.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps a client. Keys are prefix+position key; ttl 0 keeps
// entries forever.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

// NewRedisStoreFromURL connects to the server named by a redis:// URL.
func NewRedisStoreFromURL(url, prefix string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w: %w", errors.ErrInvalidConfig, err)
	}
	return NewRedisStore(redis.NewClient(opts), prefix, ttl), nil
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

// Store implements ScoreStore.
func (s *RedisStore) Store(ctx context.Context, key string, score int) error {
	if err := s.rdb.Set(ctx, s.key(key), score, s.ttl).Err(); err != nil {
		return fmt.Errorf("store score: %w: %w", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// Retrieve implements ScoreStore.
func (s *RedisStore) Retrieve(ctx context.Context, key string) (int, bool, error) {
	score, err := s.rdb.Get(ctx, s.key(key)).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("retrieve score: %w: %w", errors.ErrStoreUnavailable, err)
	}
	return score, true, nil
}

// Ping checks that the server answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w: %w", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the client's connections.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
