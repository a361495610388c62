package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lgbarn/rchess-go/internal/config"
	"github.com/lgbarn/rchess-go/internal/engine"
	chesserrors "github.com/lgbarn/rchess-go/internal/errors"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// storeContract runs the behaviour every ScoreStore shares.
func storeContract(t *testing.T, store ScoreStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Retrieve(ctx, "missing"); err != nil || ok {
		t.Errorf("Retrieve(missing) = %v, %v; want miss", ok, err)
	}
	if err := store.Store(ctx, "k", -250); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	got, ok, err := store.Retrieve(ctx, "k")
	if err != nil || !ok || got != -250 {
		t.Errorf("Retrieve(k) = %d, %v, %v; want -250, true, nil", got, ok, err)
	}
	if err := store.Store(ctx, "k", 30); err != nil {
		t.Fatalf("Store() overwrite error = %v", err)
	}
	if got, _, _ := store.Retrieve(ctx, "k"); got != 30 {
		t.Errorf("Retrieve(k) after overwrite = %d, want 30", got)
	}
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	keys := []string{"a", "b", "c", "d"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j, k := range keys {
				_ = store.Store(ctx, k, n*j)
				_, _, _ = store.Retrieve(ctx, k)
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != len(keys) {
		t.Errorf("Len() = %d, want %d", store.Len(), len(keys))
	}
}

func TestNopStore(t *testing.T) {
	ctx := context.Background()
	var store NopStore
	if err := store.Store(ctx, "k", 1); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if _, ok, _ := store.Retrieve(ctx, "k"); ok {
		t.Error("NopStore returned a cached score")
	}
}

func TestRedisStore(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisStore(rdb, "test:", 0)
	storeContract(t, store)

	if got, err := mr.Get("test:k"); err != nil || got != "30" {
		t.Errorf("raw key test:k = %q, %v; want 30", got, err)
	}
}

func TestRedisStore_TTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisStore(rdb, "ttl:", time.Minute)
	ctx := context.Background()

	if err := store.Store(ctx, "pos", 5); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if got := mr.TTL("ttl:pos"); got != time.Minute {
		t.Errorf("TTL = %v, want 1m", got)
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, err := store.Retrieve(ctx, "pos"); err != nil || ok {
		t.Errorf("Retrieve() after expiry = %v, %v; want miss", ok, err)
	}
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisStore(rdb, "", 0)
	mr.Close()

	ctx := context.Background()
	if err := store.Store(ctx, "k", 1); !errors.Is(err, chesserrors.ErrStoreUnavailable) {
		t.Errorf("Store() error = %v, want ErrStoreUnavailable", err)
	}
	if _, _, err := store.Retrieve(ctx, "k"); !errors.Is(err, chesserrors.ErrStoreUnavailable) {
		t.Errorf("Retrieve() error = %v, want ErrStoreUnavailable", err)
	}
	if err := store.Ping(ctx); !errors.Is(err, chesserrors.ErrStoreUnavailable) {
		t.Errorf("Ping() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestOpenStore(t *testing.T) {
	mr, _ := newTestRedis(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     config.CacheConfig
		wantErr error
		check   func(t *testing.T, s ScoreStore)
	}{
		{
			name: "none",
			cfg:  config.CacheConfig{Backend: config.CacheNone},
			check: func(t *testing.T, s ScoreStore) {
				if _, ok := s.(NopStore); !ok {
					t.Errorf("store = %T, want NopStore", s)
				}
			},
		},
		{
			name: "memory",
			cfg:  config.CacheConfig{Backend: config.CacheMemory},
			check: func(t *testing.T, s ScoreStore) {
				if _, ok := s.(*MemoryStore); !ok {
					t.Errorf("store = %T, want *MemoryStore", s)
				}
			},
		},
		{
			name: "redis",
			cfg:  config.CacheConfig{Backend: config.CacheRedis, RedisURL: "redis://" + mr.Addr() + "/0", KeyPrefix: "open:"},
			check: func(t *testing.T, s ScoreStore) {
				if err := s.Store(ctx, "x", 9); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
				if !mr.Exists("open:x") {
					t.Error("key open:x not written")
				}
			},
		},
		{
			name:    "bad url",
			cfg:     config.CacheConfig{Backend: config.CacheRedis, RedisURL: "http://nowhere"},
			wantErr: chesserrors.ErrInvalidConfig,
		},
		{
			name:    "unknown backend",
			cfg:     config.CacheConfig{Backend: "memcached"},
			wantErr: chesserrors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeFn, err := OpenStore(ctx, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("OpenStore() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenStore() error = %v", err)
			}
			defer func() { _ = closeFn() }()
			tt.check(t, store)
		})
	}
}

func TestCachedScore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	pos := engine.NewInitialPosition()
	key := engine.PositionKey(pos)

	score, hit, err := CachedScore(ctx, store, MaterialEvaluator{}, key, pos.Board, pos.ToMove)
	if err != nil || hit || score != 0 {
		t.Errorf("first CachedScore() = %d, %v, %v; want 0, miss, nil", score, hit, err)
	}
	_ = store.Store(ctx, key, 77)
	score, hit, err = CachedScore(ctx, store, MaterialEvaluator{}, key, pos.Board, pos.ToMove)
	if err != nil || !hit || score != 77 {
		t.Errorf("second CachedScore() = %d, %v, %v; want 77, hit, nil", score, hit, err)
	}
}
