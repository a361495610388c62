// Package selfplay drives games between the computer and itself or a human.
// Batch self-play fans games out over the worker pool; the interactive
// session plays one game over a text stream.
package selfplay

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lgbarn/rchess-go/internal/config"
	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/errors"
	"github.com/lgbarn/rchess-go/internal/game"
	"github.com/lgbarn/rchess-go/internal/hashing"
	"github.com/lgbarn/rchess-go/internal/output"
	"github.com/lgbarn/rchess-go/internal/search"
	"github.com/lgbarn/rchess-go/internal/worker"
)

// Summary tallies the games of a run.
type Summary struct {
	Games        int
	WhiteWins    int
	BlackWins    int
	Draws        int
	Unfinished   int // stopped by the ply limit or cancellation
	Duplicates   int
	Written      int
	Errors       int
	CacheHits    int64
	StoreErrors  int64
	Terminations map[string]int
}

func (s *Summary) add(g *game.Game) {
	s.Games++
	switch g.Result() {
	case game.WhiteWins:
		s.WhiteWins++
	case game.BlackWins:
		s.BlackWins++
	case game.Draw:
		s.Draws++
	default:
		s.Unfinished++
		return
	}
	s.Terminations[g.Termination().String()]++
}

// SelectorFactory builds the move selector for one game.
type SelectorFactory func(seed int64) search.Selector

// Runner plays batches of computer-vs-computer games.
type Runner struct {
	cfg         *config.Config
	store       search.ScoreStore
	eval        search.Evaluator
	writer      output.GameWriter
	newSelector SelectorFactory
	logger      *zap.Logger

	cacheHits   atomic.Int64
	storeErrors atomic.Int64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStore sets the position score cache.
func WithStore(store search.ScoreStore) RunnerOption {
	return func(r *Runner) {
		if store != nil {
			r.store = store
		}
	}
}

// WithWriter sets where finished games are written.
func WithWriter(w output.GameWriter) RunnerOption {
	return func(r *Runner) {
		r.writer = w
	}
}

// WithSelectorFactory replaces the random selector.
func WithSelectorFactory(f SelectorFactory) RunnerOption {
	return func(r *Runner) {
		if f != nil {
			r.newSelector = f
		}
	}
}

// WithLogger sets the logger for the run and its games.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner for cfg. Without options scores are not
// cached and games are not written.
func NewRunner(cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:    cfg,
		store:  search.NopStore{},
		eval:   search.MaterialEvaluator{},
		logger: zap.NewNop(),
		newSelector: func(seed int64) search.Selector {
			return search.NewRandomSelector(seed)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays cfg.SelfPlay.Games games on the worker pool and writes them in
// round order. Duplicates are detected in that order too, so the first game
// reaching a final position is the original whatever the scheduling.
// Cancelling ctx stops unstarted games and cuts running ones short.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	sp := r.cfg.SelfPlay
	mode, err := game.ParseMode(sp.Mode)
	if err != nil {
		return nil, err
	}
	if mode != game.ComputerVsComputer {
		return nil, fmt.Errorf("batch self-play needs %s, got %s: %w",
			game.ComputerVsComputer, mode, errors.ErrInvalidConfig)
	}
	if _, err := game.NewFromFEN(r.startFEN()); err != nil {
		return nil, err
	}

	detector := hashing.NewThreadSafeDuplicateDetector(r.cfg.Duplicate.ExactMatch, r.cfg.Duplicate.MaxCapacity)
	summary := &Summary{Terminations: make(map[string]int)}

	pool := worker.NewPoolWithOptions(r.PlayGame,
		worker.WithWorkers(sp.Workers),
		worker.WithBufferSize(sp.BufferSize))
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i := 0; i < sp.Games; i++ {
			if ctx.Err() != nil {
				return
			}
			pool.Submit(worker.WorkItem{Index: i, Seed: sp.Seed + int64(i)})
		}
	}()

	r.logger.Info("self-play started",
		zap.Int("games", sp.Games),
		zap.Int("workers", pool.NumWorkers()))

	// Results arrive in completion order; hold them until their turn.
	pending := make(map[int]worker.ProcessResult)
	next := 0
	var writeErr error
	for res := range pool.Results() {
		pending[res.Index] = res
		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := r.emit(res, detector, summary); err != nil && writeErr == nil {
				writeErr = err
				pool.Stop()
			}
		}
	}
	// Rounds missing after cancellation leave later ones stranded.
	for i := next; len(pending) > 0; i++ {
		if res, ok := pending[i]; ok {
			delete(pending, i)
			if err := r.emit(res, detector, summary); err != nil && writeErr == nil {
				writeErr = err
			}
		}
	}

	if r.writer != nil {
		if err := r.writer.Flush(); err != nil && writeErr == nil {
			writeErr = err
		}
	}
	summary.CacheHits = r.cacheHits.Load()
	summary.StoreErrors = r.storeErrors.Load()

	r.logger.Info("self-play finished",
		zap.Int("games", summary.Games),
		zap.Int("white_wins", summary.WhiteWins),
		zap.Int("black_wins", summary.BlackWins),
		zap.Int("draws", summary.Draws),
		zap.Int("unfinished", summary.Unfinished),
		zap.Int("duplicates", summary.Duplicates))
	return summary, writeErr
}

// emit tallies and writes one finished game.
func (r *Runner) emit(res worker.ProcessResult, detector *hashing.ThreadSafeDuplicateDetector, summary *Summary) error {
	if res.Error != nil {
		summary.Errors++
		r.logger.Error("game failed", zap.Int("round", res.Index+1), zap.Error(res.Error))
		return nil
	}

	g := res.Game
	res.Duplicate = detector.CheckGame(g)
	summary.add(g)
	if res.Duplicate {
		summary.Duplicates++
		r.logger.Debug("duplicate game",
			zap.Int("round", res.Index+1),
			zap.String("final", res.FinalKey))
		if r.cfg.Duplicate.Suppress {
			return nil
		}
	}

	if r.writer == nil {
		return nil
	}
	rec := &output.Record{
		Round:     res.Index + 1,
		Game:      g,
		Truncated: !g.IsOver(),
		Duplicate: res.Duplicate,
	}
	if err := r.writer.WriteGame(rec); err != nil {
		return fmt.Errorf("write round %d: %w", rec.Round, err)
	}
	summary.Written++
	return nil
}

// PlayGame plays one computer-vs-computer game. It is the pool's
// ProcessFunc.
func (r *Runner) PlayGame(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index}

	g, err := game.NewFromFEN(r.startFEN(), r.gameOptions()...)
	if err != nil {
		result.Error = err
		return result
	}
	selector := r.newSelector(item.Seed)
	maxPlies := r.cfg.SelfPlay.MaxPlies

	for !g.IsOver() {
		if maxPlies > 0 && g.Ply() >= maxPlies {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if !ComputerMove(ctx, g, selector) {
			if ctx.Err() == nil && !g.IsOver() {
				result.Error = errors.Wrapf(errors.ErrNoMove, "round %d ply %d", item.Index+1, g.Ply()+1)
				return result
			}
			break
		}
		r.score(ctx, g)
	}

	result.Game = g
	result.FinalKey = g.PositionKey()
	return result
}

// score caches the evaluation of the position just reached from the point
// of view of the side that moved into it.
func (r *Runner) score(ctx context.Context, g *game.Game) {
	pos := g.Position()
	_, hit, err := search.CachedScore(ctx, r.store, r.eval, g.PositionKey(), pos.Board, pos.ToMove.Opposite())
	if err != nil {
		if r.storeErrors.Add(1) == 1 {
			r.logger.Warn("score store failing", zap.Error(err))
		}
		return
	}
	if hit {
		r.cacheHits.Add(1)
	}
}

func (r *Runner) startFEN() string {
	if r.cfg.SelfPlay.StartFEN != "" {
		return r.cfg.SelfPlay.StartFEN
	}
	return engine.InitialFEN
}

func (r *Runner) gameOptions() []game.Option {
	return GameOptions(r.cfg, r.logger)
}
