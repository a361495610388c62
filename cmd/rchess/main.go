// rchess plays chess games between the computer and itself or a human and
// records the outcomes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lgbarn/rchess-go/internal/config"
	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/game"
	"github.com/lgbarn/rchess-go/internal/obslog"
	"github.com/lgbarn/rchess-go/internal/output"
	"github.com/lgbarn/rchess-go/internal/search"
	"github.com/lgbarn/rchess-go/internal/selfplay"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("rchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, setFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := obslog.Init(cfg.Log)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file if one is given, applies the
// flags over it and validates the result.
func loadConfig(path string, set map[string]bool) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(cfg, set)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run dispatches on the game mode: batch self-play when the computer plays
// both sides, an interactive session otherwise.
func run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) error {
	mode, err := game.ParseMode(cfg.SelfPlay.Mode)
	if err != nil {
		return err
	}
	if mode == game.ComputerVsComputer {
		return runSelfPlay(ctx, cfg, stdout, stderr, logger)
	}
	return runInteractive(ctx, cfg, stdin, stdout, logger)
}

// runSelfPlay plays the configured number of games and reports statistics.
func runSelfPlay(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, logger *zap.Logger) error {
	w, closeOut, err := openOutput(cfg.Output.File, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	writer, err := output.NewGameWriter(cfg.Output, w)
	if err != nil {
		return err
	}

	store, closeStore, err := search.OpenStore(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	runner := selfplay.NewRunner(cfg,
		selfplay.WithStore(store),
		selfplay.WithWriter(writer),
		selfplay.WithLogger(logger))

	summary, err := runner.Run(ctx)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}
	if summary != nil {
		reportStatistics(stderr, summary)
	}
	return err
}

// runInteractive plays one game against a human on stdin and stdout. The
// finished game is written only when an output file is configured.
func runInteractive(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	fen := cfg.SelfPlay.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	g, err := game.NewFromFEN(fen, selfplay.GameOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	session := selfplay.NewSession(g, search.NewRandomSelector(cfg.SelfPlay.Seed), stdin, stdout)
	if err := session.Play(ctx); err != nil {
		return err
	}

	if cfg.Output.File == "" || g.Ply() == 0 {
		return nil
	}
	w, closeOut, err := openOutput(cfg.Output.File, stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	writer, err := output.NewGameWriter(cfg.Output, w)
	if err != nil {
		return err
	}
	if err := writer.WriteGame(&output.Record{Round: 1, Game: g, Truncated: !g.IsOver()}); err != nil {
		return err
	}
	return writer.Close()
}

// openOutput opens the output file, or returns stdout when path is empty.
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: path is user-specified
	if err != nil {
		return nil, nil, fmt.Errorf("create output file %s: %w", path, err)
	}
	return file, func() { _ = file.Close() }, nil
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, s *selfplay.Summary) {
	fmt.Fprintf(w, "%d game(s): %d white win(s), %d black win(s), %d draw(s), %d unfinished.\n",
		s.Games, s.WhiteWins, s.BlackWins, s.Draws, s.Unfinished)
	if s.Duplicates > 0 {
		fmt.Fprintf(w, "%d duplicate(s), %d game(s) written.\n", s.Duplicates, s.Written)
	}
	if s.Errors > 0 {
		fmt.Fprintf(w, "%d game(s) failed.\n", s.Errors)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: rchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games under the full rules and records the results.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nIn computer-vs-human and human-vs-human modes enter moves as e2e4.\n")
	fmt.Fprintf(os.Stderr, "Type moves to list the legal moves, fen to print the position, quit to stop.\n")
}
