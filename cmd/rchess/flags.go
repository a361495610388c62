// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/rchess-go/internal/config"
)

var (
	configFile = flag.String("config", "", "YAML configuration file; flags override its values")

	// Game options
	numGames  = flag.Int("n", 1, "Number of self-play games")
	workers   = flag.Int("j", 0, "Games played in parallel (default: number of CPUs)")
	seed      = flag.Int64("seed", 1, "Random seed; game i uses seed+i")
	maxPlies  = flag.Int("maxply", 0, "Stop games after N plies (0 = no limit)")
	mode      = flag.String("mode", config.ModeComputerVsComputer, "Game mode: computer-vs-computer, computer-vs-human, human-vs-human")
	computer  = flag.String("computer", "white", "Side played by the computer in computer-vs-human mode")
	startFEN  = flag.String("fen", "", "Start position in FEN (default: standard)")

	// Rule variations
	extendedMaterial = flag.Bool("extended-material", false, "Also draw K+minor vs K and same-coloured bishops")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", config.OutputText, "Output format: text, json, none")
	jsonArray    = flag.Bool("json-array", false, "Write all JSON games as one array at the end")
	moveFENs     = flag.Bool("movefen", false, "Include the position after each move in JSON output")
	lineLength   = flag.Int("w", 80, "Maximum line length of text move lists")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending in an already seen position")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also share the move sequence")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered games (0 = unlimited)")

	// Score cache
	cacheBackend = flag.String("cache", config.CacheMemory, "Score cache: none, memory, redis")
	redisURL     = flag.String("redis", "", "Redis URL for the redis cache backend")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "console", "Log format: console, json")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies command-line flags to the configuration. Only flags in
// set are applied so values from a configuration file survive; with no file
// every flag is applied and the flag defaults win.
func applyFlags(cfg *config.Config, set map[string]bool) {
	use := func(name string) bool {
		return *configFile == "" || set[name]
	}
	applyGameFlags(cfg, use)
	applyOutputFlags(cfg, use)
	applyDuplicateFlags(cfg, use)
	applyCacheFlags(cfg, use)
	applyLogFlags(cfg, use)
}

// applyGameFlags configures the self-play settings.
func applyGameFlags(cfg *config.Config, use func(string) bool) {
	if use("n") {
		cfg.SelfPlay.Games = *numGames
	}
	if use("j") && *workers > 0 {
		cfg.SelfPlay.Workers = *workers
	}
	if use("seed") {
		cfg.SelfPlay.Seed = *seed
	}
	if use("maxply") {
		cfg.SelfPlay.MaxPlies = *maxPlies
	}
	if use("mode") {
		cfg.SelfPlay.Mode = *mode
	}
	if use("computer") {
		cfg.SelfPlay.ComputerSide = *computer
	}
	if use("fen") {
		cfg.SelfPlay.StartFEN = *startFEN
	}
	if use("extended-material") {
		cfg.Rules.ExtendedMaterialDraw = *extendedMaterial
	}
}

// applyOutputFlags configures game record output.
func applyOutputFlags(cfg *config.Config, use func(string) bool) {
	if use("o") {
		cfg.Output.File = *outputFile
	}
	if use("format") {
		cfg.Output.Format = *outputFormat
	}
	if use("json-array") {
		cfg.Output.JSONArray = *jsonArray
	}
	if use("movefen") {
		cfg.Output.IncludeFEN = *moveFENs
	}
	if use("w") {
		cfg.Output.MaxLineLength = *lineLength
	}
}

// applyDuplicateFlags configures duplicate detection.
func applyDuplicateFlags(cfg *config.Config, use func(string) bool) {
	if use("D") {
		cfg.Duplicate.Suppress = *suppressDuplicates
	}
	if use("exact") {
		cfg.Duplicate.ExactMatch = *exactDuplicates
	}
	if use("duplicate-capacity") {
		cfg.Duplicate.MaxCapacity = *duplicateCapacity
	}
}

// applyCacheFlags configures the score cache.
func applyCacheFlags(cfg *config.Config, use func(string) bool) {
	if use("cache") {
		cfg.Cache.Backend = *cacheBackend
	}
	if use("redis") && *redisURL != "" {
		cfg.Cache.RedisURL = *redisURL
	}
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, use func(string) bool) {
	if use("log-level") {
		cfg.Log.Level = *logLevel
	}
	if use("log-format") {
		cfg.Log.Format = *logFormat
	}
}
