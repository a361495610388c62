package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	chesserrors "github.com/lgbarn/rchess-go/internal/errors"
)

// TestSelfPlayConfig_Defaults verifies SelfPlayConfig has sensible defaults
func TestSelfPlayConfig_Defaults(t *testing.T) {
	cfg := NewSelfPlayConfig()

	if cfg.Games != 1 {
		t.Errorf("Games = %d, want 1", cfg.Games)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.Mode != ModeComputerVsComputer {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeComputerVsComputer)
	}
	if cfg.ComputerSide != "white" {
		t.Errorf("ComputerSide = %q, want white", cfg.ComputerSide)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
}

// TestSelfPlayConfig_Validate verifies self-play config validation
func TestSelfPlayConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SelfPlayConfig)
		wantErr bool
	}{
		{"defaults are valid", func(*SelfPlayConfig) {}, false},
		{"zero games is valid", func(c *SelfPlayConfig) { c.Games = 0 }, false},
		{"negative games", func(c *SelfPlayConfig) { c.Games = -1 }, true},
		{"no workers", func(c *SelfPlayConfig) { c.Workers = 0 }, true},
		{"negative max plies", func(c *SelfPlayConfig) { c.MaxPlies = -5 }, true},
		{"unknown mode", func(c *SelfPlayConfig) { c.Mode = "blitz" }, true},
		{"human mode", func(c *SelfPlayConfig) { c.Mode = ModeHumanVsHuman }, false},
		{"black computer", func(c *SelfPlayConfig) { c.ComputerSide = "Black" }, false},
		{"bad computer side", func(c *SelfPlayConfig) { c.ComputerSide = "green" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewSelfPlayConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestCacheConfig_Validate verifies cache config validation
func TestCacheConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     CacheConfig
		wantErr bool
	}{
		{"memory", CacheConfig{Backend: CacheMemory}, false},
		{"none", CacheConfig{Backend: CacheNone}, false},
		{"redis with url", CacheConfig{Backend: CacheRedis, RedisURL: "redis://localhost:6379/0"}, false},
		{"redis without url", CacheConfig{Backend: CacheRedis}, true},
		{"unknown backend", CacheConfig{Backend: "memcached"}, true},
		{"negative ttl", CacheConfig{Backend: CacheMemory, TTLSeconds: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLogConfig_Validate verifies log config validation
func TestLogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{"defaults", *NewLogConfig(), false},
		{"json debug", LogConfig{Level: "debug", Format: "json"}, false},
		{"upper case level", LogConfig{Level: "WARN", Format: "console"}, false},
		{"unknown level", LogConfig{Level: "loud", Format: "console"}, true},
		{"unknown format", LogConfig{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithGames(10).
		WithWorkers(4).
		WithMaxPlies(200).
		WithSeed(42).
		WithMode(ModeComputerVsHuman, "black").
		WithDuplicateSuppression(true).
		WithExactDuplicates(true).
		WithOutputFormat(OutputJSON).
		WithExtendedMaterialDraw(true).
		WithRedisCache("redis://127.0.0.1:6379/1").
		WithLogLevel("debug").
		WithJSONLogs(true).
		Build()

	if cfg.SelfPlay.Games != 10 || cfg.SelfPlay.Workers != 4 || cfg.SelfPlay.MaxPlies != 200 {
		t.Errorf("SelfPlay = %+v, want games=10 workers=4 max_plies=200", cfg.SelfPlay)
	}
	if cfg.SelfPlay.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.SelfPlay.Seed)
	}
	if cfg.SelfPlay.Mode != ModeComputerVsHuman || cfg.SelfPlay.ComputerSide != "black" {
		t.Errorf("Mode = %q/%q, want %q/black", cfg.SelfPlay.Mode, cfg.SelfPlay.ComputerSide, ModeComputerVsHuman)
	}
	if !cfg.Duplicate.Suppress || !cfg.Duplicate.ExactMatch || !cfg.Rules.ExtendedMaterialDraw {
		t.Error("boolean options not applied")
	}
	if cfg.Output.Format != OutputJSON {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisURL != "redis://127.0.0.1:6379/1" {
		t.Errorf("Cache = %+v, want redis backend", cfg.Cache)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want debug/json", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestParse verifies YAML decoding over defaults
func TestParse(t *testing.T) {
	data := []byte(`
selfplay:
  games: 25
  seed: 7
duplicates:
  suppress: true
output:
  format: json
  json_array: true
rules:
  extended_material_draw: true
cache:
  backend: none
log:
  format: json
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.SelfPlay.Games != 25 || cfg.SelfPlay.Seed != 7 {
		t.Errorf("SelfPlay = %+v, want games=25 seed=7", cfg.SelfPlay)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress = false, want true")
	}
	if cfg.Output.Format != OutputJSON || !cfg.Output.JSONArray || cfg.Output.MaxLineLength != 80 {
		t.Errorf("Output = %+v, want json array with default line length", cfg.Output)
	}
	if cfg.SelfPlay.Mode != ModeComputerVsComputer {
		t.Errorf("Mode = %q, want default %q", cfg.SelfPlay.Mode, ModeComputerVsComputer)
	}
	if !cfg.Rules.ExtendedMaterialDraw {
		t.Error("ExtendedMaterialDraw = false, want true")
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
}

// TestParse_Errors verifies malformed and invalid files are rejected
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "selfplay: [games"},
		{"wrong type", "selfplay:\n  games: many\n"},
		{"invalid value", "selfplay:\n  workers: 0\n"},
		{"redis without url", "cache:\n  backend: redis\n"},
		{"unknown output", "output:\n  format: pgn\n"},
		{"negative capacity", "duplicates:\n  max_capacity: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Parse() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestLoad verifies reading a config file from disk
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rchess.yaml")
	if err := os.WriteFile(path, []byte("selfplay:\n  games: 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SelfPlay.Games != 3 {
		t.Errorf("Games = %d, want 3", cfg.SelfPlay.Games)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
