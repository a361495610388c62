package config

import (
	"runtime"
	"strings"
)

// Game modes.
const (
	ModeComputerVsComputer = "computer-vs-computer"
	ModeComputerVsHuman    = "computer-vs-human"
	ModeHumanVsHuman       = "human-vs-human"
)

// SelfPlayConfig holds settings for the game driver.
type SelfPlayConfig struct {
	// Games is the number of games to play.
	Games int `yaml:"games"`

	// Workers is the number of games played concurrently.
	Workers int `yaml:"workers"`

	// BufferSize is the capacity of the work and result queues.
	BufferSize int `yaml:"buffer_size"`

	// MaxPlies stops a game that runs longer (0 = no limit).
	MaxPlies int `yaml:"max_plies"`

	// Seed for the random move selector. Game i uses Seed+i.
	Seed int64 `yaml:"seed"`

	// Mode is one of the Mode* constants.
	Mode string `yaml:"mode"`

	// ComputerSide is "white" or "black" in computer-vs-human mode.
	ComputerSide string `yaml:"computer_side"`

	// StartFEN is the starting position (empty = standard).
	StartFEN string `yaml:"start_fen"`
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:        1,
		Workers:      runtime.NumCPU(),
		BufferSize:   100,
		MaxPlies:     0,
		Seed:         1,
		Mode:         ModeComputerVsComputer,
		ComputerSide: "white",
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 0 {
		return invalid("games", "must not be negative (got %d)", s.Games)
	}
	if s.Workers < 1 {
		return invalid("workers", "must be at least 1 (got %d)", s.Workers)
	}
	if s.BufferSize < 0 {
		return invalid("buffer_size", "must not be negative (got %d)", s.BufferSize)
	}
	if s.MaxPlies < 0 {
		return invalid("max_plies", "must not be negative (got %d)", s.MaxPlies)
	}
	switch s.Mode {
	case ModeComputerVsComputer, ModeComputerVsHuman, ModeHumanVsHuman:
	default:
		return invalid("mode", "unknown mode %q", s.Mode)
	}
	switch strings.ToLower(s.ComputerSide) {
	case "white", "black":
	default:
		return invalid("computer_side", "must be white or black (got %q)", s.ComputerSide)
	}
	return nil
}
