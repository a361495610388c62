package config

import "strings"

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is console or json.
	Format string `yaml:"format"`

	// Caller adds the calling file and line to each entry.
	Caller bool `yaml:"caller"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: "console",
	}
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("level", "unknown level %q", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "console", "json":
	default:
		return invalid("format", "unknown format %q", l.Format)
	}
	return nil
}
