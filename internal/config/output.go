package config

import "strings"

// Output formats for finished games.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputNone = "none"
)

// OutputConfig holds settings related to game record output.
type OutputConfig struct {
	// Format is text, json or none.
	Format string `yaml:"format"`

	// File receives game records (empty = stdout).
	File string `yaml:"file"`

	// MaxLineLength is the maximum line length of text move lists.
	MaxLineLength int `yaml:"max_line_length"`

	// JSONArray collects all games into one JSON document written at the
	// end instead of one object per game.
	JSONArray bool `yaml:"json_array"`

	// IncludeFEN adds the position after each move to JSON records.
	IncludeFEN bool `yaml:"include_fen"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        OutputText,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	switch strings.ToLower(o.Format) {
	case OutputText, OutputJSON, OutputNone:
	default:
		return invalid("format", "unknown output format %q", o.Format)
	}
	if o.MaxLineLength < 0 {
		return invalid("max_line_length", "must not be negative (got %d)", o.MaxLineLength)
	}
	return nil
}
