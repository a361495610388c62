package config

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress skips writing games whose final position was already
	// reached by an earlier game.
	Suppress bool `yaml:"suppress"`

	// ExactMatch only treats games as duplicates when their move sequences
	// are identical too.
	ExactMatch bool `yaml:"exact_match"`

	// MaxCapacity bounds the number of remembered games (0 = unlimited).
	MaxCapacity int `yaml:"max_capacity"`
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return invalid("max_capacity", "must not be negative (got %d)", d.MaxCapacity)
	}
	return nil
}
