// Package config provides configuration for the rules engine and its
// self-play driver.
package config

import (
	"fmt"

	"github.com/lgbarn/rchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	SelfPlay  SelfPlayConfig  `yaml:"selfplay"`
	Rules     RulesConfig     `yaml:"rules"`
	Duplicate DuplicateConfig `yaml:"duplicates"`
	Output    OutputConfig    `yaml:"output"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SelfPlay:  *NewSelfPlayConfig(),
		Rules:     *NewRulesConfig(),
		Duplicate: *NewDuplicateConfig(),
		Output:    *NewOutputConfig(),
		Cache:     *NewCacheConfig(),
		Log:       *NewLogConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.SelfPlay.Validate(); err != nil {
		return fmt.Errorf("selfplay: %w", err)
	}
	if err := c.Duplicate.Validate(); err != nil {
		return fmt.Errorf("duplicates: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// RulesConfig holds optional rule variations.
type RulesConfig struct {
	// ExtendedMaterialDraw also draws K+minor vs K and same-coloured
	// bishops, instead of only bare kings.
	ExtendedMaterialDraw bool `yaml:"extended_material_draw"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}

// invalid builds a configuration error for one field.
func invalid(field string, format string, args ...interface{}) error {
	return fmt.Errorf("%s %s: %w", field, fmt.Sprintf(format, args...), errors.ErrInvalidConfig)
}
