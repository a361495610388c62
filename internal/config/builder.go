package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGames sets the number of games to play.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = n
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Workers = n
	return b
}

// WithMaxPlies caps the length of each game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.SelfPlay.MaxPlies = n
	return b
}

// WithSeed sets the base seed of the random selector.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.Seed = seed
	return b
}

// WithMode sets the game mode and, for computer-vs-human, the computer's side.
func (b *ConfigBuilder) WithMode(mode, computerSide string) *ConfigBuilder {
	b.cfg.SelfPlay.Mode = mode
	if computerSide != "" {
		b.cfg.SelfPlay.ComputerSide = computerSide
	}
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.SelfPlay.StartFEN = fen
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithExactDuplicates requires identical move sequences for duplicates.
func (b *ConfigBuilder) WithExactDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.ExactMatch = enabled
	return b
}

// WithOutputFormat sets the game record format (text, json or none).
func (b *ConfigBuilder) WithOutputFormat(format string) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutputFile writes game records to path instead of stdout.
func (b *ConfigBuilder) WithOutputFile(path string) *ConfigBuilder {
	b.cfg.Output.File = path
	return b
}

// WithExtendedMaterialDraw enables the extended insufficient-material rule.
func (b *ConfigBuilder) WithExtendedMaterialDraw(enabled bool) *ConfigBuilder {
	b.cfg.Rules.ExtendedMaterialDraw = enabled
	return b
}

// WithMemoryCache keeps scores in process memory.
func (b *ConfigBuilder) WithMemoryCache() *ConfigBuilder {
	b.cfg.Cache.Backend = CacheMemory
	return b
}

// WithRedisCache keeps scores in Redis.
func (b *ConfigBuilder) WithRedisCache(url string) *ConfigBuilder {
	b.cfg.Cache.Backend = CacheRedis
	b.cfg.Cache.RedisURL = url
	return b
}

// WithoutCache disables the score cache.
func (b *ConfigBuilder) WithoutCache() *ConfigBuilder {
	b.cfg.Cache.Backend = CacheNone
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithJSONLogs switches to JSON log output.
func (b *ConfigBuilder) WithJSONLogs(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Log.Format = "json"
	} else {
		b.cfg.Log.Format = "console"
	}
	return b
}
