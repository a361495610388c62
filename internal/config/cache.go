package config

// Score cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig holds settings for the position score cache.
type CacheConfig struct {
	// Backend is one of none, memory or redis.
	Backend string `yaml:"backend"`

	// RedisURL is used by the redis backend, e.g. redis://localhost:6379/0.
	RedisURL string `yaml:"redis_url"`

	// KeyPrefix namespaces cache keys in a shared Redis.
	KeyPrefix string `yaml:"key_prefix"`

	// TTLSeconds expires cached scores (0 = never).
	TTLSeconds int `yaml:"ttl_seconds"`
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		Backend:    CacheMemory,
		KeyPrefix:  "rchess:score:",
		TTLSeconds: 3600,
	}
}

// Validate checks that the cache configuration is valid.
func (c *CacheConfig) Validate() error {
	switch c.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.RedisURL == "" {
			return invalid("redis_url", "is required for the redis backend")
		}
	default:
		return invalid("backend", "unknown backend %q", c.Backend)
	}
	if c.TTLSeconds < 0 {
		return invalid("ttl_seconds", "must not be negative (got %d)", c.TTLSeconds)
	}
	return nil
}
