package config

import (
	"fmt"
	"time"
)

// RedisConfig holds the connection used to publish recruitment events.
type RedisConfig struct {
	// URL is a redis:// URL. Empty disables the Redis publisher.
	URL string
	// Stream is the stream key events are appended to.
	Stream string
	// StreamMaxLen caps the stream length (approximate trimming).
	StreamMaxLen int64
	PoolSize     int
	DialTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadRedisConfigFromEnv loads Redis configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		URL:          GetEnv("REDIS_URL", ""),
		Stream:       GetEnv("REDIS_STREAM", "team-recruitment-events"),
		StreamMaxLen: GetEnvInt64("REDIS_STREAM_MAX_LEN", 100000),
		PoolSize:     GetEnvInt("REDIS_POOL_SIZE", 10),
		DialTimeout:  GetEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		WriteTimeout: GetEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
	}
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// Validate validates Redis configuration.
func (c RedisConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.Stream == "" {
		return fmt.Errorf("REDIS_STREAM must not be empty")
	}
	if c.StreamMaxLen < 0 {
		return fmt.Errorf("REDIS_STREAM_MAX_LEN must be non-negative")
	}
	if c.PoolSize <= 0 {
		return fmt.Errorf("REDIS_POOL_SIZE must be greater than 0")
	}
	return nil
}
