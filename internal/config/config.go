package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Auth selects how caller identity is established.
	Auth AuthConfig
	// Redis holds the event stream connection settings.
	Redis RedisConfig
	// Recruitment tunes the recruitment transaction retry budget.
	Recruitment RecruitmentConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// MetricsEnabled exposes GET /metrics when true.
	MetricsEnabled bool
	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:         LoadServerConfigFromEnv(),
		Logger:         LoadLoggerConfigFromEnv(),
		Auth:           LoadAuthConfigFromEnv(),
		Redis:          LoadRedisConfigFromEnv(),
		Recruitment:    LoadRecruitmentConfigFromEnv(),
		GinMode:        GetEnv("GIN_MODE", "release"),
		MetricsEnabled: GetEnvBool("METRICS_ENABLED", true),
		MigrateOnStart: GetEnvBool("MIGRATE_ON_START", false),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := c.Redis.Validate(); err != nil {
		return fmt.Errorf("redis config validation failed: %w", err)
	}

	if err := c.Recruitment.Validate(); err != nil {
		return fmt.Errorf("recruitment config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
