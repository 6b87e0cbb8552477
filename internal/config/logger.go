package config

import (
	"fmt"
	"slices"

	gormlogger "gorm.io/gorm/logger"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
	logOutputs = []string{"stdout", "stderr"}
	sqlLevels  = map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"info":   gormlogger.Info,
	}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string
	// Format is the logging format (json, console).
	Format string
	// Output is stdout or stderr.
	Output string
	// SQLLevel controls GORM query logging (silent, error, warn, info).
	SQLLevel string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:    GetEnv("LOG_LEVEL", "info"),
		Format:   GetEnv("LOG_FORMAT", "json"),
		Output:   GetEnv("LOG_OUTPUT", "stdout"),
		SQLLevel: GetEnv("LOG_SQL_LEVEL", "warn"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid log level: %s (must be: debug, info, warn, error)", c.Level)
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid log format: %s (must be: json, console)", c.Format)
	}
	if !slices.Contains(logOutputs, c.Output) {
		return fmt.Errorf("invalid log output: %s (must be: stdout, stderr)", c.Output)
	}
	if _, ok := sqlLevels[c.SQLLevel]; c.SQLLevel != "" && !ok {
		return fmt.Errorf("invalid LOG_SQL_LEVEL: %s (must be: silent, error, warn, info)", c.SQLLevel)
	}
	return nil
}

// IsProduction returns true if logger is configured for production.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}

// GormLogLevel maps SQLLevel to the GORM logger level. Unknown or empty values mean warn.
func (c LoggerConfig) GormLogLevel() gormlogger.LogLevel {
	if level, ok := sqlLevels[c.SQLLevel]; ok {
		return level
	}
	return gormlogger.Warn
}
