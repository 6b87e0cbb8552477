package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestLoadLoggerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "LOG_SQL_LEVEL"} {
			t.Setenv(key, "")
		}

		cfg := LoadLoggerConfigFromEnv()

		assert.Equal(t, LoggerConfig{Level: "info", Format: "json", Output: "stdout", SQLLevel: "warn"}, cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("LOG_OUTPUT", "stderr")
		t.Setenv("LOG_SQL_LEVEL", "info")

		cfg := LoadLoggerConfigFromEnv()

		assert.Equal(t, LoggerConfig{Level: "debug", Format: "console", Output: "stderr", SQLLevel: "info"}, cfg)
	})
}

func TestLoggerConfig_Validate(t *testing.T) {
	valid := LoggerConfig{Level: "info", Format: "json", Output: "stdout", SQLLevel: "warn"}

	tests := []struct {
		name      string
		mutate    func(c *LoggerConfig)
		wantError string
	}{
		{name: "valid", mutate: func(*LoggerConfig) {}},
		{name: "empty sql level", mutate: func(c *LoggerConfig) { c.SQLLevel = "" }},
		{name: "debug console stderr", mutate: func(c *LoggerConfig) { c.Level, c.Format, c.Output = "debug", "console", "stderr" }},
		{name: "invalid level", mutate: func(c *LoggerConfig) { c.Level = "trace" }, wantError: "log level"},
		{name: "invalid format", mutate: func(c *LoggerConfig) { c.Format = "xml" }, wantError: "log format"},
		{name: "file output", mutate: func(c *LoggerConfig) { c.Output = "/var/log/app.log" }, wantError: "log output"},
		{name: "invalid sql level", mutate: func(c *LoggerConfig) { c.SQLLevel = "verbose" }, wantError: "LOG_SQL_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantError)
		})
	}
}

func TestLoggerConfig_IsProduction(t *testing.T) {
	assert.True(t, LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.True(t, LoggerConfig{Level: "error", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}

func TestLoggerConfig_GormLogLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"info":   gormlogger.Info,
		"":       gormlogger.Warn,
		"bogus":  gormlogger.Warn,
	}

	for in, want := range tests {
		assert.Equal(t, want, LoggerConfig{SQLLevel: in}.GormLogLevel(), in)
	}
}
