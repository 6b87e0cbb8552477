// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appConfig "github.com/festy23/team_recruitment/internal/config"
	"github.com/festy23/team_recruitment/internal/database/config"
	"github.com/festy23/team_recruitment/internal/database/pool"
	"github.com/festy23/team_recruitment/pkg/retry"
)

// GormConfig is shared by every connection the service opens. TranslateError
// maps driver-specific unique violations to gorm.ErrDuplicatedKey.
// Query logging follows LOG_SQL_LEVEL.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(appConfig.LoadLoggerConfigFromEnv().GormLogLevel()),
	}
}

// New creates a new database connection using environment variables.
func New(ctx context.Context) (*gorm.DB, error) {
	return NewWithConfig(ctx, config.LoadConfigFromEnv(), config.LoadRetryConfigFromEnv(), pool.LoadPoolConfigFromEnv())
}

// NewWithConfig opens a connection, retrying while postgres is still coming up.
func NewWithConfig(ctx context.Context, cfg config.Config, retryCfg retry.Config, poolCfg pool.Config) (*gorm.DB, error) {
	dsn := config.BuildDSN(cfg)

	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), GormConfig())
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
