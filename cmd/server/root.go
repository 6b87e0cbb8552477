package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/config"
	"github.com/festy23/team_recruitment/internal/database/database"
	"github.com/festy23/team_recruitment/pkg/logger"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "server",
		Short:         "Team formation and recruitment service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

// bootstrap loads configuration, builds the logger and connects to the database.
func bootstrap(ctx context.Context) (config.Config, *zap.SugaredLogger, *gorm.DB, error) {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.New(ctx)
	if err != nil {
		log.Errorw("failed to connect to database", "error", err)
		return cfg, log, nil, err
	}
	return cfg, log, db, nil
}
