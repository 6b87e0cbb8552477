package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/festy23/team_recruitment/internal/database/database"
	"github.com/festy23/team_recruitment/internal/database/migrate"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, log, db, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = database.Close(db) }()

				if err := migrate.Migrate(db); err != nil {
					return err
				}
				log.Infow("migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (one step by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				_, log, db, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = database.Close(db) }()

				if err := migrate.Rollback(db, steps); err != nil {
					return err
				}
				log.Infow("migrations rolled back", "steps", steps)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, _, db, err := bootstrap(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = database.Close(db) }()

				version, dirty, err := migrate.Version(db)
				if err != nil {
					return err
				}
				cmd.Printf("version=%d dirty=%t\n", version, dirty)
				return nil
			},
		},
	)
	return cmd
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}
