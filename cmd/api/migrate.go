package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ssm-admin/ssm-api/internal/persistence"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		if cfg.Database.DSN == "" {
			return errDSNRequired
		}
		return persistence.RunMigrations(cfg.Database, logger)
	},
}

var (
	migrateDownSteps int
	errDSNRequired   = errors.New("DB_DSN is required")
)

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateDownSteps < 0 {
			return errors.New("--steps must not be negative")
		}
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		if cfg.Database.DSN == "" {
			return errDSNRequired
		}
		return persistence.RollbackMigrations(cfg.Database, migrateDownSteps, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	migrateDownCmd.Flags().IntVar(&migrateDownSteps, "steps", 1, "number of migrations to roll back, 0 for all")
}
