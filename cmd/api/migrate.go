package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/personal-finance/tracker/internal/infra/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded SQL migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMigrate(db.MigrateUp)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMigrate(db.MigrateDown)
		},
	})

	return cmd
}

func runMigrate(direction db.MigrationDirection) error {
	slog.Info("Running database migrations", "direction", direction)
	if err := db.RunMigrations(cfg.Database.URL, direction); err != nil {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}
	return nil
}
