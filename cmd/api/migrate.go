package main

import (
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL schema migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if cfg.Storage.Type != config.StoragePostgres {
		return fmt.Errorf("migrate requires APP_STORAGE=%s, got %q", config.StoragePostgres, cfg.Storage.Type)
	}

	repos, err := openRepositories(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	applied, err := repos.db.Migrate(cmd.Context())
	if err != nil {
		return err
	}
	slog.Info("Migrations complete", "applied", applied)
	return nil
}
