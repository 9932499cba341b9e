package main

import (
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/service/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default admin and user accounts that do not exist yet",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	if cfg.Storage.Type == config.StorageMemory {
		return fmt.Errorf("seed has no effect on in-memory storage; use serve --seed")
	}

	repos, err := openRepositories(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	created, err := seed.NewSeeder(repos.users).SeedUsers(cmd.Context())
	if err != nil {
		return err
	}
	slog.Info("Seeding complete", "created", created)
	return nil
}
