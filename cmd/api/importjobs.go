package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	jobService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/job"
	"github.com/spf13/cobra"
)

var importJobsCmd = &cobra.Command{
	Use:   "import-jobs <file.csv>",
	Short: "Stage jobs from a number,name CSV file and sync them into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportJobs,
}

func runImportJobs(cmd *cobra.Command, args []string) error {
	if cfg.Storage.Type == config.StorageMemory {
		return fmt.Errorf("import-jobs has no effect on in-memory storage; use POST /api/Jobs/Import")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	repos, err := openRepositories(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	imported, err := jobService.NewJobService(repos.tx, repos.jobs).Import(cmd.Context(), file)
	if err != nil {
		return err
	}
	slog.Info("Job import complete", "file", args[0], "imported", imported)
	return nil
}
