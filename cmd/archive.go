package cmd

import (
	"fmt"
	"time"

	"fridge-manager/core/config"
	"fridge-manager/core/logger"
	"fridge-manager/core/storage"
	"fridge-manager/feature/scan"

	"github.com/spf13/cobra"
)

var (
	// Flags for archive prune command
	pruneDays int
	pruneYes  bool
)

// archiveCmd is the parent command for scan archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage archived scan frames",
}

var archivePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete archived frames older than the retention window",
	Long: `Deletes archived scan frames from object storage once they fall out
of the retention window.

Examples:
  # Prune with the configured retention (storage.retention_days)
  archive prune

  # Prune everything older than one day, non-interactive
  archive prune --days 1 --yes`,
	RunE: runArchivePrune,
}

func init() {
	archivePruneCmd.Flags().IntVar(&pruneDays, "days", 0, "Retention in days (defaults to storage.retention_days)")
	archivePruneCmd.Flags().BoolVar(&pruneYes, "yes", false, "Auto-confirm deletion (non-interactive)")

	archiveCmd.AddCommand(archivePruneCmd)
	RootCmd.AddCommand(archiveCmd)
}

func runArchivePrune(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Storage.Enabled {
		return fmt.Errorf("object storage is disabled; nothing to prune")
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	days := pruneDays
	if days <= 0 {
		days = cfg.Storage.RetentionDays
	}

	if !confirm(pruneYes, fmt.Sprintf("Delete archived scans older than %d day(s).", days)) {
		logg.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	archive := scan.NewArchive(client, cfg.Storage.Bucket, cfg.Storage.ArchivePrefix, logg)
	removed, err := archive.Prune(ctx, time.Duration(days)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to prune archive: %w", err)
	}

	fmt.Printf("Removed %d archived frame(s).\n", removed)
	return nil
}
