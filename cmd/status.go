package cmd

import (
	"fmt"
	"sort"

	"fridge-manager/core/config"
	"fridge-manager/core/database"
	"fridge-manager/core/logger"
	"fridge-manager/core/pantry"
	"fridge-manager/core/vision"
	"fridge-manager/feature/status"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// statusCmd probes every configured backend and prints the result.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the health of every configured backend",
	Long: `Probes the detection backend, object storage, the history database and the
catalog lookup, and prints a per-component report. Exits non-zero when any
component reports an error.`,
	RunE: runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	detector, err := vision.New(ctx, cfg.Vision)
	if err != nil {
		return fmt.Errorf("failed to create detector: %w", err)
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	client := cliStorageClient(cfg, logg)
	store, err := pantry.Open(ctx, pantryPersister(cfg, client, logg), logg)
	if err != nil {
		return fmt.Errorf("failed to open pantry store: %w", err)
	}

	svc := status.NewService(detector, client, cfg.Storage.Bucket, db, store, cfg.Catalog.LookupEnabled, logg)
	report := svc.Check(ctx)

	names := make([]string, 0, len(report.Components))
	for name := range report.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\n=== Service Status ===")
	for _, name := range names {
		component := report.Components[name]
		if component.Detail != "" {
			fmt.Printf("%-10s %-10s %s\n", name, component.Status, component.Detail)
		} else {
			fmt.Printf("%-10s %s\n", name, component.Status)
		}
	}

	if !report.Healthy {
		return fmt.Errorf("one or more components report an error")
	}
	fmt.Println("\nAll components healthy.")
	return nil
}
