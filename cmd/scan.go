package cmd

import (
	"fmt"
	"os"

	"fridge-manager/core/barcode"
	"fridge-manager/core/catalog"
	"fridge-manager/core/config"
	"fridge-manager/core/database"
	"fridge-manager/core/history"
	"fridge-manager/core/logger"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
	"fridge-manager/core/vision"
	"fridge-manager/feature/scan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// scanCmd processes a single image file through the full pipeline.
var scanCmd = &cobra.Command{
	Use:   "scan [image]",
	Short: "Scan an image file and reconcile it into the pantry",
	Long: `Runs one image through detection, barcode decoding and reconciliation,
applies the result to the stored inventory and prints the report.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	detector, err := vision.New(ctx, cfg.Vision)
	if err != nil {
		return fmt.Errorf("failed to create detector: %w", err)
	}
	if err := detector.Health(ctx); err != nil {
		logg.Warn("Detection backend not healthy", zap.Error(err))
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else if err := history.Migrate(conn); err != nil {
		logg.Warn("Scan log migration failed", zap.Error(err))
	} else {
		db = conn
	}

	client := cliStorageClient(cfg, logg)
	store, err := pantry.Open(ctx, pantryPersister(cfg, client, logg), logg)
	if err != nil {
		return fmt.Errorf("failed to open pantry store: %w", err)
	}

	var archive *scan.Archive
	if client != nil {
		archive = scan.NewArchive(client, cfg.Storage.Bucket, cfg.Storage.ArchivePrefix, logg)
	}

	resolver := catalog.NewResolver()
	var lookup scan.ProductLookup
	if cfg.Catalog.LookupEnabled {
		lookup = catalog.NewOpenFoodFacts(cfg.Catalog)
	}

	svc := scan.NewService(
		detector,
		barcode.NewZxingScanner(cfg.Barcode),
		scan.NewNormalizer(resolver, lookup, logg),
		reconcile.NewEngine(cfg.Reconcile, logg),
		store,
		archive,
		history.NewRecorder(db, logg),
		logg,
	)

	logg.Info("Scanning image...", zap.String("file", args[0]))
	result, err := svc.ProcessImage(ctx, data)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printScanReport(result)
	return nil
}

// printScanReport prints a formatted scan report on the console.
func printScanReport(result *scan.Result) {
	fmt.Println("\n--- Scan Report ---")
	fmt.Printf("Batch:       %s\n", result.BatchID)
	fmt.Printf("Detections:  %d\n", len(result.Detections))
	fmt.Printf("Barcodes:    %d\n", len(result.Barcodes))
	if result.ImageKey != "" {
		fmt.Printf("Archived:    %s\n", result.ImageKey)
	}

	if len(result.Changes) > 0 {
		fmt.Println("\nChanges:")
		for _, change := range result.Changes {
			fmt.Printf("- %s: %d (%s)\n", change.Identity, change.Quantity, change.Source)
		}
	}

	if result.Unresolved > 0 {
		fmt.Printf("Unresolved:  %d (inspect via GET /api/pantry/unresolved)\n", result.Unresolved)
	}

	fmt.Println("\nInventory:")
	for _, entry := range result.Inventory.Items {
		fmt.Printf("- %-24s x%-4d %s\n", entry.Identity, entry.Quantity, entry.Category)
	}
	fmt.Printf("Total: %d item(s)\n", result.Inventory.Total)
	fmt.Println("-------------------")
}
