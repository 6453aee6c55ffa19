package cmd

import (
	"fmt"

	"fridge-manager/core/catalog"
	"fridge-manager/core/config"
	"fridge-manager/core/history"
	"fridge-manager/core/logger"
	"fridge-manager/core/pantry"
	"fridge-manager/core/reconcile"
	"fridge-manager/feature/inventory"

	"github.com/spf13/cobra"
)

var (
	// Flags for pantry subcommands
	addQuantity int
	addCategory string
	removeCount int
	pantryYes   bool
)

// pantryCmd is the parent command for inventory operations.
var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Inspect and curate the stored inventory",
	Long: `Operates directly on the persisted inventory.

Binding unresolved scan observations stays an HTTP concern, since the
unresolved queue lives in the running server.`,
}

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current inventory",
	RunE:  runPantryList,
}

var pantryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Record an item by hand",
	Long: `Adds or replaces an item with a trusted manual observation.
The quantity is absolute; zero removes the item.`,
	Args: cobra.ExactArgs(1),
	RunE: runPantryAdd,
}

var pantryRemoveCmd = &cobra.Command{
	Use:   "remove [identity]",
	Short: "Remove units of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runPantryRemove,
}

var pantryResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted inventory",
	RunE:  runPantryReset,
}

func init() {
	pantryAddCmd.Flags().IntVar(&addQuantity, "quantity", 1, "Absolute quantity to store")
	pantryAddCmd.Flags().StringVar(&addCategory, "category", "", "Storage category override")
	pantryRemoveCmd.Flags().IntVar(&removeCount, "count", 1, "Units to remove (0 removes the item entirely)")
	pantryRemoveCmd.Flags().BoolVar(&pantryYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	pantryResetCmd.Flags().BoolVar(&pantryYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	pantryCmd.AddCommand(pantryListCmd)
	pantryCmd.AddCommand(pantryAddCmd)
	pantryCmd.AddCommand(pantryRemoveCmd)
	pantryCmd.AddCommand(pantryResetCmd)
	RootCmd.AddCommand(pantryCmd)
}

func runPantryList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := pantry.Open(ctx, pantryPersister(cfg, cliStorageClient(cfg, logg), logg), logg)
	if err != nil {
		return fmt.Errorf("failed to open pantry store: %w", err)
	}

	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		fmt.Println("The pantry is empty.")
		return nil
	}

	fmt.Println("\n--- Pantry ---")
	for _, entry := range snap.Items {
		expires := "-"
		if !entry.Expires.IsZero() {
			expires = entry.Expires.Format("2006-01-02")
		}
		fmt.Printf("%-24s x%-4d %-12s expires %s\n", entry.Identity, entry.Quantity, entry.Category, expires)
	}
	fmt.Println("--------------")
	fmt.Printf("Total: %d item(s)\n", snap.Total)
	return nil
}

func runPantryAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := pantry.Open(ctx, pantryPersister(cfg, cliStorageClient(cfg, logg), logg), logg)
	if err != nil {
		return fmt.Errorf("failed to open pantry store: %w", err)
	}

	svc := inventory.NewService(store,
		reconcile.NewEngine(cfg.Reconcile, logg),
		catalog.NewResolver(),
		history.NewRecorder(nil, logg),
		logg)

	plan, err := svc.Add(ctx, inventory.ManualItem{
		Name:     args[0],
		Category: addCategory,
		Quantity: addQuantity,
	})
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	for _, change := range plan.Changes {
		fmt.Printf("Stored %s x%d (%s)\n", change.Identity, change.Quantity, change.Category)
	}
	return nil
}

func runPantryRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := pantry.Open(ctx, pantryPersister(cfg, cliStorageClient(cfg, logg), logg), logg)
	if err != nil {
		return fmt.Errorf("failed to open pantry store: %w", err)
	}

	if !confirm(pantryYes, fmt.Sprintf("Remove %d unit(s) of %q from the pantry.", removeCount, args[0])) {
		logg.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	entry, err := store.Remove(ctx, args[0], removeCount)
	if err != nil {
		return err
	}

	if entry.Quantity == 0 {
		fmt.Printf("Removed %s entirely.\n", args[0])
	} else {
		fmt.Printf("Removed %d unit(s) of %s, %d left.\n", removeCount, args[0], entry.Quantity)
	}
	return nil
}

func runPantryReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !confirm(pantryYes, "Delete the entire persisted inventory.") {
		logg.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	persister := pantryPersister(cfg, cliStorageClient(cfg, logg), logg)
	if err := persister.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset pantry: %w", err)
	}

	fmt.Println("Pantry reset.")
	return nil
}
