package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fridge-manager/core/config"
	"fridge-manager/core/pantry"
	"fridge-manager/core/storage"

	"go.uber.org/zap"
)

// cliStorageClient creates the object storage client when enabled. CLI
// commands degrade to file persistence without one.
func cliStorageClient(cfg *config.Config, logg *zap.Logger) storage.Client {
	if !cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage unavailable", zap.Error(err))
		return nil
	}
	return client
}

// pantryPersister picks the configured persistence backend. The object
// backend needs a storage client; without one it falls back to the local file.
func pantryPersister(cfg *config.Config, client storage.Client, logg *zap.Logger) pantry.Persister {
	if cfg.Pantry.Backend == pantry.BackendObject && client != nil {
		return pantry.NewObjectPersister(client, cfg.Storage.Bucket, cfg.Pantry.ObjectName)
	}
	if cfg.Pantry.Backend == pantry.BackendObject {
		logg.Warn("Object pantry backend needs storage enabled; using file persistence",
			zap.String("path", cfg.Pantry.Path))
	}
	return pantry.NewFilePersister(cfg.Pantry.Path)
}

// confirm prompts the user for confirmation or uses the --yes flag.
func confirm(auto bool, prompt string) bool {
	if auto {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
