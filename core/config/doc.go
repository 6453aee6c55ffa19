// Package config provides configuration management for the fridge manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: scan log connection details (MySQL or SQLite)
//   - Storage: S3/MinIO credentials, bucket and archive settings
//   - Log: logging level and format
//   - Vision: detection backend, endpoint and confidence floor
//   - Barcode: symbology allowlist and rotation retry
//   - Catalog: Open Food Facts lookups
//   - Pantry: inventory persistence backend
//   - Reconcile: per-source confidence thresholds
//
// Keys map to environment variables by joining with underscores, so
// vision.min_confidence becomes VISION_MIN_CONFIDENCE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
