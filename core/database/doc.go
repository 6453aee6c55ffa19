// Package database handles database connections for the scan history store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration, plus a
// SQLite driver for local setups and tests.
//
// # Connect
//
// The Connect function establishes a connection using the configured driver.
// MySQL is the production driver; SQLite (including ":memory:") covers
// development machines without a database server. The connection is optional
// at the application level: when it fails, scan history is disabled and the
// rest of the pipeline keeps working.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History database unavailable", zap.Error(err))
//	}
package database
