// Package logger provides structured logging based on Zap.
//
// # Correlation
//
// Two helpers attach correlation ids to a logger. WithRayID pulls the
// request id out of a Fiber context so every line written while serving a
// request carries it. WithBatchID tags the logger with a reconciliation
// batch id, which lets the scan pipeline's detector, barcode and
// reconciliation logs be read as one story.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
