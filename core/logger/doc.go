// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Log output goes to stderr so it never mixes with
// the interactive shell written to stdout.
//
// # Run Correlation
//
// Batch operations (CSV imports, backups) are tagged with a run id. The
// WithRunID helper attaches it to the log entry, ensuring that all lines of a
// single run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Inventory opened")
//
//	l := logger.WithRunID(log, runID)
//	l.Warn("Row skipped", zap.Error(err))
package logger
