// Package logging provides structured logging for radioctl.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the pipeline: step boundaries, navigations,
// and retry attempts.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed automation info (navigations, waits, attempts)
//   - Info: Step boundaries and outcomes
//   - Warn: Non-fatal issues (notification failures, config fallbacks)
//   - Error: Terminal failures
//
// # Configuration
//
// Logging is controlled by the RADIOCTL_LOG_LEVEL environment variable.
// When unset, the logger is a no-op so the curated terminal UI output is
// the only thing the user sees. Set it to "debug", "info", "warn", or
// "error" to get structured log output on stderr:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Sensitive Values
//
// Credential material and raw page content must never reach a log entry.
// Use SecretField to record that a sensitive value was handled:
//
//	logging.Info("Submitting login form",
//	    logging.SecretField("username"),
//	    logging.SecretField("password"),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
