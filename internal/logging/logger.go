package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "RADIOCTL_LOG_LEVEL"

// Redacted replaces any value that must never appear in a log entry:
// credential material and raw page content.
const Redacted = "[redacted]"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks RADIOCTL_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode) so the curated
// terminal output stays clean.
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the RADIOCTL_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// SecretField returns a field whose value is always redacted. Used where a
// log entry must record that a sensitive value was handled without ever
// recording the value itself.
func SecretField(key string) zap.Field {
	return zap.String(key, Redacted)
}

// LogStep logs a pipeline step boundary.
func LogStep(step int, name string, event string) {
	Info("Pipeline step",
		zap.Int("step", step),
		zap.String("name", name),
		zap.String("event", event),
	)
}

// LogNavigation logs a page navigation. Only the URL and outcome are
// recorded, never page content.
func LogNavigation(url string, outcome string) {
	Debug("Navigation",
		zap.String("url", url),
		zap.String("outcome", outcome),
	)
}

// LogAttempt logs one attempt of a retried operation.
func LogAttempt(op string, attempt int, max int, err error) {
	if err == nil {
		Debug("Attempt succeeded",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Int("max", max),
		)
		return
	}
	Debug("Attempt failed",
		zap.String("op", op),
		zap.Int("attempt", attempt),
		zap.Int("max", max),
		zap.Error(err),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
