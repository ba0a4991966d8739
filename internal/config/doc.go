// Package config provides user configuration management for radioctl.
//
// This package manages a YAML-based configuration file holding the target
// network identity, console URLs, browser options, and retry tuning. The
// file follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/radioctl/config.yaml or $HOME/.config/radioctl/config.yaml
//   - macOS: $HOME/.config/radioctl/config.yaml
//   - Windows: %LOCALAPPDATA%\radioctl\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores console credentials. They live in
// the OS keychain under the service named by service_name and are prompted
// from the user when absent.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	// cfg is complete (defaults applied) and validated; pass it down by
//	// reference and never mutate it afterwards.
//
// A missing file is not an error: Load returns Default() so a first run
// needs no setup.
//
// # Thread Safety
//
// File writes are protected by a mutex and performed atomically
// (temp file + rename) to prevent corruption on crash.
package config
