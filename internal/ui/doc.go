// Package ui provides terminal UI components for the radioctl CLI.
//
// This package uses Bubble Tea and Lipgloss to render polished terminal
// output for console commands. The components follow a "run once and exit"
// pattern - each renders once and returns, with no interaction beyond the
// explicit prompts.
//
// # Architecture
//
// The UI package provides these main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list showing real-time status
//   - Result: Success/failure boxes with styled information
//   - Trace: Navigation trace box for verbose mode
//   - Confirm/Prompt: Warning-box confirmation and credential prompts
//
// These components are orchestrated by the Runner, which manages the
// header → progress → result flow for command execution.
//
// # Usage Pattern
//
// Commands use this package by:
//
//  1. Creating a Runner with command metadata
//  2. Calling Run() with their operation function
//  3. The operation reports progress via a step callback
//  4. Runner handles all UI rendering automatically
//
// Example:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:      "Radio Off",
//	    Command:    "radioctl off",
//	    Params:     map[string]string{"Console": "https://routerlogin.net"},
//	    TotalSteps: 6,
//	    Verbose:    verbose,
//	})
//
//	err := runner.Run(ctx, func(onStep ui.StepCallback) error {
//	    onStep(1, "Checking network", ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, "Checking network", ui.StepComplete, "")
//	    return nil
//	})
//
// # Logging Integration
//
// This package expects logging to be controlled via the RADIOCTL_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly. Set RADIOCTL_LOG_LEVEL to
// "debug", "info", "warn", or "error" to enable logging output.
//
// # Verbose Mode
//
// When --verbose is passed to a command, the Trace component displays the
// session's navigation trail in a styled box after the result. Trace lines
// name URLs, selectors, and outcomes; page content and credentials are
// never recorded.
package ui
