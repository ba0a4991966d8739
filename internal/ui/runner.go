package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RunnerConfig holds configuration for a console command execution
type RunnerConfig struct {
	Title      string            // Command title (e.g., "Radio Off")
	Command    string            // Full command (e.g., "radioctl off")
	Params     map[string]string // Parameters to display in header
	TotalSteps int               // Total number of steps (for progress)
	StepNames  []string          // Names for each step
	Verbose    bool              // Whether to show the navigation trace
	Output     io.Writer         // Output writer (default: os.Stdout)
}

// Runner orchestrates the UI for a console command execution.
// It manages the header → progress → result flow and provides
// callbacks for reporting progress.
type Runner struct {
	config    RunnerConfig
	header    *Header
	progress  *Progress
	output    io.Writer
	trace     *Trace
	startTime time.Time
	width     int
}

// NewRunner creates a new runner for a console command
func NewRunner(config RunnerConfig) *Runner {
	// Set defaults
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()

	// Create header
	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	// Create progress tracker
	var progress *Progress
	if config.TotalSteps > 0 {
		progress = NewProgress(config.TotalSteps)
		progress.SetWidth(width)
		if len(config.StepNames) > 0 {
			progress.SetStepNames(config.StepNames)
		}
	}

	return &Runner{
		config:   config,
		header:   header,
		progress: progress,
		output:   config.Output,
		width:    width,
	}
}

// Operation is the function signature for the actual console operation.
// The operation receives a StepCallback to report progress.
type Operation func(onStep StepCallback) error

// Run executes the console operation with UI updates.
// It displays the header, tracks progress, and shows the result.
func (r *Runner) Run(ctx context.Context, operation Operation) error {
	r.startTime = time.Now()

	// Print header
	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	// Create step callback
	stepCallback := r.createStepCallback()

	// Execute the operation
	err := operation(stepCallback)
	duration := time.Since(r.startTime)

	// Print final result
	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccess(duration)
	}

	return err
}

// RunWithResult executes the console operation and allows custom result handling.
// Returns the result details that were displayed.
func (r *Runner) RunWithResult(ctx context.Context, operation func(onStep StepCallback) (map[string]string, error)) (map[string]string, error) {
	r.startTime = time.Now()

	// Print header
	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	// Create step callback
	stepCallback := r.createStepCallback()

	// Execute the operation
	details, err := operation(stepCallback)
	duration := time.Since(r.startTime)

	// Print final result
	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccessWithDetails(details, duration)
	}

	return details, err
}

// SetTrace attaches a navigation trace for verbose display
func (r *Runner) SetTrace(trace *Trace) {
	r.trace = trace
}

// createStepCallback creates the step callback function
func (r *Runner) createStepCallback() StepCallback {
	return func(stepNumber int, name string, status StepStatus, message string) {
		if r.progress == nil {
			return
		}

		// Update step name if provided
		if name != "" && stepNumber > 0 && stepNumber <= len(r.progress.Steps) {
			r.progress.Steps[stepNumber-1].Name = name
		}

		// Update step status
		r.progress.UpdateStep(stepNumber, status, message)

		// Print progress line
		if status == StepComplete || status == StepFailed || status == StepSkipped {
			// Print completed step
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprintln(r.output, r.progress.stepLine(step))
		} else if status == StepRunning {
			// Print running step (will be overwritten when complete)
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprint(r.output, r.progress.stepLine(step)+"\r")
		}
	}
}

// printProgressSummary closes the step list with the finished bar. On a
// failed run the bar shows how far the pipeline got.
func (r *Runner) printProgressSummary() {
	if r.progress == nil {
		return
	}
	_, _ = fmt.Fprintln(r.output)
	_, _ = fmt.Fprintln(r.output, r.progress.barLine())
}

// printSuccess prints a success result
func (r *Runner) printSuccess(duration time.Duration) {
	r.printProgressSummary()
	_, _ = fmt.Fprintln(r.output)

	// Default success details
	details := map[string]string{
		"Duration": duration.Round(time.Millisecond).String(),
	}

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	r.printTrace()
}

// printSuccessWithDetails prints a success result with custom details
func (r *Runner) printSuccessWithDetails(details map[string]string, duration time.Duration) {
	r.printProgressSummary()
	_, _ = fmt.Fprintln(r.output)

	// Add duration to details
	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = duration.Round(time.Millisecond).String()

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	r.printTrace()
}

// printFailure prints a failure result with troubleshooting
func (r *Runner) printFailure(err error, duration time.Duration) {
	r.printProgressSummary()
	_, _ = fmt.Fprintln(r.output)

	// Default troubleshooting tips
	troubleshooting := []string{
		"Check you are connected to the router's Wi-Fi network",
		"Disconnect any VPN and try again",
		"Try: radioctl discover to verify the console address",
		"Run with --verbose for the full navigation trace",
	}

	result := NewFailureResult(r.config.Title+" failed", err, troubleshooting)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	r.printTrace()
}

// printTrace shows the navigation trace in verbose mode
func (r *Runner) printTrace() {
	if !r.config.Verbose || r.trace == nil || r.trace.Len() == 0 {
		return
	}
	_, _ = fmt.Fprintln(r.output)
	r.trace.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, r.trace.Render())
}

// --- Simple helper functions for commands that don't need a full Runner ---

// PrintCommandHeader prints a styled command header
func PrintCommandHeader(title, command string, params map[string]string) {
	width := GetTerminalWidth()
	header := NewHeader(title, command, params)
	header.SetWidth(width)
	fmt.Println(header.Render())
	fmt.Println()
}

// PrintSuccess prints a styled success result
func PrintSuccess(title string, details map[string]string) {
	width := GetTerminalWidth()
	result := NewSuccessResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintFailure prints a styled failure result
func PrintFailure(title string, err error, troubleshooting []string) {
	width := GetTerminalWidth()
	result := NewFailureResult(title, err, troubleshooting)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintWarning prints a styled warning result
func PrintWarning(title string, details map[string]string) {
	width := GetTerminalWidth()
	result := NewWarningResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintTrace prints a styled navigation trace box (for verbose mode)
func PrintTrace(trace *Trace) {
	if trace == nil || trace.Len() == 0 {
		return
	}
	trace.SetWidth(GetTerminalWidth())
	fmt.Println()
	fmt.Println(trace.Render())
}

// PrintPleaseWait prints a styled "please wait" message for long-running operations.
// The message parameter should describe what's happening, e.g., "Driving the admin console".
// The duration hint helps set user expectations, e.g., "up to a minute".
func PrintPleaseWait(message string, durationHint string) {
	style := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	hintStyle := lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	line := style.Render("⏳ " + message)
	if durationHint != "" {
		line += " " + hintStyle.Render("("+durationHint+")")
	}
	line += style.Render("...")

	fmt.Println()
	fmt.Println(line)
	fmt.Println()
}
