package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the banner and border of a result box.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is the box a command finishes with.
type Result struct {
	Type            ResultType
	Title           string
	Details         map[string]string
	Error           error    // shown for failures
	Troubleshooting []string // shown for failures
	Width           int
}

// NewSuccessResult builds a success box sized to the current terminal.
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult builds a failure box carrying the error and any
// recovery tips.
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult builds a warning box.
func NewWarningResult(title string, details map[string]string) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth overrides the detected terminal width.
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render draws the result box. Details print in key order.
func (r *Result) Render() string {
	width := clampWidth(r.Width)
	banner, marker, color := r.look()

	lines := []string{
		"",
		lipgloss.NewStyle().Foreground(color).Bold(true).
			Render(fmt.Sprintf("   %s  %s  ─  %s", marker, banner, r.Title)),
		"",
	}

	for _, key := range sortedKeys(r.Details) {
		label := ResultKeyStyle.Render("   " + key + ":")
		lines = append(lines, label+" "+ResultValueStyle.Render(r.Details[key]))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Type == ResultFailure {
		if r.Error != nil {
			lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
		}
		if len(r.Troubleshooting) > 0 {
			lines = append(lines, r.troubleshootingBox(width), "")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// look reports the banner word, marker, and color for the result kind.
func (r *Result) look() (string, string, lipgloss.Color) {
	switch r.Type {
	case ResultFailure:
		return "FAILED", FailureMarker, ErrorColor
	case ResultWarning:
		return "WARNING", WarningMarker, WarningColor
	default:
		return "SUCCESS", SuccessMarker, SuccessColor
	}
}

// troubleshootingBox is the inner rounded box listing recovery tips.
func (r *Result) troubleshootingBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}

	inner := width - 12
	if inner < 40 {
		inner = 40
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(inner).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
