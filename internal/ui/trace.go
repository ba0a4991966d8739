package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Trace represents a box for displaying the navigation trail of a console
// session. Used in verbose mode to show where the browser went and what it
// acted on. Trace lines carry URLs, selectors, and outcomes only; page
// content and form values never appear here.
type Trace struct {
	Title    string   // e.g., "Navigation Trace"
	Lines    []string // Recorded navigation events
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

// NewTrace creates an empty navigation trace box
func NewTrace() *Trace {
	return &Trace{
		Title:    "Navigation Trace",
		Width:    GetTerminalWidth(),
		MaxLines: 0,
	}
}

// SetWidth sets the terminal width for responsive rendering
func (t *Trace) SetWidth(width int) *Trace {
	t.Width = width
	return t
}

// SetMaxLines limits the number of lines displayed
func (t *Trace) SetMaxLines(max int) *Trace {
	t.MaxLines = max
	return t
}

// Add appends a formatted line to the trace
func (t *Trace) Add(format string, args ...interface{}) {
	t.Lines = append(t.Lines, fmt.Sprintf(format, args...))
}

// Len returns the number of recorded lines
func (t *Trace) Len() int {
	return len(t.Lines)
}

// Render returns the styled trace box as a string
func (t *Trace) Render() string {
	width := t.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	// Apply max lines limit, keeping the most recent events
	lines := t.Lines
	if t.MaxLines > 0 && len(lines) > t.MaxLines {
		trimmed := len(lines) - t.MaxLines
		lines = append([]string{fmt.Sprintf("... (%d earlier events)", trimmed)}, lines[trimmed:]...)
	}

	// Title styled
	titleStyled := TraceTitleStyle.Render(t.Title)

	// Content styled (preserve monospace formatting)
	contentStyled := TraceContentStyle.Render(strings.Join(lines, "\n"))

	// Combine title and content
	inner := lipgloss.JoinVertical(lipgloss.Left, titleStyled, "", contentStyled)

	return TraceBoxStyle(width).
		MarginLeft(2).
		Render(inner)
}

// String implements fmt.Stringer
func (t *Trace) String() string {
	return t.Render()
}
