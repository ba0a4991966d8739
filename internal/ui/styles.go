package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette. Semantic colors are hex; text shades come from the
// 256-color palette.
var (
	PrimaryColor = lipgloss.Color("#3C8CF0")
	SuccessColor = lipgloss.Color("#2EC27E")
	ErrorColor   = lipgloss.Color("#E01B24")
	WarningColor = lipgloss.Color("#E5A50A")
	MutedColor   = lipgloss.Color("243")
	TextColor    = lipgloss.Color("252")
)

// Rendered boxes stay inside this width range regardless of the real
// terminal size.
const (
	MinTerminalWidth      = 60
	MaxContentWidth       = 100
	defaultTerminalHeight = 24
)

// Markers used in step lists and result banners.
const (
	StepMarkerComplete = "✓"
	StepMarkerRunning  = "●"
	StepMarkerPending  = "·"
	StepMarkerSkipped  = "⊘"
	SuccessMarker      = "✓"
	FailureMarker      = "✗"
	WarningMarker      = "⚠"
)

// Command header.
var (
	HeaderTitleStyle      = lipgloss.NewStyle().Foreground(TextColor).Bold(true).PaddingLeft(2)
	HeaderCommandStyle    = lipgloss.NewStyle().Foreground(MutedColor).PaddingLeft(2)
	HeaderParamKeyStyle   = lipgloss.NewStyle().Foreground(MutedColor).PaddingLeft(2)
	HeaderParamValueStyle = lipgloss.NewStyle().Foreground(TextColor)
)

// Step progress.
var (
	ProgressBarStyle  = lipgloss.NewStyle().PaddingLeft(2)
	StepCompleteStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StepRunningStyle  = lipgloss.NewStyle().Foreground(WarningColor)
	StepPendingStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	StepFailedStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	StepNoteStyle     = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
)

// Result boxes.
var (
	ErrorMessageStyle         = lipgloss.NewStyle().Foreground(ErrorColor)
	ResultKeyStyle            = lipgloss.NewStyle().Foreground(MutedColor).Width(15)
	ResultValueStyle          = lipgloss.NewStyle().Foreground(TextColor)
	TroubleshootingTitleStyle = lipgloss.NewStyle().Foreground(MutedColor).Bold(true)
	TroubleshootingItemStyle  = lipgloss.NewStyle().Foreground(MutedColor)
)

// Navigation trace.
var (
	TraceTitleStyle   = lipgloss.NewStyle().Foreground(MutedColor).Bold(true)
	TraceContentStyle = lipgloss.NewStyle().Foreground(TextColor)
)

// TraceBoxStyle is the border for the navigation trace, drawn narrower
// than the surrounding boxes.
func TraceBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width - 4).
		Padding(0, 1)
}

// GetTerminalWidth reports the usable content width. Output that is not
// a terminal gets MinTerminalWidth.
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize reports the terminal dimensions with the width clamped
// to the supported range.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, defaultTerminalHeight
	}
	return clampWidth(width), height
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
