package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the lifecycle of one pipeline step as shown to the user.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

// Step is one line of the step list.
type Step struct {
	Number  int
	Name    string
	Status  StepStatus
	Message string // short note shown after the marker, e.g. "already off"
}

// Step names shorter than this pad out so the markers share a column.
const maxStepNameWidth = 45

// Progress tracks the step list and the gradient bar drawn under it.
type Progress struct {
	Steps   []Step
	Current int
	Total   int
	Percent float64
	Width   int
	bar     progress.Model
}

// NewProgress builds a tracker for an operation with totalSteps steps.
// Step names come in later through SetStepNames.
func NewProgress(totalSteps int) *Progress {
	width := GetTerminalWidth()
	steps := make([]Step, totalSteps)
	for i := range steps {
		steps[i] = Step{Number: i + 1, Status: StepPending}
	}
	return &Progress{
		Steps: steps,
		Total: totalSteps,
		Width: width,
		bar:   newStepBar(width),
	}
}

// newStepBar sizes the gradient bar to the terminal, leaving room for
// the percentage and step counter.
func newStepBar(width int) progress.Model {
	barWidth := width - 20
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	return progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth))
}

// SetWidth resizes the block for a different terminal width.
func (p *Progress) SetWidth(width int) *Progress {
	p.Width = width
	p.bar = newStepBar(width)
	return p
}

// SetStepNames fills in the display names, first step first.
func (p *Progress) SetStepNames(names []string) *Progress {
	for i, name := range names {
		if i < len(p.Steps) {
			p.Steps[i].Name = name
		}
	}
	return p
}

// UpdateStep records a status change for the 1-based step number and
// refreshes the bar position. Failed steps do not advance the bar.
func (p *Progress) UpdateStep(stepNumber int, status StepStatus, message string) {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return
	}
	p.Steps[stepNumber-1].Status = status
	p.Steps[stepNumber-1].Message = message

	if status == StepRunning {
		p.Current = stepNumber
	}
	finished := 0
	for _, step := range p.Steps {
		if step.Status == StepComplete || step.Status == StepSkipped {
			finished++
		}
	}
	p.Percent = float64(finished) / float64(p.Total)
}

// barLine is the gradient bar with the percentage and step counter.
func (p *Progress) barLine() string {
	line := fmt.Sprintf("%s  %3.0f%%  [%d/%d]", p.bar.ViewAs(p.Percent), p.Percent*100, p.Current, p.Total)
	return ProgressBarStyle.Render(line)
}

// stepLine is one "[n/total] name ... marker (note)" row.
func (p *Progress) stepLine(step Step) string {
	marker, style := stepLook(step.Status)

	var b strings.Builder
	fmt.Fprintf(&b, "  [%d/%d] ", step.Number, p.Total)
	b.WriteString(style.Render(step.Name))

	padding := maxStepNameWidth - lipgloss.Width(step.Name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if step.Message != "" {
		b.WriteString("  ")
		b.WriteString(StepNoteStyle.Render("(" + step.Message + ")"))
	}
	return b.String()
}

// stepLook maps a status to its marker and text style.
func stepLook(status StepStatus) (string, lipgloss.Style) {
	switch status {
	case StepComplete:
		return StepMarkerComplete, StepCompleteStyle
	case StepRunning:
		return StepMarkerRunning, StepRunningStyle
	case StepFailed:
		return FailureMarker, StepFailedStyle
	case StepSkipped:
		return StepMarkerSkipped, StepPendingStyle
	default:
		return StepMarkerPending, StepPendingStyle
	}
}

// StepCallback receives step transitions from the code doing the work.
type StepCallback func(stepNumber int, name string, status StepStatus, message string)
