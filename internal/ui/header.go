package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the context box printed before a command starts doing work.
type Header struct {
	Title   string            // e.g. "RADIO OFF"
	Command string            // e.g. "radioctl off"
	Params  map[string]string // settings worth showing up front
	Width   int
}

// NewHeader builds a header sized to the current terminal.
func NewHeader(title, command string, params map[string]string) *Header {
	return &Header{Title: title, Command: command, Params: params, Width: GetTerminalWidth()}
}

// SetWidth overrides the detected terminal width.
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render draws the bordered header. Parameters print in key order so
// repeated runs produce identical output.
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	rows := []string{
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	}

	if len(h.Params) > 0 {
		divider := width - 6
		if divider < 10 {
			divider = 10
		}
		rows = append(rows, lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Render(strings.Repeat("─", divider)))
		rows = append(rows, h.paramRows()...)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// paramRows renders the key/value lines with the values aligned on one
// column.
func (h *Header) paramRows() []string {
	keys := make([]string, 0, len(h.Params))
	keyWidth := 0
	for key := range h.Params {
		keys = append(keys, key)
		if len(key) > keyWidth {
			keyWidth = len(key)
		}
	}
	sort.Strings(keys)

	rows := make([]string, 0, len(keys))
	for _, key := range keys {
		label := HeaderParamKeyStyle.Render(fmt.Sprintf("%-*s", keyWidth+1, key+":"))
		rows = append(rows, label+" "+HeaderParamValueStyle.Render(h.Params[key]))
	}
	return rows
}
