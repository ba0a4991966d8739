package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// runOnceModel is a Bubble Tea model for output that is painted a single
// time. Init quits immediately, so the program returns after the first
// frame and the frame stays on the terminal.
type runOnceModel struct {
	content string
	width   int
	height  int
}

func newRunOnceModel(content string) runOnceModel {
	width, height := GetTerminalSize()
	return runOnceModel{content: content, width: width, height: height}
}

func (m runOnceModel) Init() tea.Cmd {
	return tea.Quit
}

func (m runOnceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
	}
	return m, nil
}

func (m runOnceModel) View() string {
	return m.content
}

// RenderOnce paints content through the Bubble Tea engine and returns once
// the frame is on screen. It fails when no terminal is attached; callers
// fall back to plain printing.
func RenderOnce(content string) error {
	program := tea.NewProgram(newRunOnceModel(content), tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}
