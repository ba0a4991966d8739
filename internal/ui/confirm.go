package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and prompts the user with a yes/no
// question. Returns true only if the user answers yes.
func Confirm(title string, warnings []string, question string) bool {
	width := GetTerminalWidth()
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string

	// Title with warning marker
	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	// Warning bullet points
	for _, warning := range warnings {
		bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	content := strings.Join(lines, "\n")

	// Double border in orange/warning color
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(content)

	if err := RenderOnce(box); err != nil {
		// No usable terminal; fall back to a plain print.
		fmt.Println(box)
	}
	fmt.Println()

	// Prompt for confirmation
	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Print(promptStyle.Render(question + " [y/N]: "))

	// Read user input
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == "y" || input == "yes" {
		fmt.Println()
		return true
	}

	// User did not agree
	fmt.Println()
	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Println(cancelStyle.Render("  Operation cancelled."))
	fmt.Println()
	return false
}

// RadioOffConfirmation is a pre-configured confirmation for turning the
// 2.4GHz radio off
func RadioOffConfirmation() bool {
	return Confirm(
		"RADIO OFF",
		[]string{
			"This will turn the router's 2.4GHz radio off",
			"Every device on the 2.4GHz band will lose connectivity immediately",
			"The settings change is applied exactly once and not retried",
			"Do not close the terminal while the change is applying",
		},
		"Turn the radio off?",
	)
}
