package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// PromptLine asks a question on the terminal and returns the trimmed answer
func PromptLine(label string) (string, error) {
	promptStyle := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)
	fmt.Print(promptStyle.Render("  " + label + ": "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptSecret asks for a secret on the terminal and reads it without echo
func PromptSecret(label string) (string, error) {
	promptStyle := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)
	fmt.Print(promptStyle.Render("  " + label + ": "))

	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// PromptCredentials asks for the console username and password. The
// password is read without echo. The pair is returned to the caller only;
// nothing is persisted here.
func PromptCredentials() (string, string, error) {
	noteStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Println(noteStyle.Render("  Console credentials required."))

	username, err := PromptLine("Username")
	if err != nil {
		return "", "", err
	}
	if username == "" {
		return "", "", fmt.Errorf("username must not be empty")
	}

	password, err := PromptSecret("Password")
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", fmt.Errorf("password must not be empty")
	}

	return username, password, nil
}
