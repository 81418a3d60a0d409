// Package ui renders CLI output.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF88")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D9FF")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// PrintHeader prints a bordered title.
func PrintHeader(title string) {
	fmt.Println(titleStyle.Render(title))
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message.
func PrintError(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("✗ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	color.Cyan("  " + fmt.Sprintf(format, args...))
}

// PrintKeyValues renders key/value pairs as a table.
func PrintKeyValues(pairs [][]string) {
	data := pterm.TableData{{"Key", "Value"}}
	for _, pair := range pairs {
		data = append(data, pair)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Spinner starts a spinner with the given message.
func Spinner(message string) (*pterm.SpinnerPrinter, error) {
	return pterm.DefaultSpinner.WithText(message).Start()
}
