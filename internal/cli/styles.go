package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleHash   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleBranch = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleTag    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleRemote = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// colorEnabled reports whether stdout is a terminal that can take color
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorize renders text through a style when stdout is a terminal
func colorize(style lipgloss.Style, text string) string {
	if !colorEnabled() {
		return text
	}
	return style.Render(text)
}
