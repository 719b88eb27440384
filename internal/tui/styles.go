package tui

import "github.com/charmbracelet/lipgloss"

// WelcomeStyle returns the style for the session banner.
func WelcomeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// ErrorStyle returns the style for error replies.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
}

// FaintStyle returns the dim style for echoed past commands.
func FaintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}
