package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the terminal view.
type Styles struct {
	Title  lipgloss.Style
	Alive  lipgloss.Style
	Dead   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ECC40")),
		Alive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC40")),
		Dead:   lipgloss.NewStyle().Foreground(lipgloss.Color("#303030")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFDC00")).Background(lipgloss.Color("#3A3A3A")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4136")),
	}
}
