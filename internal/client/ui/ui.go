package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kessym/ripple/internal/client/ui/colors"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1).
	Background(colors.BackgroundHighlight).
	Foreground(colors.Turquoise)

// TitleBar renders the one-line header above the conversation view,
// stretched to the given width.
func TitleBar(title string, width int) string {
	bar := titleStyle
	if width > 0 {
		bar = bar.Width(width)
	}
	return bar.Render(title)
}
