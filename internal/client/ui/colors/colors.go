package colors

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kessym/ripple/internal/mention"
)

var (
	Gray             = lipgloss.Color("#585858")
	LightGray        = lipgloss.Color("#8a8a8a")
	LightBlue        = lipgloss.Color("#5874FF")
	DarkMidnightBlue = lipgloss.Color("#1E1E2E")
	MidnightBlue     = lipgloss.Color("#3c3c5d")
	Turquoise        = lipgloss.Color("#54D7A9")
	Red              = lipgloss.Color("#F16265")
	White            = lipgloss.Color("#FFFFFF")
	Black            = lipgloss.Color("#000000")
	Green            = lipgloss.Color("#46d46c")

	Background          = DarkMidnightBlue
	BackgroundHighlight = MidnightBlue
	Error               = Red
	Focus               = LightBlue

	// Mention highlighting.
	Accent   = LightBlue
	OnAccent = White
)

// DetectTheme builds the mention annotator's theme. The override comes
// from config ("light" or "dark"); anything else falls back to probing
// the terminal background.
func DetectTheme(override string) mention.Theme {
	var light bool
	switch override {
	case "light":
		light = true
	case "dark":
		light = false
	default:
		light = !termenv.HasDarkBackground()
	}
	return Theme(light)
}

// Theme returns the mention annotator's colors for the given mode.
func Theme(light bool) mention.Theme {
	return mention.Theme{
		Light:         light,
		Accent:        Accent,
		OnAccent:      OnAccent,
		OutgoingLight: Black,
		OutgoingDark:  White,
	}
}
