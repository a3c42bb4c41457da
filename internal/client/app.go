package client

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kessym/ripple/internal/client/history"
	"github.com/kessym/ripple/internal/client/ui"
	"github.com/kessym/ripple/internal/client/ui/colors"
	"github.com/kessym/ripple/internal/client/ui/messagebox"
	"github.com/kessym/ripple/internal/mention"
	"github.com/kessym/ripple/pkg/assert"
)

// app is the top-level bubbletea model: a title bar over the
// conversation view.
type app struct {
	box  messagebox.Model
	conv *history.Conversation

	light          bool
	transcriptPath string
	width          int
	height         int
}

func newApp(conv *history.Conversation, resolver *mention.Resolver, theme mention.Theme, transcriptPath string) app {
	assert.NotNil(conv, "conversation should be loaded before the ui starts")
	assert.NotNil(resolver, "resolver should be wired before the ui starts")
	return app{
		box:            messagebox.New(0, 0, conv, resolver, theme),
		conv:           conv,
		light:          theme.Light,
		transcriptPath: transcriptPath,
	}
}

func (a app) Init() tea.Cmd {
	return nil
}

func (a app) View() string {
	title := a.conv.Name
	if title == "" {
		title = "inbox"
	}
	return ui.TitleBar(title, a.width) + "\n" + a.box.View()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.box.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if err := history.Save(a.transcriptPath, a.conv); err != nil {
				slog.Error("saving transcript failed", "path", a.transcriptPath, "error", err)
			}
			return a, tea.Quit

		case "t":
			a.light = !a.light
			a.box.SetTheme(colors.Theme(a.light))
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.box, cmd = a.box.Update(msg)
	return a, cmd
}
