package messagebox

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kessym/ripple/internal/client/history"
	"github.com/kessym/ripple/internal/client/ui/colors"
	"github.com/kessym/ripple/internal/data"
	"github.com/kessym/ripple/internal/mention"
)

const maxSenderWidth = 24

var (
	incomingSenderStyle = lipgloss.NewStyle().Foreground(colors.Turquoise).Bold(true)
	outgoingSenderStyle = lipgloss.NewStyle().Foreground(colors.Green).Bold(true)
	timestampStyle      = lipgloss.NewStyle().Foreground(colors.Gray).Italic(true)

	ellipsis = "…"
)

// Model renders one conversation: every message is rewritten through the
// mention engine and its style spans applied before the text enters the
// viewport.
type Model struct {
	Viewport viewport.Model

	conv     *history.Conversation
	resolver *mention.Resolver
	theme    mention.Theme
	width    int
}

func New(width, height int, conv *history.Conversation, resolver *mention.Resolver, theme mention.Theme) Model {
	m := Model{
		Viewport: viewport.New(width, height),
		conv:     conv,
		resolver: resolver,
		theme:    theme,
		width:    width,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "y" {
			m.yank()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// Append inserts a message and keeps the viewport pinned to the bottom.
func (m *Model) Append(msg data.Message) {
	m.conv.Insert(msg)
	m.refresh()
	m.Viewport.GotoBottom()
}

func (m *Model) SetTheme(theme mention.Theme) {
	m.theme = theme
	m.refresh()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.Viewport.Width = width
	m.Viewport.Height = height
	m.refresh()
}

// yank copies the rewritten text of the newest message, mentions resolved
// to names, without any styling.
func (m *Model) yank() {
	msgs := m.conv.Messages()
	if len(msgs) == 0 {
		return
	}
	last := msgs[len(msgs)-1]
	res := mention.Rewrite(last.Content, m.resolver, m.group(), last.Outgoing)
	_ = clipboard.WriteAll(res.Text)
}

func (m *Model) group() *mention.OpenGroup {
	if len(m.conv.GroupKey) == 0 {
		return nil
	}
	return &mention.OpenGroup{DomainKey: m.conv.GroupKey}
}

func (m *Model) refresh() {
	var b strings.Builder
	for i, msg := range m.conv.Messages() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderMessage(msg))
		b.WriteByte('\n')
	}
	m.Viewport.SetContent(b.String())
}

func (m *Model) renderMessage(msg data.Message) string {
	res := mention.Rewrite(msg.Content, m.resolver, m.group(), msg.Outgoing)
	spans := mention.Annotate(res.Mentions, msg.Outgoing, m.theme)

	body := renderSpans(res.Text, spans)
	if m.width > 0 {
		body = wordwrap.String(body, m.width)
	}

	style := incomingSenderStyle
	if msg.Outgoing {
		style = outgoingSenderStyle
	}
	header := style.Render(m.senderName(msg)) + " " +
		timestampStyle.Render(msg.SentAt.Format("15:04"))

	return header + "\n" + body
}

func (m *Model) senderName(msg data.Message) string {
	name := ""
	if msg.Outgoing {
		name = m.resolver.Local.DisplayName()
	} else {
		scope := mention.ScopeRegular
		if m.group() != nil {
			scope = mention.ScopeOpenGroup
		}
		name, _ = m.resolver.Names.Lookup(msg.SenderID, scope)
	}
	if name == "" {
		name = msg.SenderID
	}
	return runewidth.Truncate(name, maxSenderWidth, ellipsis)
}
