package client

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kessym/ripple/internal/client/config"
	"github.com/kessym/ripple/internal/client/history"
	"github.com/kessym/ripple/internal/client/ui/colors"
	"github.com/kessym/ripple/internal/contacts"
	"github.com/kessym/ripple/internal/identity"
	"github.com/kessym/ripple/internal/mention"
	"github.com/kessym/ripple/pkg/assert"
)

// Run wires the stores to the mention engine and hands the assembled
// conversation view to bubbletea. config.Load must have run already.
func Run() error {
	cfg := config.Read()

	ident, err := identity.LoadOrGenerate(cfg.IdentityPath, cfg.ProfileName)
	if err != nil {
		return fmt.Errorf("load identity: %w", err)
	}

	store, err := contacts.Open(cfg.ContactsPath)
	if err != nil {
		return fmt.Errorf("open contacts: %w", err)
	}
	assert.AddFlush(store)
	defer store.Close()

	conv, err := history.Load(cfg.TranscriptPath)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	resolver := &mention.Resolver{
		Names:  store,
		Oracle: identity.Oracle{},
		Local:  ident,
	}

	app := newApp(conv, resolver, colors.DetectTheme(cfg.Theme), cfg.TranscriptPath)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
