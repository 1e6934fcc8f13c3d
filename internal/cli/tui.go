package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/levos/internal/tui"
)

type TuiCmd struct {
	Date string `arg:"" help:"Date to open (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TuiCmd) Run(ctx *Context) error {
	date, err := ResolveDate(c.Date)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(ctx.Store, ctx.Engine, ctx.Catalog, date)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
