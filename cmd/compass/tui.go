package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/compass"
	"github.com/fwojciec/compass/bubbletea"
)

// Run executes the tui command.
func (c *TUICmd) Run(deps *Dependencies) error {
	session := compass.NewSession(deps.Cases, deps.Coacher)

	var opts []bubbletea.Option
	if len(c.Query) > 0 {
		opts = append(opts, bubbletea.WithQuery(strings.Join(c.Query, " ")))
	}

	p := tea.NewProgram(
		bubbletea.New(deps.Ctx, session, deps.Renderer, opts...),
		tea.WithAltScreen(),
		tea.WithContext(deps.Ctx),
		tea.WithOutput(deps.Stdout),
	)
	_, err := p.Run()
	return err
}
