package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonylturner/lsaddr/internal/ui"
	"github.com/tonylturner/lsaddr/internal/xgt"
)

// Run starts the explorer and returns the accepted addresses when it exits.
func Run(parser xgt.Parser, modelName, initial string, styled bool) ([]string, error) {
	model := NewModel(parser, modelName, initial, ui.NewStyles(styled))
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return nil, err
	}
	return model.History(), nil
}
