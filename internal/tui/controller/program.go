package controller

import (
	"navhud/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program hosting the navigation HUD.
func NewProgram(cfg model.TUIConfig) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return p, nil
}
