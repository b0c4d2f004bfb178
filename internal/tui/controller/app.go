package controller

import (
	"navhud/internal/tui/model"
	"navhud/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper and connects the HUD notifications to
// the controller.
func NewAppModel(m *model.Model) AppModel {
	if m.HUD != nil {
		m.HUD.SetDelegate(newDelegate(m))
	}
	return AppModel{model: m}
}

// Init implements tea.Model. The simulator's opening events are applied before
// the first frame so the banner starts populated.
func (a AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.model.Simulator != nil && a.model.HUD != nil {
		cmds = append(cmds, applyEvents(a.model, a.model.StartEvents())...)
	}
	cmds = append(cmds, a.model.Init())
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := Update(msg, a.model)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
