package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navhud/internal/config"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/internal/tui/model"
)

func TestNewProgram(t *testing.T) {
	tests := []struct {
		name        string
		route       *navigation.Route
		expectError bool
	}{
		{
			name: "demo route",
		},
		{
			name:        "route without legs",
			route:       &navigation.Route{Name: "broken"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProgram(model.TUIConfig{
				ColorMode: design.ColorModeASCII,
				Config:    config.GetDefaultConfig(),
				Route:     tt.route,
			})
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestNewAppModel(t *testing.T) {
	m := newTestModel(t)
	app := NewAppModel(m)

	assert.Same(t, m, app.model)

	assert.Contains(t, app.View(), "Initializing")

	updated, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	require.IsType(t, AppModel{}, updated)
	assert.Equal(t, model.ModeMainDashboard, updated.(AppModel).model.CurrentAppMode)
}
