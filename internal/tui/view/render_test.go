package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navhud/internal/config"
	"navhud/internal/tui/design"
	"navhud/internal/tui/model"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	m, err := model.InitializeModel(model.TUIConfig{
		ColorMode: design.ColorModeASCII,
		Config:    config.GetDefaultConfig(),
		Clock:     func() time.Time { return now },
	})
	require.NoError(t, err)
	m.Width = 80
	m.Height = 30
	m.CurrentAppMode = model.ModeMainDashboard
	return m
}

func started(t *testing.T, m *model.Model) *model.Model {
	t.Helper()
	for _, ev := range m.StartEvents() {
		_, handled := m.HUD.Update(ev)
		require.True(t, handled)
	}
	m.HUD.Flush()
	return m
}

func TestRender_Initializing(t *testing.T) {
	m := &model.Model{CurrentAppMode: model.ModeInitializing}
	assert.Contains(t, Render(m), "waiting for window size")

	m.Width, m.Height = 80, 24
	assert.Contains(t, Render(m), "Initializing...")
}

func TestRender_Quitting(t *testing.T) {
	m := &model.Model{CurrentAppMode: model.ModeQuitting, QuittingMessage: "Ending navigation..."}
	assert.Contains(t, Render(m), "Ending navigation...")
}

func TestRender_MainDashboard(t *testing.T) {
	m := started(t, newTestModel(t))

	out := Render(m)
	assert.Contains(t, out, "Elm Avenue", "banner shows the upcoming maneuver")
	assert.Contains(t, out, "Harbor loop", "map pane and status bar name the route")
	assert.Contains(t, out, "On Main Street")
	assert.NotContains(t, out, "mode=")
}

func TestRender_MainDashboardDebug(t *testing.T) {
	m := started(t, newTestModel(t))
	m.DebugMode = true

	out := Render(m)
	assert.Contains(t, out, "mode=Idle steps=Closed")
	assert.Contains(t, out, "blocked=false")
}

func TestRender_StatusBarMessage(t *testing.T) {
	m := newTestModel(t)
	m.StatusBarMessage = "Steps copied"

	assert.Contains(t, Render(m), "Steps copied")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay

	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "tap banner")
	assert.Contains(t, out, "show steps")
}

func TestRender_LogOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "08:00:00.000 [INFO] [HUD] attached")

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "attached")
	assert.Positive(t, m.LogViewport.Width)
	assert.Positive(t, m.LogViewport.Height)
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{
		"08:00:00.000 [INFO] [HUD] attached",
		"08:00:01.000 [ERROR] [Simulator] lost",
	}
	out := PrepareLogContent(lines, 80)
	assert.Contains(t, out, "[INFO] [HUD] attached")
	assert.Contains(t, out, "[ERROR] [Simulator] lost")
	assert.Empty(t, PrepareLogContent(nil, 80))
}
