package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"navhud/internal/hud/coordinator"
	"navhud/internal/hud/panels"
	"navhud/internal/tui/components"
	"navhud/internal/tui/design"
	"navhud/internal/tui/model"
)

// hudShare is the part of the screen given to the banner stack and step list.
const hudShare = 0.6

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
		}
		return design.TextSecondaryStyle.Render("Initializing...")
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderMainDashboard(m)
	}
}

func renderMainDashboard(m *model.Model) string {
	statusBar := renderStatusBar(m, m.Width)
	layout := components.NewLayout(m.Width, m.Height)
	hudHeight, mapHeight := layout.SplitHUD(lipgloss.Height(statusBar), hudShare)

	hud := components.FitHeight(m.HUD.View(m.Width, hudHeight), m.Width, hudHeight)
	mapView := renderMapPane(m, m.Width, mapHeight)

	return components.JoinVertical(hud, mapView, statusBar)
}

func renderMapPane(m *model.Model, width, height int) string {
	title := m.Route.Name
	var lines []string

	if progress, ok := m.HUD.Progress(); ok {
		if step := progress.CurrentStep(); step != nil && step.Name != "" {
			lines = append(lines, "On "+step.Name)
		}
		lines = append(lines, m.Formatter.Format(progress.DistanceRemaining())+" to go")
	}
	if m.Simulation {
		lines = append(lines, fmt.Sprintf("Simulating at %d×", m.Simulator.Speed()))
	}
	if m.ExternalDisplay {
		lines = append(lines, "External display connected")
	}
	if m.Arrived {
		lines = append(lines, "You have arrived")
	}
	if m.DebugMode {
		lines = append(lines, debugLines(m)...)
	}

	marker := "▲"
	if m.Theme.ASCII {
		marker = "^"
	}
	return components.NewMapPane(title).
		WithLines(lines...).
		WithDimensions(width, height).
		WithHighlight(m.HUD.Mode() == coordinator.ModePreviewActive).
		WithMarker(marker).
		Render(m.Theme)
}

func debugLines(m *model.Model) []string {
	kinds := m.HUD.Sequencer().InFlightKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	inflight := strings.Join(names, ",")
	if inflight == "" {
		inflight = "-"
	}
	return []string{
		fmt.Sprintf("mode=%s steps=%s", m.HUD.Mode(), m.HUD.StepList().State()),
		fmt.Sprintf("inflight=%s blocked=%t", inflight, m.InteractionBlocked),
	}
}

func renderStatusBar(m *model.Model, width int) string {
	bar := components.NewStatusBar(width)
	if m.StatusBarMessage != "" {
		return bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType).Render()
	}

	hints := m.Help.ShortHelpView(m.Keys.ShortHelp())
	info := components.FormatRouteInfo(m.Route.Name, m.RemainingDistance(), m.Simulator.Speed())
	if m.DebugMode {
		info = panels.SafeIcon(IconDebug) + info
	}
	return bar.WithLeftText(hints).WithRightText(info).Render()
}
