package view

import (
	"github.com/charmbracelet/lipgloss"

	"navhud/internal/hud/panels"
	"navhud/internal/tui/design"
	"navhud/internal/tui/model"
)

const (
	IconScroll = "📜"
	IconDebug  = "⚙"
)

func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpView := m.Help.FullHelpView(m.Keys.FullHelp())

	container := design.CenteredOverlayContainerStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, titleView, helpView),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model) string {
	icon := IconScroll
	if m.Theme != nil && m.Theme.ASCII {
		icon = "#"
	}
	titleView := design.LogPanelTitleStyle.Render(panels.SafeIcon(icon) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayWidth := int(float64(m.Width) * 0.8)
	overlayHeight := int(float64(m.Height) * 0.7)

	viewportWidth := overlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	viewportHeight := overlayHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}

	resized := m.LogViewport.Width != viewportWidth || m.LogViewport.Height != viewportHeight
	m.LogViewport.Width = viewportWidth
	m.LogViewport.Height = viewportHeight
	if m.ActivityLogDirty || resized {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(overlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(overlayHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)

	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, m.Width))
}
