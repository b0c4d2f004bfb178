package components

import (
	"github.com/charmbracelet/lipgloss"

	"navhud/internal/tui/design"
)

// Layout splits the terminal between the HUD, the map and the status bar.
type Layout struct {
	Width  int
	Height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitHUD returns the heights of the HUD and the map pane once the status bar
// has taken its line. The HUD gets at most hudShare of the space and never
// starves the map below MinPanelHeight.
func (l *Layout) SplitHUD(statusBarHeight int, hudShare float64) (hudHeight, mapHeight int) {
	content := l.CalculateContentArea(0, statusBarHeight)
	if hudShare <= 0 || hudShare >= 1 {
		hudShare = 0.6
	}

	hudHeight = int(float64(content) * hudShare)
	mapHeight = content - hudHeight
	if mapHeight < design.MinPanelHeight {
		mapHeight = design.MinPanelHeight
		hudHeight = content - mapHeight
	}
	if hudHeight < 0 {
		hudHeight = 0
	}
	return hudHeight, mapHeight
}

// CalculateContentArea returns the height left after header and status bar.
func (l *Layout) CalculateContentArea(headerHeight, statusBarHeight int) int {
	contentHeight := l.Height - headerHeight - statusBarHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// FitHeight pads or clips content to exactly height lines.
func FitHeight(content string, width, height int) string {
	if height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

// JoinVertical joins components vertically.
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content horizontally within width.
func CenterContent(width int, content string) string {
	return design.CenterHorizontal(width, content)
}
