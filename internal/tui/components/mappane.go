package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"navhud/internal/tui/design"
	"navhud/internal/tui/utils"
)

// MapPane is the bordered region below the HUD standing in for the map.
type MapPane struct {
	Title       string
	Lines       []string
	Width       int
	Height      int
	Highlighted bool
	Marker      string
}

func NewMapPane(title string) *MapPane {
	return &MapPane{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Marker: "▲",
	}
}

// WithLines sets the info lines shown under the title.
func (p *MapPane) WithLines(lines ...string) *MapPane {
	p.Lines = lines
	return p
}

func (p *MapPane) WithDimensions(width, height int) *MapPane {
	p.Width = width
	p.Height = height
	return p
}

// WithHighlight draws the border in the accent color, used while previewing.
func (p *MapPane) WithHighlight(highlighted bool) *MapPane {
	p.Highlighted = highlighted
	return p
}

func (p *MapPane) WithMarker(marker string) *MapPane {
	p.Marker = marker
	return p
}

// Render draws the pane. Lines that do not fit are dropped; the remaining
// space holds the road and the vehicle marker.
func (p *MapPane) Render(theme *design.Theme) string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := design.PanelStyle.Background(design.ColorMap)
	if p.Highlighted {
		style = style.BorderForeground(design.ColorPrimary)
	}
	innerWidth := max(p.Width-style.GetHorizontalFrameSize(), 1)
	innerHeight := max(p.Height-style.GetVerticalFrameSize(), 1)

	var lines []string
	if p.Title != "" {
		lines = append(lines, design.TitleStyle.UnsetMarginBottom().Render(utils.TruncateString(p.Title, innerWidth)))
	}
	for _, l := range p.Lines {
		if len(lines) >= innerHeight {
			break
		}
		lines = append(lines, theme.Map.Render(utils.TruncateString(l, innerWidth)))
	}

	road := roadLines(innerHeight-len(lines), innerWidth, p.Marker)
	lines = append(lines, road...)

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(innerHeight).
		MaxHeight(p.Height).
		Render(strings.Join(lines, "\n"))
}

// roadLines draws a vertical road centered in width with the marker on the
// bottom line.
func roadLines(height, width int, marker string) []string {
	if height <= 0 {
		return nil
	}
	center := width / 2
	lines := make([]string, height)
	for i := range lines {
		glyph := "┊"
		if i == height-1 {
			glyph = marker
		}
		lines[i] = design.DimStyle.Render(strings.Repeat(" ", max(center-lipgloss.Width(glyph)/2, 0)) + glyph)
	}
	return lines
}
