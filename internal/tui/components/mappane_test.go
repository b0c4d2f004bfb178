package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"navhud/internal/tui/design"
)

func TestMapPane_Render_EdgeCases(t *testing.T) {
	theme := design.NewTheme(design.ColorModeASCII)
	tests := []struct {
		name   string
		width  int
		height int
		lines  []string
	}{
		{name: "zero dimensions"},
		{name: "negative dimensions", width: -10, height: -5},
		{name: "more lines than fit", width: 30, height: 5, lines: []string{"one", "two", "three", "four", "five", "six"}},
		{name: "very long line", width: 24, height: 8, lines: []string{strings.Repeat("Harbor Drive ", 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pane := NewMapPane("Harbor loop").
				WithLines(tt.lines...).
				WithDimensions(tt.width, tt.height)

			out := pane.Render(theme)

			assert.NotEmpty(t, out)
			assert.GreaterOrEqual(t, pane.Width, design.MinPanelWidth)
			assert.GreaterOrEqual(t, pane.Height, design.MinPanelHeight)
			assert.LessOrEqual(t, lipgloss.Height(out), pane.Height)
		})
	}
}

func TestMapPane_ShowsMarkerAndLines(t *testing.T) {
	theme := design.NewTheme(design.ColorModeASCII)
	out := NewMapPane("Harbor loop").
		WithLines("6.4 km to go").
		WithMarker("^").
		WithDimensions(40, 10).
		Render(theme)

	assert.Contains(t, out, "Harbor loop")
	assert.Contains(t, out, "6.4 km to go")
	assert.Contains(t, out, "^")
}
