package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"navhud/internal/tui/design"
)

func TestLayout_SplitHUD(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		share   float64
		wantHUD int
		wantMap int
	}{
		{name: "regular terminal", height: 41, share: 0.6, wantHUD: 24, wantMap: 16},
		{name: "invalid share falls back", height: 11, share: 2, wantHUD: 6, wantMap: 4},
		{name: "map keeps minimum", height: 8, share: 0.9, wantHUD: 4, wantMap: design.MinPanelHeight},
		{name: "tiny terminal", height: 2, share: 0.5, wantHUD: 0, wantMap: design.MinPanelHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hud, mapHeight := NewLayout(80, tt.height).SplitHUD(1, tt.share)
			assert.Equal(t, tt.wantHUD, hud)
			assert.Equal(t, tt.wantMap, mapHeight)
		})
	}
}

func TestFitHeight(t *testing.T) {
	assert.Equal(t, 4, lipgloss.Height(FitHeight("a\nb", 10, 4)))
	assert.Equal(t, 2, lipgloss.Height(FitHeight("a\nb\nc\nd", 10, 2)))
	assert.Empty(t, FitHeight("a", 10, 0))
}
