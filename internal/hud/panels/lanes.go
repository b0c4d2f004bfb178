package panels

import (
	"strings"
	"time"

	"navhud/internal/navigation"
	"navhud/internal/tui/design"
)

// LanesPanel shows lane guidance for the upcoming maneuver. It is only visible
// while the current instruction carries lanes.
type LanesPanel struct {
	Panel

	theme *design.Theme
	lanes []navigation.Lane
}

func NewLanesPanel(theme *design.Theme) *LanesPanel {
	return &LanesPanel{Panel: newPanel(false), theme: theme}
}

// Update takes the lanes of inst, hiding the panel when there are none.
func (p *LanesPanel) Update(inst navigation.VisualInstruction) bool {
	if !inst.HasLanes() {
		p.lanes = nil
		p.SetVisible(false)
		return true
	}
	p.lanes = append([]navigation.Lane(nil), inst.Lanes...)
	p.SetVisible(true)
	return true
}

// Hide drops lane guidance until the next instruction with lanes.
func (p *LanesPanel) Hide() {
	p.SetVisible(false)
}

func (p *LanesPanel) LaneCount() int {
	return len(p.lanes)
}

func (p *LanesPanel) View(width int, now time.Time) string {
	t := p.theme
	glyphs := make([]string, 0, len(p.lanes))
	for _, lane := range p.lanes {
		g := laneGlyph(lane, t.ASCII)
		if lane.Valid {
			glyphs = append(glyphs, t.LaneValid.Render(g))
		} else {
			glyphs = append(glyphs, t.LaneInvalid.Render(g))
		}
	}
	sep := " │ "
	if t.ASCII {
		sep = " | "
	}
	row := strings.Join(glyphs, t.LaneInvalid.Render(sep))
	rendered := t.Lanes.Width(width).Render(design.CenterHorizontal(width-t.Lanes.GetHorizontalFrameSize(), row))
	return p.withAlpha(rendered, t.Faint, now)
}
