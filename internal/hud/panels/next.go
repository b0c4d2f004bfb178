package panels

import (
	"time"

	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/internal/tui/utils"
)

// NextManeuverPanel previews a maneuver that follows closely after the current
// one. It is only visible while the instruction carries a sub-instruction.
type NextManeuverPanel struct {
	Panel

	theme *design.Theme
	sub   navigation.VisualInstruction
}

func NewNextManeuverPanel(theme *design.Theme) *NextManeuverPanel {
	return &NextManeuverPanel{Panel: newPanel(false), theme: theme}
}

func (p *NextManeuverPanel) Update(inst navigation.VisualInstruction) bool {
	if inst.Sub == nil || inst.Sub.IsEmpty() {
		p.sub = navigation.VisualInstruction{}
		p.SetVisible(false)
		return true
	}
	p.sub = *inst.Sub
	p.SetVisible(true)
	return true
}

func (p *NextManeuverPanel) Sub() navigation.VisualInstruction {
	return p.sub
}

func (p *NextManeuverPanel) View(width int, now time.Time) string {
	t := p.theme
	text := "Then " + SafeIcon(ManeuverIcon(p.sub.Maneuver, t.ASCII)) + p.sub.Primary
	inner := width - t.NextManeuver.GetHorizontalFrameSize()
	rendered := t.NextManeuver.Width(width).Render(utils.TruncateString(text, inner))
	return p.withAlpha(rendered, t.Faint, now)
}
