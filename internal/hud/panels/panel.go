package panels

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"navhud/internal/hud/anim"
	"navhud/internal/tui/utils"
)

// Kind identifies one of the managed visual regions.
type Kind int

const (
	Primary Kind = iota
	Lanes
	NextManeuver
	Status
)

func (k Kind) String() string {
	switch k {
	case Primary:
		return "primary"
	case Lanes:
		return "lanes"
	case NextManeuver:
		return "nextManeuver"
	case Status:
		return "status"
	default:
		return "unknown"
	}
}

// Panel holds the visibility state shared by every region.
//
// wantsVisible is the panel's own opt-in; hidden is the effective flag that
// transitions toggle. Alpha is the animated opacity.
type Panel struct {
	wantsVisible bool
	hidden       bool
	Alpha        anim.Property
}

func newPanel(visible bool) Panel {
	return Panel{wantsVisible: visible, hidden: !visible, Alpha: anim.NewProperty(1)}
}

// IsCurrentlyVisible reports the panel's opt-in visibility, ignoring transient
// hides.
func (p *Panel) IsCurrentlyVisible() bool {
	return p.wantsVisible
}

func (p *Panel) IsHidden() bool {
	return p.hidden
}

// SetVisible changes the opt-in and the effective flag together.
func (p *Panel) SetVisible(visible bool) {
	p.wantsVisible = visible
	p.hidden = !visible
}

// SetHidden toggles the effective flag only.
func (p *Panel) SetHidden(hidden bool) {
	p.hidden = hidden
}

// Shown reports whether the panel occupies space on screen.
func (p *Panel) Shown() bool {
	return !p.hidden
}

// withAlpha renders content according to the panel opacity at now: full, faint
// or blank with the same footprint.
func (p *Panel) withAlpha(content string, faint lipgloss.Style, now time.Time) string {
	alpha := p.Alpha.At(now)
	switch {
	case alpha >= 0.66:
		return content
	case alpha >= 0.33:
		return faint.Render(utils.StripANSI(content))
	default:
		return utils.Blank(content)
	}
}
