package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/internal/tui/utils"
)

// InstructionsHeight is the fixed height of the primary banner.
const InstructionsHeight = 3

// InstructionsPanel is the primary banner. The live instance follows navigation
// progress; preview instances show a chosen step.
type InstructionsPanel struct {
	Panel

	theme     *design.Theme
	formatter navigation.DistanceFormatter
	preview   bool

	instruction       navigation.VisualInstruction
	distance          float64
	hasDistance       bool
	showStepIndicator bool
	background        lipgloss.Style
}

// InstructionsSnapshot captures everything the banner displays, for comparing
// banner states.
type InstructionsSnapshot struct {
	Preview           bool
	Instruction       navigation.VisualInstruction
	Distance          float64
	HasDistance       bool
	ShowStepIndicator bool
}

func NewInstructionsPanel(theme *design.Theme, formatter navigation.DistanceFormatter, preview bool) *InstructionsPanel {
	p := &InstructionsPanel{
		Panel:     newPanel(true),
		theme:     theme,
		formatter: formatter,
		preview:   preview,
	}
	p.background = theme.Banner
	if preview {
		p.background = theme.BannerPreview
	}
	return p
}

func (p *InstructionsPanel) IsPreview() bool {
	return p.preview
}

// Update shows a new instruction. Empty instructions are ignored.
func (p *InstructionsPanel) Update(inst navigation.VisualInstruction) bool {
	if inst.IsEmpty() {
		return false
	}
	p.instruction = inst
	return true
}

// UpdateDistance shows the distance remaining on the current step.
func (p *InstructionsPanel) UpdateDistance(sp navigation.StepProgress) {
	if sp.Step == nil {
		return
	}
	p.SetDistance(sp.DistanceRemaining)
}

func (p *InstructionsPanel) SetDistance(meters float64) {
	p.distance = meters
	p.hasDistance = true
}

func (p *InstructionsPanel) SetShowStepIndicator(show bool) {
	p.showStepIndicator = show
}

// ApplyAppearance sets the banner background.
func (p *InstructionsPanel) ApplyAppearance(style lipgloss.Style) {
	p.background = style
}

func (p *InstructionsPanel) Appearance() lipgloss.Style {
	return p.background
}

func (p *InstructionsPanel) Instruction() navigation.VisualInstruction {
	return p.instruction
}

func (p *InstructionsPanel) Snapshot() InstructionsSnapshot {
	return InstructionsSnapshot{
		Preview:           p.preview,
		Instruction:       p.instruction,
		Distance:          p.distance,
		HasDistance:       p.hasDistance,
		ShowStepIndicator: p.showStepIndicator,
	}
}

// View renders the banner: maneuver icon and distance on the left, instruction
// text on the right.
func (p *InstructionsPanel) View(width int, now time.Time) string {
	if width < design.BannerMinWidth {
		width = design.BannerMinWidth
	}
	t := p.theme
	inner := width - p.background.GetHorizontalFrameSize()

	icon := t.ManeuverIcon.Render(SafeIcon(ManeuverIcon(p.instruction.Maneuver, t.ASCII)))
	distance := ""
	if p.hasDistance {
		distance = t.Distance.Render(p.formatter.Format(p.distance))
	}
	left := lipgloss.JoinVertical(lipgloss.Center, icon, distance)
	leftWidth := lipgloss.Width(left) + 1
	textWidth := inner - leftWidth
	if textWidth < 1 {
		textWidth = 1
	}

	var lines []string
	primary := p.instruction.Primary
	if primary == "" {
		primary = "—"
	}
	for _, l := range utils.WrapString(primary, textWidth, 2) {
		lines = append(lines, t.PrimaryText.Render(l))
	}
	if p.instruction.Secondary != "" && len(lines) < InstructionsHeight {
		lines = append(lines, t.SecondaryText.Render(utils.TruncateString(p.instruction.Secondary, textWidth)))
	}
	if p.showStepIndicator && len(lines) < InstructionsHeight {
		lines = append(lines, t.StepIndicator.Render(strings.Repeat("─", min(textWidth, 6))))
	}
	right := strings.Join(lines, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	rendered := p.background.
		Width(width).
		Height(InstructionsHeight).
		MaxHeight(InstructionsHeight).
		Render(body)
	return p.withAlpha(rendered, t.Faint, now)
}
