package panels

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navhud/internal/hud/anim"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/pkg/logging"
)

const subsystem = "Panels"

// DefaultFadeDuration is the auxiliary fade in and out.
const DefaultFadeDuration = 200 * time.Millisecond

// Transition kinds started by the registry.
const (
	KindAuxiliaryOut anim.Kind = "auxiliary.fadeOut"
	KindAuxiliaryIn  anim.Kind = "auxiliary.fadeIn"
	KindStatusOut    anim.Kind = "status.fadeOut"
)

// Registry owns the primary slot and the auxiliary panels.
type Registry struct {
	theme     *design.Theme
	seq       *anim.Sequencer
	formatter navigation.DistanceFormatter
	fade      time.Duration

	live    *InstructionsPanel
	primary *InstructionsPanel
	lanes   *LanesPanel
	next    *NextManeuverPanel
	status  *StatusPanel
	padding lipgloss.Style

	// auxGeneration increments on every auxiliary fade; a fade-out only hides
	// the panels if no later fade started.
	auxGeneration uint64
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFadeDuration overrides the auxiliary fade duration.
func WithFadeDuration(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.fade = d
		}
	}
}

func NewRegistry(theme *design.Theme, seq *anim.Sequencer, formatter navigation.DistanceFormatter, opts ...RegistryOption) *Registry {
	r := &Registry{
		theme:     theme,
		seq:       seq,
		formatter: formatter,
		fade:      DefaultFadeDuration,
		lanes:     NewLanesPanel(theme),
		next:      NewNextManeuverPanel(theme),
		status:    NewStatusPanel(theme),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.live = NewInstructionsPanel(theme, formatter, false)
	r.primary = r.live
	r.RefreshAppearance(r.live)
	return r
}

func (r *Registry) Theme() *design.Theme                    { return r.theme }
func (r *Registry) Formatter() navigation.DistanceFormatter { return r.formatter }
func (r *Registry) Live() *InstructionsPanel                { return r.live }
func (r *Registry) Primary() *InstructionsPanel             { return r.primary }
func (r *Registry) Lanes() *LanesPanel                      { return r.lanes }
func (r *Registry) Next() *NextManeuverPanel                { return r.next }
func (r *Registry) Status() *StatusPanel                    { return r.status }

// PaddingStyle is the style of the decoration above the banner.
func (r *Registry) PaddingStyle() lipgloss.Style {
	return r.padding
}

// MountPrimary puts p in the primary slot, replacing whatever was there.
func (r *Registry) MountPrimary(p *InstructionsPanel) {
	if p == nil {
		return
	}
	r.primary = p
}

// RestoreLivePrimary puts the live banner back and re-applies its appearance.
func (r *Registry) RestoreLivePrimary() {
	r.primary = r.live
	r.RefreshAppearance(r.live)
}

// IsLiveMounted reports whether the live banner occupies the primary slot.
func (r *Registry) IsLiveMounted() bool {
	return r.primary == r.live
}

// RefreshAppearance gives p and the top padding the theme background for p's
// kind, so they read as one block.
func (r *Registry) RefreshAppearance(p *InstructionsPanel) {
	bg := r.theme.Banner
	if p.IsPreview() {
		bg = r.theme.BannerPreview
	}
	p.ApplyAppearance(bg)
	r.padding = r.theme.TopPadding.Background(bg.GetBackground())
}

func (r *Registry) panel(kind Kind) *Panel {
	switch kind {
	case Primary:
		return &r.primary.Panel
	case Lanes:
		return &r.lanes.Panel
	case NextManeuver:
		return &r.next.Panel
	case Status:
		return &r.status.Panel
	default:
		return nil
	}
}

func (r *Registry) SetVisible(kind Kind, visible bool) {
	if p := r.panel(kind); p != nil {
		p.SetVisible(visible)
	}
}

func (r *Registry) SetHidden(kind Kind, hidden bool) {
	if p := r.panel(kind); p != nil {
		p.SetHidden(hidden)
	}
}

func (r *Registry) IsCurrentlyVisible(kind Kind) bool {
	p := r.panel(kind)
	return p != nil && p.IsCurrentlyVisible()
}

func (r *Registry) IsHidden(kind Kind) bool {
	p := r.panel(kind)
	return p == nil || p.IsHidden()
}

// Alpha returns the settled opacity of a panel.
func (r *Registry) Alpha(kind Kind) float64 {
	p := r.panel(kind)
	if p == nil {
		return 0
	}
	return p.Alpha.Target()
}

// UpdateContent routes data to a panel. Instructions go to primary, lanes and
// next maneuver; StatusRequest goes to status. Anything else, or an empty
// instruction, is ignored and reported as false.
func (r *Registry) UpdateContent(kind Kind, data any) (tea.Cmd, bool) {
	switch kind {
	case Primary, Lanes, NextManeuver:
		inst, ok := data.(navigation.VisualInstruction)
		if !ok || inst.IsEmpty() {
			logging.Debug(subsystem, "Ignoring malformed %s content %T", kind, data)
			return nil, false
		}
		switch kind {
		case Primary:
			return nil, r.primary.Update(inst)
		case Lanes:
			return nil, r.lanes.Update(inst)
		default:
			return nil, r.next.Update(inst)
		}
	case Status:
		req, ok := data.(StatusRequest)
		if !ok || req.Title == "" {
			logging.Debug(subsystem, "Ignoring malformed status content %T", data)
			return nil, false
		}
		return r.status.Show(req), true
	}
	return nil, false
}

func (r *Registry) auxiliary() []*Panel {
	return []*Panel{&r.lanes.Panel, &r.next.Panel, &r.status.Panel}
}

func (r *Registry) informationChildren() []*Panel {
	return append([]*Panel{&r.primary.Panel}, r.auxiliary()...)
}

// HideAuxiliary fades the auxiliary panels out and then hides them. onDone runs
// when the fade settles, before the panels are hidden. A ShowAuxiliary started
// before the fade settles keeps the panels visible.
func (r *Registry) HideAuxiliary(onDone func() tea.Cmd) tea.Cmd {
	r.auxGeneration++
	gen := r.auxGeneration
	return r.seq.Run(anim.Transition{
		Kind:     KindAuxiliaryOut,
		Duration: r.fade,
		Curve:    anim.EaseIn,
		Mutate: func(s *anim.Scope) {
			for _, p := range r.auxiliary() {
				s.Animate(&p.Alpha, 0)
			}
		},
		OnComplete: func() tea.Cmd {
			var cmd tea.Cmd
			if onDone != nil {
				cmd = onDone()
			}
			if gen != r.auxGeneration {
				logging.Debug(subsystem, "Auxiliary fade-out %d superseded", gen)
				return cmd
			}
			for _, p := range r.auxiliary() {
				p.SetHidden(true)
			}
			return cmd
		},
	})
}

// ShowAuxiliary unhides the auxiliary panels that opted in and fades every
// information panel, primary included, back to full opacity.
func (r *Registry) ShowAuxiliary(onDone func() tea.Cmd) tea.Cmd {
	r.auxGeneration++
	for _, p := range r.auxiliary() {
		p.SetHidden(!p.IsCurrentlyVisible())
	}
	fade := r.seq.Run(anim.Transition{
		Kind:     KindAuxiliaryIn,
		Duration: r.fade,
		Curve:    anim.EaseOut,
		Mutate: func(s *anim.Scope) {
			for _, p := range r.informationChildren() {
				s.Animate(&p.Alpha, 1)
			}
		},
		OnComplete: onDone,
	})
	return tea.Batch(fade, r.status.resume())
}

// Update handles status hide and spinner messages.
func (r *Registry) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case StatusHideMsg:
		return r.hideStatus(msg), true
	case spinner.TickMsg:
		if msg.ID != r.status.SpinnerID() {
			return nil, false
		}
		return r.status.UpdateSpinner(msg), true
	}
	return nil, false
}

func (r *Registry) hideStatus(msg StatusHideMsg) tea.Cmd {
	if !r.status.IsCurrent(msg.Generation) {
		logging.Debug(subsystem, "Dropping stale status hide %d", msg.Generation)
		return nil
	}
	if !msg.Animated {
		r.status.HideNow()
		return nil
	}
	gen := msg.Generation
	restore := r.status.Alpha.Target()
	return r.seq.Run(anim.Transition{
		Kind:     KindStatusOut,
		Duration: r.fade,
		Curve:    anim.EaseIn,
		Mutate: func(s *anim.Scope) {
			s.Animate(&r.status.Alpha, 0)
		},
		OnComplete: func() tea.Cmd {
			if r.status.IsCurrent(gen) {
				r.status.HideNow()
			}
			// A Show during the fade keeps the panel visible.
			r.status.Alpha.Set(restore)
			return nil
		},
	})
}

// View stacks the padding, primary banner and shown auxiliary panels.
func (r *Registry) View(width int) string {
	now := r.seq.Now()
	parts := []string{r.padding.Width(width).Render(""), r.primary.View(width, now)}
	if r.lanes.Shown() {
		parts = append(parts, r.lanes.View(width, now))
	}
	if r.next.Shown() {
		parts = append(parts, r.next.View(width, now))
	}
	if r.status.Shown() {
		parts = append(parts, r.status.View(width, now))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
