// Package preview substitutes the primary banner with a banner bound to an
// arbitrary step, independent of live navigation progress.
package preview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"navhud/internal/hud/panels"
	"navhud/internal/navigation"
	"navhud/pkg/logging"
)

const subsystem = "Preview"

// Request describes what to preview. Override selects the step to show; when nil
// the first of Steps is shown.
type Request struct {
	Override     *navigation.Step
	ManeuverStep *navigation.Step
	Distance     float64
	Steps        []*navigation.Step
	OnDone       func() tea.Cmd
}

// resolve returns the step a request would show, its index and instruction.
func (r Request) resolve() (*navigation.Step, int, navigation.VisualInstruction, bool) {
	if len(r.Steps) == 0 {
		return nil, -1, navigation.VisualInstruction{}, false
	}
	step := r.Override
	if step == nil {
		step = r.Steps[0]
	}
	index := indexOf(r.Steps, step)
	if index < 0 {
		return step, -1, navigation.VisualInstruction{}, false
	}
	instruction, ok := step.LastInstruction()
	return step, index, instruction, ok
}

// Valid reports whether Preview would act on the request.
func (r Request) Valid() bool {
	_, _, _, ok := r.resolve()
	return ok
}

// Session is the state of an active preview.
type Session struct {
	ID           string
	Steps        []*navigation.Step
	CurrentIndex int
	OverrideStep *navigation.Step
	ManeuverStep *navigation.Step
	Distance     float64
}

// Current returns the previewed step.
func (s Session) Current() *navigation.Step {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Steps) {
		return nil
	}
	return s.Steps[s.CurrentIndex]
}

// Neighbor returns the step delta positions away from the current one.
func (s Session) Neighbor(delta int) (*navigation.Step, bool) {
	i := s.CurrentIndex + delta
	if i < 0 || i >= len(s.Steps) {
		return nil, false
	}
	return s.Steps[i], true
}

type Controller struct {
	registry *panels.Registry
	session  *Session
	panel    *panels.InstructionsPanel
}

func NewController(registry *panels.Registry) *Controller {
	return &Controller{registry: registry}
}

// Active reports whether a preview banner occupies the primary slot.
func (c *Controller) Active() bool {
	return c.panel != nil
}

func (c *Controller) Panel() *panels.InstructionsPanel {
	return c.panel
}

// Session returns a copy of the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	s := *c.session
	s.Steps = append([]*navigation.Step(nil), c.session.Steps...)
	return s, true
}

// Preview shows the last display-along-step instruction of the resolved step in
// a preview banner and fades the auxiliary panels out. Requests with no steps, a
// step outside Steps or a step without instructions change nothing.
func (c *Controller) Preview(req Request) tea.Cmd {
	step, index, instruction, ok := req.resolve()
	if !ok {
		logging.Debug(subsystem, "Preview ignored: %d steps, resolved index %d", len(req.Steps), index)
		return nil
	}

	c.Stop(false)

	c.session = &Session{
		ID:           uuid.NewString(),
		Steps:        append([]*navigation.Step(nil), req.Steps...),
		CurrentIndex: index,
		OverrideStep: req.Override,
		ManeuverStep: req.ManeuverStep,
		Distance:     req.Distance,
	}

	p := panels.NewInstructionsPanel(c.registry.Theme(), c.registry.Formatter(), true)
	c.registry.RefreshAppearance(p)
	p.SetDistance(req.Distance)
	p.Update(instruction)
	c.registry.MountPrimary(p)
	c.panel = p
	logging.Info(subsystem, "Previewing step %q (%d/%d) in session %s", step.ID, index+1, len(req.Steps), c.session.ID)

	return c.registry.HideAuxiliary(req.OnDone)
}

// Stop removes the preview banner and remounts the live one, fading the
// auxiliary panels back in when restoreAuxiliary is set.
func (c *Controller) Stop(restoreAuxiliary bool) tea.Cmd {
	if c.panel == nil {
		return nil
	}
	logging.Info(subsystem, "Stopping preview session %s", c.session.ID)
	c.session = nil
	c.panel = nil
	c.registry.RestoreLivePrimary()

	if !restoreAuxiliary {
		return nil
	}
	return c.registry.ShowAuxiliary(nil)
}

// indexOf finds step by identity, then by ID.
func indexOf(steps []*navigation.Step, step *navigation.Step) int {
	if step == nil {
		return -1
	}
	for i, s := range steps {
		if s == step {
			return i
		}
	}
	if step.ID == "" {
		return -1
	}
	for i, s := range steps {
		if s != nil && s.ID == step.ID {
			return i
		}
	}
	return -1
}
