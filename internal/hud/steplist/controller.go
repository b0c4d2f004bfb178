package steplist

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"navhud/internal/hud/anim"
	"navhud/internal/hud/panels"
	"navhud/internal/navigation"
	"navhud/pkg/logging"
)

const subsystem = "StepList"

// Default expand and collapse durations.
const (
	DefaultOpenDuration  = 350 * time.Millisecond
	DefaultCloseDuration = 350 * time.Millisecond
)

// Transition kinds started by the controller.
const (
	KindExpand   anim.Kind = "steps.expand"
	KindCollapse anim.Kind = "steps.collapse"
)

// State is the overlay lifecycle.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Opening:
		return "Opening"
	case Open:
		return "Open"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Session describes one opened overlay.
type Session struct {
	ID       string
	Progress navigation.RouteProgress
	IsOpen   bool
}

// Hooks connect the controller to its owner. Every field is optional.
type Hooks struct {
	WillDisplay func(*StepsView)
	DidDisplay  func(*StepsView)
	WillDismiss func(*StepsView)
	DidDismiss  func(*StepsView)
	DidSelect   func(legIndex, stepIndex int, cell Cell) tea.Cmd
	// PreviewActive reports whether a preview owns the primary slot, in which
	// case closing does not bring the auxiliary panels back.
	PreviewActive func() bool
}

// Controller owns the step list overlay.
type Controller struct {
	seq      *anim.Sequencer
	registry *panels.Registry
	hooks    Hooks

	openDuration  time.Duration
	closeDuration time.Duration

	attached bool
	state    State
	session  *Session
	view     *StepsView
	height   anim.Property

	closeQueued bool
	pendingDone []func() tea.Cmd
	reopen      *navigation.RouteProgress
}

// Option configures a Controller.
type Option func(*Controller)

// WithDurations overrides the expand and collapse durations.
func WithDurations(open, close time.Duration) Option {
	return func(c *Controller) {
		if open > 0 {
			c.openDuration = open
		}
		if close > 0 {
			c.closeDuration = close
		}
	}
}

func NewController(seq *anim.Sequencer, registry *panels.Registry, opts ...Option) *Controller {
	c := &Controller{
		seq:           seq,
		registry:      registry,
		openDuration:  DefaultOpenDuration,
		closeDuration: DefaultCloseDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetHooks(h Hooks) {
	c.hooks = h
}

// SetAttached records whether the overlay has a container to live in.
func (c *Controller) SetAttached(attached bool) {
	c.attached = attached
}

func (c *Controller) State() State {
	return c.state
}

// View returns the child view while one exists.
func (c *Controller) View() *StepsView {
	return c.view
}

// Session returns a copy of the current session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Height is the animated container expansion, 0 collapsed and 1 expanded.
func (c *Controller) Height() anim.Property {
	return c.height
}

// Open creates the child view for progress and expands it while the auxiliary
// panels fade out. Only valid while Closed.
func (c *Controller) Open(progress navigation.RouteProgress) tea.Cmd {
	if !c.attached {
		logging.Debug(subsystem, "Open ignored: not attached")
		return nil
	}
	if c.state != Closed {
		logging.Debug(subsystem, "Open ignored in state %s", c.state)
		return nil
	}

	c.session = &Session{ID: uuid.NewString(), Progress: progress}
	c.view = NewStepsView(progress, c.registry.Theme(), c.registry.Formatter())
	c.height.Set(0)
	c.state = Opening
	logging.Info(subsystem, "Opening step list %s with %d rows", c.session.ID, len(c.view.Rows()))

	view := c.view
	if c.hooks.WillDisplay != nil {
		c.hooks.WillDisplay(view)
	}

	fade := c.registry.HideAuxiliary(nil)
	expand := c.seq.Run(anim.Transition{
		Kind:              KindExpand,
		Duration:          c.openDuration,
		Curve:             anim.EaseOut,
		BlocksInteraction: true,
		Mutate: func(s *anim.Scope) {
			s.Animate(&c.height, 1)
		},
		OnComplete: func() tea.Cmd {
			return c.didOpen(view)
		},
	})
	return tea.Batch(fade, expand)
}

func (c *Controller) didOpen(view *StepsView) tea.Cmd {
	if c.view != view || c.state != Opening {
		return nil
	}
	c.state = Open
	c.session.IsOpen = true
	logging.Debug(subsystem, "Step list %s open", c.session.ID)
	if c.hooks.DidDisplay != nil {
		c.hooks.DidDisplay(view)
	}
	if c.closeQueued {
		c.closeQueued = false
		return c.startClose()
	}
	return nil
}

// Close collapses the overlay. While opening the close is queued; while closing
// onDone joins the running close; while closed nothing happens.
func (c *Controller) Close(onDone func() tea.Cmd) tea.Cmd {
	if !c.attached {
		logging.Debug(subsystem, "Close ignored: not attached")
		return nil
	}
	switch c.state {
	case Closed:
		return nil
	case Opening:
		c.closeQueued = true
		c.addDone(onDone)
		return nil
	case Closing:
		c.addDone(onDone)
		return nil
	}
	c.addDone(onDone)
	return c.startClose()
}

// OpenAfterClose opens a fresh overlay for progress once the current one has
// closed.
func (c *Controller) OpenAfterClose(progress navigation.RouteProgress) {
	c.reopen = &progress
}

func (c *Controller) addDone(onDone func() tea.Cmd) {
	if onDone != nil {
		c.pendingDone = append(c.pendingDone, onDone)
	}
}

func (c *Controller) startClose() tea.Cmd {
	view := c.view
	c.state = Closing
	if c.session != nil {
		logging.Info(subsystem, "Closing step list %s", c.session.ID)
	}
	if c.hooks.WillDismiss != nil {
		c.hooks.WillDismiss(view)
	}
	return c.seq.Run(anim.Transition{
		Kind:              KindCollapse,
		Duration:          c.closeDuration,
		Curve:             anim.EaseInOut,
		BlocksInteraction: true,
		Mutate: func(s *anim.Scope) {
			s.Animate(&c.height, 0)
		},
		OnComplete: func() tea.Cmd {
			return c.didCollapse(view)
		},
	})
}

func (c *Controller) didCollapse(view *StepsView) tea.Cmd {
	c.view = nil
	c.session = nil
	c.state = Closed
	dones := c.pendingDone
	c.pendingDone = nil
	reopen := c.reopen
	c.reopen = nil

	finish := func() tea.Cmd {
		if c.hooks.DidDismiss != nil {
			c.hooks.DidDismiss(view)
		}
		cmds := make([]tea.Cmd, 0, len(dones)+1)
		for _, done := range dones {
			cmds = append(cmds, done())
		}
		if reopen != nil {
			cmds = append(cmds, c.Open(*reopen))
		}
		return tea.Batch(cmds...)
	}

	previewActive := c.hooks.PreviewActive != nil && c.hooks.PreviewActive()
	if previewActive && reopen != nil {
		logging.Debug(subsystem, "Dropping queued reopen: a preview took over")
		reopen = nil
	}
	if previewActive || reopen != nil {
		return finish()
	}
	return c.registry.ShowAuxiliary(finish)
}

// MoveCursor moves the selection by delta rows while the list is open.
func (c *Controller) MoveCursor(delta int) {
	if c.view == nil || c.state != Open {
		return
	}
	for ; delta < 0; delta++ {
		c.view.MoveUp()
	}
	for ; delta > 0; delta-- {
		c.view.MoveDown()
	}
}

// Select forwards the row under the cursor unchanged.
func (c *Controller) Select() tea.Cmd {
	if c.view == nil || c.state != Open {
		return nil
	}
	row, cell, ok := c.view.Selected()
	if !ok {
		return nil
	}
	logging.Debug(subsystem, "Selected leg %d step %d", row.LegIndex, row.StepIndex)
	if c.hooks.DidSelect == nil {
		return nil
	}
	return c.hooks.DidSelect(row.LegIndex, row.StepIndex, cell)
}

// Render draws the container at its current animated height.
func (c *Controller) Render(width, maxHeight int) string {
	return containerView(c.view, c.height, width, maxHeight, c.seq.Now())
}
