package coordinator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"navhud/internal/hud/anim"
	"navhud/internal/hud/panels"
	"navhud/internal/hud/preview"
	"navhud/internal/hud/steplist"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/pkg/logging"
)

const subsystem = "Coordinator"

// Status titles.
const (
	ReroutingTitle   = "Rerouting…"
	FasterRouteTitle = "Faster Route Found"
)

// Mode is the exclusive state of the banner area.
type Mode int

const (
	ModeIdle Mode = iota
	ModeStepListOpen
	ModePreviewActive
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeStepListOpen:
		return "StepListOpen"
	case ModePreviewActive:
		return "PreviewActive"
	default:
		return "Unknown"
	}
}

// SwipeDirection of a gesture on the primary banner.
type SwipeDirection int

const (
	SwipeLeft SwipeDirection = iota
	SwipeRight
	SwipeUp
	SwipeDown
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	default:
		return "unknown"
	}
}

// Host is the screen embedding the HUD.
type Host interface {
	anim.InteractionHost
}

// Delegate receives the coordinator's outbound notifications. Any field may be nil.
type Delegate struct {
	DidSwipe         func(direction SwipeDirection) tea.Cmd
	DidSelect        func(legIndex, stepIndex int, cell steplist.Cell) tea.Cmd
	WillDisplaySteps func(*steplist.StepsView)
	DidDisplaySteps  func(*steplist.StepsView)
	WillDismissSteps func(*steplist.StepsView)
	DidDismissSteps  func(*steplist.StepsView)
}

// Options configures a Coordinator.
type Options struct {
	Theme     *design.Theme
	Formatter navigation.DistanceFormatter
	// Clock replaces time.Now for animations.
	Clock func() time.Time
	// Scale multiplies animation durations; 0 disables animation.
	Scale         float64
	FrameInterval time.Duration

	StepsOpen     time.Duration
	StepsClose    time.Duration
	AuxiliaryFade time.Duration

	RerouteHideDelay    time.Duration
	FasterRouteDuration time.Duration

	// SimulationAlways keeps the simulation status up after reroutes.
	SimulationAlways bool
	SimulationSpeed  int
}

func DefaultOptions() Options {
	return Options{
		Theme:               design.NewTheme(design.ColorModeAuto),
		Formatter:           navigation.NewDistanceFormatter(navigation.UnitsMetric, "en-US"),
		Scale:               1,
		FrameInterval:       anim.DefaultFrameInterval,
		StepsOpen:           steplist.DefaultOpenDuration,
		StepsClose:          steplist.DefaultCloseDuration,
		AuxiliaryFade:       panels.DefaultFadeDuration,
		RerouteHideDelay:    2 * time.Second,
		FasterRouteDuration: 3 * time.Second,
		SimulationSpeed:     1,
	}
}

// Coordinator wires the panels, step list and preview together.
type Coordinator struct {
	opts Options

	gate     *anim.Gate
	seq      *anim.Sequencer
	registry *panels.Registry
	steps    *steplist.Controller
	preview  *preview.Controller

	host     Host
	delegate *Delegate
	progress *navigation.RouteProgress
	speed    int
}

func New(opts Options) *Coordinator {
	if opts.Theme == nil {
		opts.Theme = design.NewTheme(design.ColorModeAuto)
	}
	if opts.SimulationSpeed < 1 {
		opts.SimulationSpeed = 1
	}

	seqOpts := []anim.Option{anim.WithScale(opts.Scale), anim.WithFrameInterval(opts.FrameInterval)}
	if opts.Clock != nil {
		seqOpts = append(seqOpts, anim.WithClock(opts.Clock))
	}

	c := &Coordinator{opts: opts, speed: opts.SimulationSpeed}
	c.gate = anim.NewGate(nil)
	c.seq = anim.NewSequencer(c.gate, seqOpts...)
	c.registry = panels.NewRegistry(opts.Theme, c.seq, opts.Formatter, panels.WithFadeDuration(opts.AuxiliaryFade))
	c.steps = steplist.NewController(c.seq, c.registry, steplist.WithDurations(opts.StepsOpen, opts.StepsClose))
	c.preview = preview.NewController(c.registry)
	c.steps.SetHooks(steplist.Hooks{
		WillDisplay: func(v *steplist.StepsView) {
			if d := c.delegate; d != nil && d.WillDisplaySteps != nil {
				d.WillDisplaySteps(v)
			}
		},
		DidDisplay: func(v *steplist.StepsView) {
			if d := c.delegate; d != nil && d.DidDisplaySteps != nil {
				d.DidDisplaySteps(v)
			}
		},
		WillDismiss: func(v *steplist.StepsView) {
			if d := c.delegate; d != nil && d.WillDismissSteps != nil {
				d.WillDismissSteps(v)
			}
		},
		DidDismiss: func(v *steplist.StepsView) {
			if d := c.delegate; d != nil && d.DidDismissSteps != nil {
				d.DidDismissSteps(v)
			}
		},
		DidSelect: func(legIndex, stepIndex int, cell steplist.Cell) tea.Cmd {
			if d := c.delegate; d != nil && d.DidSelect != nil {
				return d.DidSelect(legIndex, stepIndex, cell)
			}
			return nil
		},
		PreviewActive: c.preview.Active,
	})
	return c
}

// Attach gives the coordinator a host to render into.
func (c *Coordinator) Attach(host Host) {
	c.host = host
	c.gate.SetHost(host)
	c.steps.SetAttached(host != nil)
	logging.Debug(subsystem, "Attached=%t", host != nil)
}

func (c *Coordinator) Detach() {
	c.Attach(nil)
}

func (c *Coordinator) SetDelegate(d *Delegate) {
	c.delegate = d
}

func (c *Coordinator) Registry() *panels.Registry     { return c.registry }
func (c *Coordinator) Sequencer() *anim.Sequencer     { return c.seq }
func (c *Coordinator) StepList() *steplist.Controller { return c.steps }
func (c *Coordinator) Previewer() *preview.Controller { return c.preview }

// Mode reports which overlay owns the banner area.
func (c *Coordinator) Mode() Mode {
	if c.preview.Active() {
		return ModePreviewActive
	}
	switch c.steps.State() {
	case steplist.Opening, steplist.Open:
		return ModeStepListOpen
	}
	return ModeIdle
}

// IsDisplayingSteps is true between the completed did-display and the next
// will-dismiss.
func (c *Coordinator) IsDisplayingSteps() bool {
	return c.steps.State() == steplist.Open
}

func (c *Coordinator) IsDisplayingPreviewInstructions() bool {
	return c.preview.Active()
}

func (c *Coordinator) InteractionBlocked() bool {
	return c.gate.Blocked()
}

// Progress returns the last progress received.
func (c *Coordinator) Progress() (navigation.RouteProgress, bool) {
	if c.progress == nil {
		return navigation.RouteProgress{}, false
	}
	return *c.progress, true
}

func (c *Coordinator) SimulationSpeed() int {
	return c.speed
}

// OnProgressUpdate caches progress and refreshes the live banner's distance.
func (c *Coordinator) OnProgressUpdate(progress navigation.RouteProgress) {
	c.progress = &progress
	c.registry.Live().UpdateDistance(progress.CurrentStepProgress())
}

// OnInstructionPoint shows a newly reached instruction on the live banner, the
// lanes and the next maneuver panel.
func (c *Coordinator) OnInstructionPoint(instruction navigation.VisualInstruction) {
	if instruction.IsEmpty() {
		logging.Debug(subsystem, "Ignoring empty instruction")
		return
	}
	c.registry.Live().Update(instruction)
	c.registry.UpdateContent(panels.Lanes, instruction)
	c.registry.UpdateContent(panels.NextManeuver, instruction)
}

func (c *Coordinator) OnRerouteStarted(location navigation.Location) tea.Cmd {
	logging.Info(subsystem, "Reroute started at %.5f,%.5f", location.Latitude, location.Longitude)
	c.registry.Lanes().Hide()
	return c.ShowStatus(panels.StatusRequest{Title: ReroutingTitle, Spinner: true})
}

// OnRerouteCompleted refreshes the banner for the new route, closes the step
// list and settles the status panel.
func (c *Coordinator) OnRerouteCompleted(route *navigation.Route, proactive bool) tea.Cmd {
	if route != nil && (c.progress == nil || c.progress.Route != route) {
		var previous navigation.RouteProgress
		if c.progress != nil {
			previous = *c.progress
		}
		next := previous.OnRoute(route)
		c.progress = &next
	}
	if c.progress != nil {
		c.registry.Live().UpdateDistance(c.progress.CurrentStepProgress())
	}

	cmds := []tea.Cmd{c.DismissStepsTable(nil)}
	status := c.registry.Status()
	if c.opts.SimulationAlways {
		cmds = append(cmds, status.ShowSimulationStatus(c.speed))
	} else {
		cmds = append(cmds, status.Hide(c.opts.RerouteHideDelay, true))
	}
	if proactive {
		cmds = append(cmds, c.ShowStatus(panels.StatusRequest{
			Title:    FasterRouteTitle,
			Spinner:  true,
			Duration: c.opts.FasterRouteDuration,
			Animated: true,
		}))
	}
	logging.Info(subsystem, "Reroute completed (proactive=%t)", proactive)
	return tea.Batch(cmds...)
}

// OnSimulationStateChanged reacts to manually started simulations only.
func (c *Coordinator) OnSimulationStateChanged(change navigation.SimulationChange) tea.Cmd {
	if change.Intent != navigation.SimulationManual {
		return nil
	}
	switch change.Phase {
	case navigation.SimulationWillBegin:
		if change.Speed > 0 {
			c.speed = change.Speed
		}
		return c.registry.Status().ShowSimulationStatus(c.speed)
	case navigation.SimulationWillEnd:
		return c.registry.Status().Hide(0, true)
	}
	return nil
}

// SetSimulationSpeed records a new multiplier and refreshes the simulation
// status if it is showing.
func (c *Coordinator) SetSimulationSpeed(speed int) tea.Cmd {
	if speed < 1 {
		speed = 1
	}
	c.speed = speed
	status := c.registry.Status()
	if status.Interactive() && !status.IsHidden() {
		return status.ShowSimulationStatus(speed)
	}
	return nil
}

// OnPrimaryPanelTap toggles the step list.
func (c *Coordinator) OnPrimaryPanelTap() tea.Cmd {
	if c.gate.Blocked() {
		logging.Debug(subsystem, "Tap ignored: interaction blocked")
		return nil
	}
	switch c.steps.State() {
	case steplist.Open:
		return c.DismissStepsTable(nil)
	case steplist.Closed:
		return c.DisplayStepsTable()
	}
	logging.Debug(subsystem, "Tap ignored while step list is %s", c.steps.State())
	return nil
}

func (c *Coordinator) OnPrimaryPanelSwipe(direction SwipeDirection) tea.Cmd {
	logging.Debug(subsystem, "Swipe %s", direction)
	if d := c.delegate; d != nil && d.DidSwipe != nil {
		return d.DidSwipe(direction)
	}
	return nil
}

// DisplayStepsTable opens the step list for the cached progress, replacing an
// open list and ending any preview first.
func (c *Coordinator) DisplayStepsTable() tea.Cmd {
	if c.host == nil {
		logging.Debug(subsystem, "DisplayStepsTable ignored: no host")
		return nil
	}
	if c.progress == nil {
		logging.Debug(subsystem, "DisplayStepsTable ignored: no progress yet")
		return nil
	}
	progress := *c.progress

	if c.steps.State() == steplist.Opening {
		logging.Debug(subsystem, "DisplayStepsTable ignored: already opening")
		return nil
	}

	var stop tea.Cmd
	if c.preview.Active() {
		stop = c.preview.Stop(false)
	}

	switch c.steps.State() {
	case steplist.Closing:
		c.steps.OpenAfterClose(progress)
		return stop
	case steplist.Open:
		cmd := c.steps.Close(nil)
		c.steps.OpenAfterClose(progress)
		return tea.Batch(stop, cmd)
	}
	return tea.Batch(stop, c.steps.Open(progress))
}

// DismissStepsTable closes the step list if one is showing. onDone runs after
// the close completes.
func (c *Coordinator) DismissStepsTable(onDone func() tea.Cmd) tea.Cmd {
	return c.steps.Close(onDone)
}

// Preview shows a step in place of the live banner. An open step list starts
// closing; a list still opening rejects the request.
func (c *Coordinator) Preview(req preview.Request) tea.Cmd {
	if c.host == nil {
		logging.Debug(subsystem, "Preview ignored: no host")
		return nil
	}
	if !req.Valid() {
		logging.Debug(subsystem, "Preview ignored: nothing to show")
		return nil
	}

	var closing tea.Cmd
	switch c.steps.State() {
	case steplist.Opening:
		logging.Info(subsystem, "Preview rejected while the step list is opening")
		return nil
	case steplist.Open:
		closing = c.steps.Close(nil)
	}
	return tea.Batch(closing, c.preview.Preview(req))
}

func (c *Coordinator) StopPreviewing(restoreAuxiliary bool) tea.Cmd {
	return c.preview.Stop(restoreAuxiliary)
}

// OnMapRecentered ends a preview and brings the auxiliary panels back.
func (c *Coordinator) OnMapRecentered() tea.Cmd {
	return c.StopPreviewing(true)
}

func (c *Coordinator) ShowStatus(req panels.StatusRequest) tea.Cmd {
	cmd, _ := c.registry.UpdateContent(panels.Status, req)
	return cmd
}

func (c *Coordinator) OnExternalDisplayConnected() tea.Cmd {
	logging.Info(subsystem, "External display connected")
	return c.DisplayStepsTable()
}

func (c *Coordinator) OnExternalDisplayDisconnected() tea.Cmd {
	logging.Info(subsystem, "External display disconnected")
	return c.DismissStepsTable(nil)
}

// OnStepsViewDismissRequested closes the list on behalf of the list itself.
func (c *Coordinator) OnStepsViewDismissRequested() tea.Cmd {
	cmd := c.DismissStepsTable(nil)
	c.registry.Live().SetShowStepIndicator(true)
	return cmd
}

func (c *Coordinator) SelectStep() tea.Cmd {
	return c.steps.Select()
}

func (c *Coordinator) MoveStepCursor(delta int) {
	c.steps.MoveCursor(delta)
}

// Update routes animation, status and navigation messages. handled is false for
// messages the coordinator does not own.
func (c *Coordinator) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	if cmd, ok := c.seq.Update(msg); ok {
		return cmd, true
	}
	if cmd, ok := c.registry.Update(msg); ok {
		return cmd, true
	}
	switch msg := msg.(type) {
	case navigation.ProgressMsg:
		c.OnProgressUpdate(msg.Progress)
		return nil, true
	case navigation.InstructionPointMsg:
		c.OnProgressUpdate(msg.Progress)
		c.OnInstructionPoint(msg.Instruction)
		return nil, true
	case navigation.RerouteStartedMsg:
		return c.OnRerouteStarted(msg.Location), true
	case navigation.RerouteCompletedMsg:
		return c.OnRerouteCompleted(msg.Route, msg.Proactive), true
	case navigation.SimulationMsg:
		return c.OnSimulationStateChanged(msg.Change), true
	}
	return nil, false
}

// Flush settles every running animation at once.
func (c *Coordinator) Flush() tea.Cmd {
	return c.seq.Flush()
}

// View renders the banner stack with the step list container below it.
func (c *Coordinator) View(width, height int) string {
	top := c.registry.View(width)
	rest := height - lipgloss.Height(top)
	if rest <= 0 || c.steps.View() == nil {
		return top
	}
	list := c.steps.Render(width, rest)
	if list == "" {
		return top
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, list)
}
