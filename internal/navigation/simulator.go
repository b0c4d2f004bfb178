package navigation

import (
	"time"
)

// Event is a notification produced by the simulated navigation engine. The
// concrete types double as bubbletea messages.
type Event interface {
	isNavigationEvent()
}

// ProgressMsg carries a fresh progress snapshot.
type ProgressMsg struct {
	Progress RouteProgress
}

// InstructionPointMsg is sent when a display-along-step threshold is crossed.
type InstructionPointMsg struct {
	Instruction VisualInstruction
	Progress    RouteProgress
}

type RerouteStartedMsg struct {
	Location Location
}

type RerouteCompletedMsg struct {
	Route     *Route
	Proactive bool
}

type SimulationMsg struct {
	Change SimulationChange
}

// ArrivedMsg is sent once when the final step is reached.
type ArrivedMsg struct {
	Progress RouteProgress
}

func (ProgressMsg) isNavigationEvent()         {}
func (InstructionPointMsg) isNavigationEvent() {}
func (RerouteStartedMsg) isNavigationEvent()   {}
func (RerouteCompletedMsg) isNavigationEvent() {}
func (SimulationMsg) isNavigationEvent()       {}
func (ArrivedMsg) isNavigationEvent()          {}

// DefaultBaseSpeed is the simulated speed in meters per second at multiplier 1.
const DefaultBaseSpeed = 14.0

// proactiveRerouteScale shortens the remaining route when a faster one is found.
const proactiveRerouteScale = 0.85

// Simulator moves a virtual vehicle along a route and reports what a navigation
// engine would. It is not safe for concurrent use; the TUI drives it from its
// update loop.
type Simulator struct {
	progress  RouteProgress
	baseSpeed float64
	speed     int
	intent    SimulationIntent

	running     bool
	rerouting   bool
	arrived     bool
	instruction int
	origin      Location
	traveled    float64
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithBaseSpeed sets the speed in meters per second at multiplier 1.
func WithBaseSpeed(mps float64) SimulatorOption {
	return func(s *Simulator) {
		if mps > 0 {
			s.baseSpeed = mps
		}
	}
}

// WithIntent sets the reason reported in SimulationMsg events.
func WithIntent(intent SimulationIntent) SimulatorOption {
	return func(s *Simulator) { s.intent = intent }
}

// WithOrigin sets the starting location.
func WithOrigin(loc Location) SimulatorOption {
	return func(s *Simulator) { s.origin = loc }
}

func NewSimulator(route *Route, speed int, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		progress:    RouteProgress{Route: route},
		baseSpeed:   DefaultBaseSpeed,
		speed:       1,
		instruction: -1,
		origin:      Location{Latitude: 52.5200, Longitude: 13.4050},
	}
	s.SetSpeed(speed)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Progress() RouteProgress { return s.progress }
func (s *Simulator) Speed() int               { return s.speed }
func (s *Simulator) Running() bool            { return s.running }
func (s *Simulator) Rerouting() bool          { return s.rerouting }
func (s *Simulator) Arrived() bool            { return s.arrived }

// SetSpeed sets the speed multiplier, clamped to 1..16.
func (s *Simulator) SetSpeed(n int) {
	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}
	s.speed = n
}

// Location approximates the vehicle position from the distance traveled.
func (s *Simulator) Location() Location {
	const metersPerDegree = 111_320.0
	return Location{
		Latitude:  s.origin.Latitude + s.traveled/metersPerDegree,
		Longitude: s.origin.Longitude,
	}
}

// Begin starts the simulation and returns the initial events: the begin
// notifications, a progress snapshot and the first instruction of the first step.
func (s *Simulator) Begin() []Event {
	if s.running {
		return nil
	}
	events := []Event{
		SimulationMsg{Change: SimulationChange{Intent: s.intent, Phase: SimulationWillBegin, Speed: s.speed}},
	}
	s.running = true
	events = append(events,
		SimulationMsg{Change: SimulationChange{Intent: s.intent, Phase: SimulationDidBegin, Speed: s.speed}},
		ProgressMsg{Progress: s.progress},
	)
	if step := s.progress.CurrentStep(); step != nil && len(step.InstructionsDisplayedAlongStep) > 0 {
		s.instruction = 0
		events = append(events, InstructionPointMsg{Instruction: step.InstructionsDisplayedAlongStep[0], Progress: s.progress})
	}
	return events
}

// End stops the simulation.
func (s *Simulator) End() []Event {
	if !s.running {
		return nil
	}
	s.running = false
	return []Event{
		SimulationMsg{Change: SimulationChange{Intent: s.intent, Phase: SimulationWillEnd, Speed: s.speed}},
		SimulationMsg{Change: SimulationChange{Intent: s.intent, Phase: SimulationDidEnd, Speed: s.speed}},
	}
}

// Advance moves the vehicle forward by elapsed wall time scaled by the speed
// multiplier. Nothing moves while stopped, rerouting or arrived.
func (s *Simulator) Advance(elapsed time.Duration) []Event {
	if !s.running || s.rerouting || s.arrived || elapsed <= 0 {
		return nil
	}

	var events []Event
	distance := s.baseSpeed * float64(s.speed) * elapsed.Seconds()
	s.traveled += distance

	for distance > 0 {
		step := s.progress.CurrentStep()
		if step == nil {
			break
		}
		remaining := step.Distance - s.progress.DistanceTraveledOnStep
		if distance < remaining {
			s.progress.DistanceTraveledOnStep += distance
			break
		}
		distance -= remaining
		if !s.nextStep() {
			s.progress.DistanceTraveledOnStep = step.Distance
			s.arrived = true
			break
		}
	}

	events = append(events, ProgressMsg{Progress: s.progress})
	if inst, ok := s.crossedInstruction(); ok {
		events = append(events, InstructionPointMsg{Instruction: inst, Progress: s.progress})
	}
	if s.arrived {
		events = append(events, ArrivedMsg{Progress: s.progress})
	}
	return events
}

// nextStep moves to the following step, crossing into the next leg when needed.
func (s *Simulator) nextStep() bool {
	leg := s.progress.CurrentLeg()
	if leg == nil {
		return false
	}
	switch {
	case s.progress.StepIndex+1 < len(leg.Steps):
		s.progress.StepIndex++
	case s.progress.LegIndex+1 < len(s.progress.Route.Legs):
		s.progress.LegIndex++
		s.progress.StepIndex = 0
	default:
		return false
	}
	s.progress.DistanceTraveledOnStep = 0
	s.instruction = -1
	return true
}

func (s *Simulator) crossedInstruction() (VisualInstruction, bool) {
	step := s.progress.CurrentStep()
	if step == nil {
		return VisualInstruction{}, false
	}
	idx := step.ActiveInstructionIndex(s.progress.CurrentStepProgress().DistanceRemaining)
	if idx <= s.instruction {
		return VisualInstruction{}, false
	}
	s.instruction = idx
	return step.InstructionsDisplayedAlongStep[idx], true
}

// BeginReroute pauses movement and reports the reroute start.
func (s *Simulator) BeginReroute() RerouteStartedMsg {
	s.rerouting = true
	return RerouteStartedMsg{Location: s.Location()}
}

// CompleteReroute swaps in a route rebuilt from the current position and resumes.
// A proactive reroute yields a shorter remainder.
func (s *Simulator) CompleteReroute(proactive bool) []Event {
	scale := 1.0
	if proactive {
		scale = proactiveRerouteScale
	}
	route := s.progress.Remainder(scale)
	s.rerouting = false
	if route == nil || len(route.Legs) == 0 {
		return nil
	}
	s.progress = RouteProgress{Route: route}
	s.instruction = -1

	events := []Event{
		RerouteCompletedMsg{Route: route, Proactive: proactive},
		ProgressMsg{Progress: s.progress},
	}
	if step := s.progress.CurrentStep(); step != nil && len(step.InstructionsDisplayedAlongStep) > 0 {
		s.instruction = 0
		events = append(events, InstructionPointMsg{Instruction: step.InstructionsDisplayedAlongStep[0], Progress: s.progress})
	}
	return events
}
