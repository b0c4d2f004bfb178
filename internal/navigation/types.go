package navigation

import (
	"math"
	"time"
)

// ManeuverType is the kind of action the driver takes at a maneuver point.
type ManeuverType string

const (
	ManeuverDepart     ManeuverType = "depart"
	ManeuverTurn       ManeuverType = "turn"
	ManeuverContinue   ManeuverType = "continue"
	ManeuverMerge      ManeuverType = "merge"
	ManeuverFork       ManeuverType = "fork"
	ManeuverRoundabout ManeuverType = "roundabout"
	ManeuverArrive     ManeuverType = "arrive"
)

// ManeuverDirection qualifies a maneuver or lane indication.
type ManeuverDirection string

const (
	DirectionStraight    ManeuverDirection = "straight"
	DirectionLeft        ManeuverDirection = "left"
	DirectionRight       ManeuverDirection = "right"
	DirectionSlightLeft  ManeuverDirection = "slight left"
	DirectionSlightRight ManeuverDirection = "slight right"
	DirectionSharpLeft   ManeuverDirection = "sharp left"
	DirectionSharpRight  ManeuverDirection = "sharp right"
	DirectionUTurn       ManeuverDirection = "uturn"
)

type Maneuver struct {
	Type      ManeuverType      `yaml:"type"`
	Direction ManeuverDirection `yaml:"direction,omitempty"`
}

// Lane is one lane of lane guidance. Valid lanes lead to the upcoming maneuver.
type Lane struct {
	Indications []ManeuverDirection `yaml:"indications"`
	Valid       bool                `yaml:"valid"`
}

// VisualInstruction is what the banner shows for an upcoming maneuver.
type VisualInstruction struct {
	Primary   string   `yaml:"primary"`
	Secondary string   `yaml:"secondary,omitempty"`
	Maneuver  Maneuver `yaml:"maneuver"`
	Lanes     []Lane   `yaml:"lanes,omitempty"`
	// Sub describes a maneuver that follows closely after this one.
	Sub *VisualInstruction `yaml:"sub,omitempty"`
	// DistanceAlongStep is the remaining distance on the step, in meters, at which
	// the instruction becomes active.
	DistanceAlongStep float64 `yaml:"distanceAlongStep"`
}

// IsEmpty reports whether the instruction has nothing to display.
func (v VisualInstruction) IsEmpty() bool {
	return v.Primary == "" && v.Maneuver.Type == ""
}

// HasLanes reports whether any lane guidance is attached.
func (v VisualInstruction) HasLanes() bool {
	return len(v.Lanes) > 0
}

type Step struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Instruction string        `yaml:"instruction"`
	Maneuver    Maneuver      `yaml:"maneuver"`
	Distance    float64       `yaml:"distance"`
	Duration    time.Duration `yaml:"duration"`

	InstructionsDisplayedAlongStep []VisualInstruction `yaml:"instructions,omitempty"`
}

// LastInstruction returns the final display-along-step instruction, the one shown
// right before the maneuver.
func (s *Step) LastInstruction() (VisualInstruction, bool) {
	if s == nil || len(s.InstructionsDisplayedAlongStep) == 0 {
		return VisualInstruction{}, false
	}
	return s.InstructionsDisplayedAlongStep[len(s.InstructionsDisplayedAlongStep)-1], true
}

// ActiveInstructionIndex returns the index of the instruction that is active with
// remaining meters left on the step, or -1 if none has been reached yet.
func (s *Step) ActiveInstructionIndex(remaining float64) int {
	idx := -1
	for i, inst := range s.InstructionsDisplayedAlongStep {
		if inst.DistanceAlongStep >= remaining {
			idx = i
		}
	}
	return idx
}

type Leg struct {
	Name  string  `yaml:"name"`
	Steps []*Step `yaml:"steps"`
}

type Route struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Legs []*Leg `yaml:"legs"`
}

// Distance is the total length of the route in meters.
func (r *Route) Distance() float64 {
	if r == nil {
		return 0
	}
	var total float64
	for _, leg := range r.Legs {
		for _, step := range leg.Steps {
			total += step.Distance
		}
	}
	return total
}

// AllSteps flattens the route in travel order.
func (r *Route) AllSteps() []*Step {
	if r == nil {
		return nil
	}
	var steps []*Step
	for _, leg := range r.Legs {
		steps = append(steps, leg.Steps...)
	}
	return steps
}

// Locate returns the leg and step indices of the step with id.
func (r *Route) Locate(id string) (legIndex, stepIndex int, ok bool) {
	if r == nil || id == "" {
		return 0, 0, false
	}
	for li, leg := range r.Legs {
		for si, step := range leg.Steps {
			if step != nil && step.ID == id {
				return li, si, true
			}
		}
	}
	return 0, 0, false
}

// OnRoute carries p over to route. When route still contains the current step
// the position along it is kept, otherwise progress starts at the beginning of
// route.
func (p RouteProgress) OnRoute(route *Route) RouteProgress {
	next := RouteProgress{Route: route}
	step := p.CurrentStep()
	if step == nil {
		return next
	}
	li, si, ok := route.Locate(step.ID)
	if !ok {
		return next
	}
	next.LegIndex, next.StepIndex = li, si
	next.DistanceTraveledOnStep = math.Min(p.DistanceTraveledOnStep, route.Legs[li].Steps[si].Distance)
	return next
}

// StepProgress describes travel along the current step.
type StepProgress struct {
	Step              *Step
	DistanceTraveled  float64
	DistanceRemaining float64
}

// RouteProgress is a snapshot of navigation progress along a route.
type RouteProgress struct {
	Route                  *Route
	LegIndex               int
	StepIndex              int
	DistanceTraveledOnStep float64
}

// CurrentLeg returns the leg being traveled, nil if the indices are out of range.
func (p RouteProgress) CurrentLeg() *Leg {
	if p.Route == nil || p.LegIndex < 0 || p.LegIndex >= len(p.Route.Legs) {
		return nil
	}
	return p.Route.Legs[p.LegIndex]
}

// CurrentStep returns the step being traveled.
func (p RouteProgress) CurrentStep() *Step {
	leg := p.CurrentLeg()
	if leg == nil || p.StepIndex < 0 || p.StepIndex >= len(leg.Steps) {
		return nil
	}
	return leg.Steps[p.StepIndex]
}

func (p RouteProgress) CurrentStepProgress() StepProgress {
	step := p.CurrentStep()
	if step == nil {
		return StepProgress{}
	}
	remaining := step.Distance - p.DistanceTraveledOnStep
	if remaining < 0 {
		remaining = 0
	}
	return StepProgress{
		Step:              step,
		DistanceTraveled:  p.DistanceTraveledOnStep,
		DistanceRemaining: remaining,
	}
}

// UpcomingSteps returns the steps of the current leg after the current one.
func (p RouteProgress) UpcomingSteps() []*Step {
	leg := p.CurrentLeg()
	if leg == nil || p.StepIndex+1 >= len(leg.Steps) {
		return nil
	}
	return leg.Steps[p.StepIndex+1:]
}

// RemainingLegs returns the legs after the current one.
func (p RouteProgress) RemainingLegs() []*Leg {
	if p.Route == nil || p.LegIndex+1 >= len(p.Route.Legs) {
		return nil
	}
	return p.Route.Legs[p.LegIndex+1:]
}

// DistanceRemaining is the distance left on the whole route.
func (p RouteProgress) DistanceRemaining() float64 {
	total := p.CurrentStepProgress().DistanceRemaining
	for _, step := range p.UpcomingSteps() {
		total += step.Distance
	}
	for _, leg := range p.RemainingLegs() {
		for _, step := range leg.Steps {
			total += step.Distance
		}
	}
	return total
}

type Location struct {
	Latitude  float64
	Longitude float64
}

// SimulationIntent says why the engine simulates movement.
type SimulationIntent int

const (
	SimulationManual SimulationIntent = iota
	SimulationPoorGPS
)

func (i SimulationIntent) String() string {
	switch i {
	case SimulationManual:
		return "manual"
	case SimulationPoorGPS:
		return "poorGPS"
	default:
		return "unknown"
	}
}

// SimulationPhase is the lifecycle point a SimulationChange reports.
type SimulationPhase int

const (
	SimulationWillBegin SimulationPhase = iota
	SimulationDidBegin
	SimulationWillEnd
	SimulationDidEnd
)

type SimulationChange struct {
	Intent SimulationIntent
	Phase  SimulationPhase
	Speed  int
}
