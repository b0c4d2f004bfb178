package navigation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed routes/demo.yaml
var demoRouteYAML []byte

// DemoRoute returns the built-in route used when no route file is given.
func DemoRoute() *Route {
	route, err := ParseRoute(demoRouteYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded demo route is invalid: %v", err))
	}
	return route
}

// LoadRoute reads a route definition from a YAML file.
func LoadRoute(path string) (*Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file %s: %w", path, err)
	}
	route, err := ParseRoute(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load route %s: %w", path, err)
	}
	return route, nil
}

// ParseRoute decodes and validates a YAML route. Missing route and step
// identifiers are generated.
func ParseRoute(data []byte) (*Route, error) {
	var route Route
	if err := yaml.Unmarshal(data, &route); err != nil {
		return nil, fmt.Errorf("invalid route yaml: %w", err)
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if route.ID == "" {
		route.ID = uuid.NewString()
	}
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			if step.ID == "" {
				step.ID = uuid.NewString()
			}
		}
	}
	return &route, nil
}

// Validate checks the structural rules a route must satisfy.
func (r *Route) Validate() error {
	if len(r.Legs) == 0 {
		return errors.New("route has no legs")
	}
	seen := make(map[string]bool)
	for li, leg := range r.Legs {
		if leg == nil || len(leg.Steps) == 0 {
			return fmt.Errorf("leg %d has no steps", li)
		}
		for si, step := range leg.Steps {
			if step == nil {
				return fmt.Errorf("leg %d step %d is empty", li, si)
			}
			if step.Distance < 0 {
				return fmt.Errorf("leg %d step %d has negative distance %.1f", li, si, step.Distance)
			}
			if step.ID != "" {
				if seen[step.ID] {
					return fmt.Errorf("duplicate step id %q", step.ID)
				}
				seen[step.ID] = true
			}
		}
	}
	return nil
}

// Remainder builds a new route starting at the given progress. The current step is
// shortened by the distance already traveled; scale shrinks every remaining step
// (used for proactive reroutes that found a shorter path).
func (p RouteProgress) Remainder(scale float64) *Route {
	if p.Route == nil {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}

	next := &Route{ID: uuid.NewString(), Name: p.Route.Name}
	for li := p.LegIndex; li < len(p.Route.Legs); li++ {
		src := p.Route.Legs[li]
		leg := &Leg{Name: src.Name}
		start := 0
		if li == p.LegIndex {
			start = p.StepIndex
		}
		for si := start; si < len(src.Steps); si++ {
			step := *src.Steps[si]
			step.ID = uuid.NewString()
			if li == p.LegIndex && si == p.StepIndex {
				step.Distance -= p.DistanceTraveledOnStep
				if step.Distance < 0 {
					step.Distance = 0
				}
			}
			step.Distance *= scale
			step.Duration = scaleDuration(step.Duration, scale)
			step.InstructionsDisplayedAlongStep = clampInstructions(src.Steps[si].InstructionsDisplayedAlongStep, step.Distance)
			leg.Steps = append(leg.Steps, &step)
		}
		if len(leg.Steps) > 0 {
			next.Legs = append(next.Legs, leg)
		}
	}
	return next
}

func clampInstructions(in []VisualInstruction, distance float64) []VisualInstruction {
	if len(in) == 0 {
		return nil
	}
	out := make([]VisualInstruction, len(in))
	copy(out, in)
	for i := range out {
		if out[i].DistanceAlongStep > distance {
			out[i].DistanceAlongStep = distance
		}
	}
	return out
}

func scaleDuration(d time.Duration, scale float64) time.Duration {
	return time.Duration(float64(d) * scale)
}
