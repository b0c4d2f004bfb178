package navigation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRoute(t *testing.T) {
	route := DemoRoute()
	require.NotNil(t, route)
	assert.Equal(t, "demo-harbor-loop", route.ID)
	require.Len(t, route.Legs, 2)
	assert.Len(t, route.AllSteps(), 9)
	assert.InDelta(t, 420+1350+90+640+2800+5200+260, route.Distance(), 0.001)

	last, ok := route.Legs[0].Steps[1].LastInstruction()
	require.True(t, ok)
	assert.Equal(t, "Harbor Drive", last.Primary)
	require.NotNil(t, last.Sub)
	assert.Equal(t, "Quay Road", last.Sub.Primary)
}

func TestParseRoute_GeneratesIDs(t *testing.T) {
	route, err := ParseRoute([]byte(`
name: Short
legs:
  - steps:
      - name: A
        distance: 100
      - name: B
        distance: 0
`))
	require.NoError(t, err)
	assert.NotEmpty(t, route.ID)
	steps := route.AllSteps()
	require.Len(t, steps, 2)
	assert.NotEmpty(t, steps[0].ID)
	assert.NotEqual(t, steps[0].ID, steps[1].ID)
}

func TestParseRoute_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no legs", "name: x\n", "route has no legs"},
		{"empty leg", "legs:\n  - name: a\n", "leg 0 has no steps"},
		{"negative distance", "legs:\n  - steps:\n      - distance: -5\n", "negative distance"},
		{"duplicate ids", "legs:\n  - steps:\n      - id: a\n      - id: a\n", "duplicate step id"},
		{"bad yaml", "legs: [", "invalid route yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoute([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRoute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "route.yaml")
	require.NoError(t, os.WriteFile(path, demoRouteYAML, 0644))

	route, err := LoadRoute(path)
	require.NoError(t, err)
	assert.Equal(t, "Harbor loop", route.Name)

	_, err = LoadRoute(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read route file")
}

func TestRouteProgress_Queries(t *testing.T) {
	route := DemoRoute()
	p := RouteProgress{Route: route, LegIndex: 0, StepIndex: 1, DistanceTraveledOnStep: 350}

	assert.Equal(t, "elm-avenue", p.CurrentStep().ID)
	sp := p.CurrentStepProgress()
	assert.InDelta(t, 1000, sp.DistanceRemaining, 0.001)
	assert.Len(t, p.UpcomingSteps(), 3)
	assert.Len(t, p.RemainingLegs(), 1)
	assert.InDelta(t, 1000+90+640+2800+5200+260, p.DistanceRemaining(), 0.001)

	out := RouteProgress{Route: route, LegIndex: 5}
	assert.Nil(t, out.CurrentStep())
	assert.Zero(t, out.CurrentStepProgress().DistanceRemaining)
}

func TestRouteProgress_Remainder(t *testing.T) {
	route := DemoRoute()
	p := RouteProgress{Route: route, LegIndex: 0, StepIndex: 1, DistanceTraveledOnStep: 350}

	next := p.Remainder(1)
	require.NotNil(t, next)
	assert.NotEqual(t, route.ID, next.ID)
	require.Len(t, next.Legs, 2)
	assert.Len(t, next.Legs[0].Steps, 4)
	first := next.Legs[0].Steps[0]
	assert.Equal(t, "Elm Avenue", first.Name)
	assert.InDelta(t, 1000, first.Distance, 0.001)
	assert.InDelta(t, 1000, first.InstructionsDisplayedAlongStep[0].DistanceAlongStep, 0.001)
	assert.InDelta(t, 1350, route.Legs[0].Steps[1].Distance, 0.001, "source route is untouched")

	shorter := p.Remainder(0.5)
	assert.InDelta(t, p.DistanceRemaining()/2, shorter.Distance(), 0.001)
}

func TestRouteProgress_OnRoute(t *testing.T) {
	p := RouteProgress{Route: DemoRoute(), LegIndex: 0, StepIndex: 1, DistanceTraveledOnStep: 350}

	shortened := DemoRoute()
	shortened.Legs[0].Steps[1].Distance = 200

	tests := []struct {
		name      string
		progress  RouteProgress
		route     *Route
		wantStep  string
		wantTrav  float64
		wantFirst bool
	}{
		{
			name:     "route keeping the current step",
			progress: p,
			route:    DemoRoute(),
			wantStep: "elm-avenue",
			wantTrav: 350,
		},
		{
			name:     "traveled distance clamped to the step",
			progress: p,
			route:    shortened,
			wantStep: "elm-avenue",
			wantTrav: 200,
		},
		{
			name:      "rebuilt remainder starts at its first step",
			progress:  p,
			route:     p.Remainder(1),
			wantFirst: true,
		},
		{
			name:      "no previous progress",
			route:     DemoRoute(),
			wantStep:  "depart-main",
			wantFirst: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.progress.OnRoute(tt.route)
			assert.Same(t, tt.route, next.Route)
			if tt.wantFirst {
				assert.Zero(t, next.LegIndex)
				assert.Zero(t, next.StepIndex)
				assert.Zero(t, next.DistanceTraveledOnStep)
			}
			if tt.wantStep != "" {
				require.NotNil(t, next.CurrentStep())
				assert.Equal(t, tt.wantStep, next.CurrentStep().ID)
			}
			assert.InDelta(t, tt.wantTrav, next.DistanceTraveledOnStep, 0.001)
		})
	}
}

func TestRoute_Locate(t *testing.T) {
	route := DemoRoute()

	li, si, ok := route.Locate("quay-road")
	require.True(t, ok)
	assert.Equal(t, 0, li)
	assert.Equal(t, 3, si)

	_, _, ok = route.Locate("missing")
	assert.False(t, ok)
	_, _, ok = route.Locate("")
	assert.False(t, ok)
}

func TestStep_ActiveInstructionIndex(t *testing.T) {
	step := DemoRoute().Legs[0].Steps[0]
	assert.Equal(t, 0, step.ActiveInstructionIndex(420))
	assert.Equal(t, 0, step.ActiveInstructionIndex(151))
	assert.Equal(t, 1, step.ActiveInstructionIndex(150))
	assert.Equal(t, -1, step.ActiveInstructionIndex(500))

	var nilStep *Step
	_, ok := nilStep.LastInstruction()
	assert.False(t, ok)
}
