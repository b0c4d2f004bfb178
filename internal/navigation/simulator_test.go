package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	return NewSimulator(DemoRoute(), 1, WithBaseSpeed(100))
}

func instructionEvents(events []Event) []InstructionPointMsg {
	var out []InstructionPointMsg
	for _, e := range events {
		if ip, ok := e.(InstructionPointMsg); ok {
			out = append(out, ip)
		}
	}
	return out
}

func TestSimulator_Begin(t *testing.T) {
	sim := newTestSimulator()
	events := sim.Begin()

	require.Len(t, events, 4)
	assert.Equal(t, SimulationWillBegin, events[0].(SimulationMsg).Change.Phase)
	assert.Equal(t, SimulationDidBegin, events[1].(SimulationMsg).Change.Phase)
	assert.IsType(t, ProgressMsg{}, events[2])
	assert.Equal(t, "Elm Avenue", events[3].(InstructionPointMsg).Instruction.Primary)
	assert.True(t, sim.Running())

	assert.Nil(t, sim.Begin(), "second begin is a no-op")
}

func TestSimulator_AdvanceCrossesInstructionPoints(t *testing.T) {
	sim := newTestSimulator()
	sim.Begin()

	events := sim.Advance(time.Second)
	require.Len(t, events, 1)
	assert.InDelta(t, 100, events[0].(ProgressMsg).Progress.DistanceTraveledOnStep, 0.001)

	events = sim.Advance(2 * time.Second)
	ips := instructionEvents(events)
	require.Len(t, ips, 1)
	assert.True(t, ips[0].Instruction.HasLanes(), "second instruction carries lane guidance")

	events = sim.Advance(2 * time.Second)
	ips = instructionEvents(events)
	require.Len(t, ips, 1)
	assert.Equal(t, "Harbor Drive", ips[0].Instruction.Primary)
	assert.Equal(t, 1, sim.Progress().StepIndex)
	assert.InDelta(t, 80, sim.Progress().DistanceTraveledOnStep, 0.001)
}

func TestSimulator_SpeedMultiplier(t *testing.T) {
	sim := newTestSimulator()
	sim.SetSpeed(3)
	sim.Begin()
	sim.Advance(time.Second)
	assert.InDelta(t, 300, sim.Progress().DistanceTraveledOnStep, 0.001)

	sim.SetSpeed(0)
	assert.Equal(t, 1, sim.Speed())
	sim.SetSpeed(100)
	assert.Equal(t, 16, sim.Speed())
}

func TestSimulator_NoMovementWhenStopped(t *testing.T) {
	sim := newTestSimulator()
	assert.Nil(t, sim.Advance(time.Second))

	sim.Begin()
	events := sim.End()
	require.Len(t, events, 2)
	assert.Equal(t, SimulationWillEnd, events[0].(SimulationMsg).Change.Phase)
	assert.Nil(t, sim.Advance(time.Second))
	assert.Nil(t, sim.End())
}

func TestSimulator_Arrival(t *testing.T) {
	sim := newTestSimulator()
	sim.Begin()

	events := sim.Advance(10 * time.Minute)
	require.NotEmpty(t, events)
	assert.IsType(t, ArrivedMsg{}, events[len(events)-1])
	assert.True(t, sim.Arrived())
	assert.Equal(t, 1, sim.Progress().LegIndex)
	assert.Zero(t, sim.Progress().DistanceRemaining())
	assert.Nil(t, sim.Advance(time.Second))
}

func TestSimulator_Reroute(t *testing.T) {
	sim := newTestSimulator()
	sim.Begin()
	sim.Advance(5 * time.Second)
	before := sim.Progress().DistanceRemaining()
	oldRoute := sim.Progress().Route

	started := sim.BeginReroute()
	assert.True(t, sim.Rerouting())
	assert.Greater(t, started.Location.Latitude, 52.52)
	assert.Nil(t, sim.Advance(time.Second), "paused while rerouting")

	events := sim.CompleteReroute(true)
	require.GreaterOrEqual(t, len(events), 2)
	done := events[0].(RerouteCompletedMsg)
	assert.True(t, done.Proactive)
	assert.NotSame(t, oldRoute, done.Route)
	assert.False(t, sim.Rerouting())
	assert.InDelta(t, before*proactiveRerouteScale, sim.Progress().DistanceRemaining(), 0.001)
	assert.Len(t, instructionEvents(events), 1)
}
