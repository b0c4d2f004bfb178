package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"navhud/internal/hud/coordinator"
	"navhud/internal/hud/preview"
	"navhud/internal/hud/steplist"
	"navhud/internal/navigation"
	"navhud/internal/tui/model"
)

const delegateSubsystem = "HUDDelegate"

// newDelegate answers the coordinator's notifications: swipes page through the
// current leg in preview, a selected row previews that step.
func newDelegate(m *model.Model) *coordinator.Delegate {
	return &coordinator.Delegate{
		DidSwipe: func(direction coordinator.SwipeDirection) tea.Cmd {
			switch direction {
			case coordinator.SwipeLeft:
				return previewNeighbor(m, 1)
			case coordinator.SwipeRight:
				return previewNeighbor(m, -1)
			default:
				LogDebug(m, delegateSubsystem, "Ignoring %s swipe", direction)
				return nil
			}
		},
		DidSelect: func(legIndex, stepIndex int, cell steplist.Cell) tea.Cmd {
			LogDebug(m, delegateSubsystem, "Selected row %d %q", cell.Row, cell.Text)
			return previewStep(m, legIndex, stepIndex)
		},
		WillDisplaySteps: func(v *steplist.StepsView) {
			LogDebug(m, delegateSubsystem, "Opening step list with %d rows", len(v.Rows()))
		},
		DidDisplaySteps: func(v *steplist.StepsView) {
			LogInfo(delegateSubsystem, "Step list open")
		},
		WillDismissSteps: func(v *steplist.StepsView) {
			LogDebug(m, delegateSubsystem, "Closing step list")
		},
		DidDismissSteps: func(v *steplist.StepsView) {
			LogInfo(delegateSubsystem, "Step list closed")
		},
	}
}

// previewNeighbor previews the step delta positions away from the previewed one,
// or from the current step when nothing is previewed yet. Swiping back from the
// live banner does nothing.
func previewNeighbor(m *model.Model, delta int) tea.Cmd {
	progress, ok := m.HUD.Progress()
	if !ok {
		return nil
	}
	leg := progress.CurrentLeg()
	if leg == nil {
		return nil
	}

	index := progress.StepIndex
	if session, active := m.HUD.Previewer().Session(); active {
		index = session.CurrentIndex
	} else if delta < 0 {
		return nil
	}

	next := index + delta
	if next < 0 || next >= len(leg.Steps) {
		LogDebug(m, delegateSubsystem, "No step at %d in leg %d", next, progress.LegIndex)
		return nil
	}
	return m.HUD.Preview(stepRequest(leg.Steps, leg.Steps[next]))
}

func previewStep(m *model.Model, legIndex, stepIndex int) tea.Cmd {
	progress, ok := m.HUD.Progress()
	if !ok || progress.Route == nil {
		return nil
	}
	if legIndex < 0 || legIndex >= len(progress.Route.Legs) {
		return nil
	}
	steps := progress.Route.Legs[legIndex].Steps
	if stepIndex < 0 || stepIndex >= len(steps) {
		return nil
	}
	return m.HUD.Preview(stepRequest(steps, steps[stepIndex]))
}

func stepRequest(steps []*navigation.Step, step *navigation.Step) preview.Request {
	return preview.Request{
		Override:     step,
		ManeuverStep: step,
		Distance:     step.Distance,
		Steps:        steps,
	}
}
