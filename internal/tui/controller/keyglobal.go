package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"navhud/internal/hud/coordinator"
	"navhud/internal/hud/steplist"
	"navhud/internal/tui/model"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses. Overlays get their keys first; the
// gesture keys stand in for taps and swipes on the banner.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		case key.Matches(keyMsg, m.Keys.Copy):
			return m, copyText(m, strings.Join(m.ActivityLog, "\n"), "Logs")
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Esc) {
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		}
		if !key.Matches(keyMsg, m.Keys.Help) {
			return m, nil
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeMainDashboard
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil
	case key.Matches(keyMsg, m.Keys.Esc):
		if m.HUD.StepList().State() == steplist.Open {
			return m, m.HUD.OnStepsViewDismissRequested()
		}
		return m, nil
	}

	if m.CurrentAppMode != model.ModeMainDashboard {
		return m, nil
	}

	// --- Banner gestures ----------------------------------------------------
	switch {
	case key.Matches(keyMsg, m.Keys.Tap):
		if m.InteractionBlocked {
			return m, nil
		}
		return m, m.HUD.OnPrimaryPanelTap()
	case key.Matches(keyMsg, m.Keys.SwipeLeft):
		if m.InteractionBlocked {
			return m, nil
		}
		return m, m.HUD.OnPrimaryPanelSwipe(coordinator.SwipeLeft)
	case key.Matches(keyMsg, m.Keys.SwipeRight):
		if m.InteractionBlocked {
			return m, nil
		}
		return m, m.HUD.OnPrimaryPanelSwipe(coordinator.SwipeRight)
	case key.Matches(keyMsg, m.Keys.Up):
		return m, moveOrSwipe(m, -1, coordinator.SwipeUp)
	case key.Matches(keyMsg, m.Keys.Down):
		return m, moveOrSwipe(m, 1, coordinator.SwipeDown)
	case key.Matches(keyMsg, m.Keys.Select):
		if m.InteractionBlocked {
			return m, nil
		}
		return m, m.HUD.SelectStep()
	case key.Matches(keyMsg, m.Keys.ShowSteps):
		if m.InteractionBlocked {
			return m, nil
		}
		return m, m.HUD.DisplayStepsTable()
	case key.Matches(keyMsg, m.Keys.Recenter):
		return m, m.HUD.OnMapRecentered()
	}

	// --- Simulation and host controls --------------------------------------
	switch {
	case key.Matches(keyMsg, m.Keys.ExternalDisplay):
		m.ExternalDisplay = !m.ExternalDisplay
		if m.ExternalDisplay {
			LogInfo(controllerSubsystem, "External display connected")
			return m, m.HUD.OnExternalDisplayConnected()
		}
		LogInfo(controllerSubsystem, "External display disconnected")
		return m, m.HUD.OnExternalDisplayDisconnected()
	case key.Matches(keyMsg, m.Keys.Reroute):
		return m, startReroute(m, false)
	case key.Matches(keyMsg, m.Keys.ProactiveReroute):
		return m, startReroute(m, true)
	case key.Matches(keyMsg, m.Keys.SpeedUp):
		return m, changeSpeed(m, 1)
	case key.Matches(keyMsg, m.Keys.SpeedDown):
		return m, changeSpeed(m, -1)
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copySteps(m)
	}
	return m, nil
}

// moveOrSwipe moves the step cursor while the list is open; otherwise the key
// is a vertical swipe on the banner.
func moveOrSwipe(m *model.Model, delta int, direction coordinator.SwipeDirection) tea.Cmd {
	if m.InteractionBlocked {
		return nil
	}
	if m.HUD.StepList().State() == steplist.Open {
		m.HUD.MoveStepCursor(delta)
		return nil
	}
	return m.HUD.OnPrimaryPanelSwipe(direction)
}

func changeSpeed(m *model.Model, delta int) tea.Cmd {
	if !m.Simulation {
		return m.SetStatusMessage("Simulation is off", model.StatusBarWarning, 2*time.Second)
	}
	m.Simulator.SetSpeed(m.Simulator.Speed() + delta)
	speed := m.Simulator.Speed()
	LogDebug(m, controllerSubsystem, "Simulation speed %d", speed)
	return tea.Batch(
		m.HUD.SetSimulationSpeed(speed),
		m.SetStatusMessage(fmt.Sprintf("Simulation speed %d×", speed), model.StatusBarInfo, 2*time.Second),
	)
}

// copySteps copies the remaining steps, from the open list when there is one.
func copySteps(m *model.Model) tea.Cmd {
	var text string
	if v := m.HUD.StepList().View(); v != nil {
		text = v.Text()
	} else if progress, ok := m.HUD.Progress(); ok {
		text = steplist.NewStepsView(progress, m.Theme, m.Formatter).Text()
	}
	if text == "" {
		return m.SetStatusMessage("No steps to copy", model.StatusBarWarning, 3*time.Second)
	}
	return copyText(m, text, "Steps")
}

func copyText(m *model.Model, text, what string) tea.Cmd {
	if err := writeClipboard(text); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy %s", strings.ToLower(what))
		return m.SetStatusMessage(fmt.Sprintf("Copy %s failed", strings.ToLower(what)), model.StatusBarError, 3*time.Second)
	}
	return m.SetStatusMessage(what+" copied to clipboard", model.StatusBarSuccess, 3*time.Second)
}
