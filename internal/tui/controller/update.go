package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"navhud/internal/hud/anim"
	"navhud/internal/navigation"
	"navhud/internal/tui/model"
	"navhud/internal/tui/view"
	"navhud/pkg/logging"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update routes one message through the controller.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch is the central message routing function for the TUI.
// Navigation events, HUD animation frames and status timers all arrive here and
// are applied in order, so the HUD never sees two updates at once.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case anim.FrameMsg, spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg, model.SimulationTickMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.SimulationTickMsg:
		return handleSimulationTick(m, msg)

	case model.RerouteDoneMsg:
		cmds = append(cmds, applyEvents(m, m.Simulator.CompleteReroute(msg.Proactive))...)
		if msg.Proactive {
			cmds = append(cmds, m.SetStatusMessage("Switched to a faster route", model.StatusBarSuccess, 3*time.Second))
		}
		return m, tea.Batch(cmds...)

	case model.AutoRerouteMsg:
		cmds = append(cmds, startReroute(m, false), model.AutoRerouteCmd(m.Config.Simulation.RerouteEvery))
		return m, tea.Batch(cmds...)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		if cmd, handled := m.HUD.Update(msg); handled {
			return m, cmd
		}
		if m.DebugMode {
			LogDebug(m, controllerDispatchSubsystem, "Unhandled msg type in default case: %T", msg)
		}
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty || m.LogViewportLastWidth != m.LogViewport.Width {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode == model.ModeLogOverlay && m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// applyEvents feeds simulator events to the HUD in order. Arrival is handled
// by the controller.
func applyEvents(m *model.Model, events []navigation.Event) []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		if arrived, ok := ev.(navigation.ArrivedMsg); ok {
			cmds = append(cmds, handleArrived(m, arrived))
			continue
		}
		cmd, handled := m.HUD.Update(ev)
		if !handled {
			LogDebug(m, controllerDispatchSubsystem, "HUD ignored event %T", ev)
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func handleSimulationTick(m *model.Model, msg model.SimulationTickMsg) (*model.Model, tea.Cmd) {
	if !m.Simulation || m.Arrived || m.CurrentAppMode == model.ModeQuitting {
		return m, nil
	}
	elapsed := msg.Time.Sub(m.LastTick)
	if m.LastTick.IsZero() || elapsed < 0 {
		elapsed = 0
	}
	m.LastTick = msg.Time

	cmds := applyEvents(m, m.Simulator.Advance(elapsed))
	if !m.Arrived {
		cmds = append(cmds, model.SimulationTickCmd(m.Config.Simulation.TickInterval))
	}
	return m, tea.Batch(cmds...)
}

// startReroute pauses the simulator and completes the reroute after RerouteDelay.
func startReroute(m *model.Model, proactive bool) tea.Cmd {
	if m.Simulator.Rerouting() || m.Arrived || !m.Simulator.Running() {
		return nil
	}
	LogInfo(controllerSubsystem, "Rerouting (proactive=%t)", proactive)
	cmd, _ := m.HUD.Update(m.Simulator.BeginReroute())
	done := tea.Tick(m.RerouteDelay, func(time.Time) tea.Msg {
		return model.RerouteDoneMsg{Proactive: proactive}
	})
	return tea.Batch(cmd, done)
}

func handleArrived(m *model.Model, msg navigation.ArrivedMsg) tea.Cmd {
	if m.Arrived {
		return nil
	}
	m.Arrived = true
	name := ""
	if msg.Progress.Route != nil {
		name = msg.Progress.Route.Name
	}
	LogInfo(controllerSubsystem, "Arrived at the end of %q", name)

	cmds := applyEvents(m, m.Simulator.End())
	cmds = append(cmds, m.SetStatusMessage("You have arrived", model.StatusBarSuccess, 5*time.Second))
	return tea.Batch(cmds...)
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeMainDashboard
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Ending navigation..."
	if m.Simulator != nil && m.HUD != nil {
		applyEvents(m, m.Simulator.End())
		m.HUD.Detach()
	}
	return m, tea.Quit
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
