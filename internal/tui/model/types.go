package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"navhud/internal/config"
	"navhud/internal/hud/coordinator"
	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMainDashboard
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	// DefaultRerouteDelay is how long a simulated reroute takes to find a route.
	DefaultRerouteDelay = 1500 * time.Millisecond
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Tap              key.Binding
	SwipeLeft        key.Binding
	SwipeRight       key.Binding
	Up               key.Binding
	Down             key.Binding
	Select           key.Binding
	Recenter         key.Binding
	ShowSteps        key.Binding
	ExternalDisplay  key.Binding
	Reroute          key.Binding
	ProactiveReroute key.Binding
	SpeedUp          key.Binding
	SpeedDown        key.Binding
	Copy             key.Binding
	ToggleLog        key.Binding
	Help             key.Binding
	ToggleDebug      key.Binding
	Esc              key.Binding
	Quit             key.Binding
}

// FullHelp returns bindings for the help overlay, one column per slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.SwipeLeft, k.SwipeRight, k.Up, k.Down, k.Select},
		{k.Recenter, k.ShowSteps, k.ExternalDisplay, k.Reroute, k.ProactiveReroute, k.SpeedUp, k.SpeedDown},
		{k.Copy, k.ToggleLog, k.Help, k.ToggleDebug, k.Esc, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.SwipeLeft, k.Help, k.Quit}
}

// TUIConfig carries everything the program needs to build its model.
type TUIConfig struct {
	DebugMode  bool
	ColorMode  design.ColorMode
	Config     config.HUDConfig
	Route      *navigation.Route
	LogChannel <-chan logging.LogEntry
	// Clock replaces time.Now for animations and the simulator tick.
	Clock func() time.Time
}

// Model is the state of the navigation screen hosting the HUD.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	ColorMode       design.ColorMode
	QuittingMessage string

	// Navigation
	Config    config.HUDConfig
	Theme     *design.Theme
	Formatter navigation.DistanceFormatter
	HUD       *coordinator.Coordinator
	Simulator *navigation.Simulator
	Route     *navigation.Route
	Clock     func() time.Time

	// Simulation is false in "never" mode; the route is shown but nothing moves.
	Simulation         bool
	LastTick           time.Time
	RerouteDelay       time.Duration
	InteractionBlocked bool
	ExternalDisplay    bool
	Arrived            bool

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SetInteractionBlocked is called by the HUD while blocking transitions run.
func (m *Model) SetInteractionBlocked(blocked bool) {
	m.InteractionBlocked = blocked
}

// Now returns the model clock.
func (m *Model) Now() time.Time {
	if m.Clock == nil {
		return time.Now()
	}
	return m.Clock()
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// RemainingDistance is the distance left on the route, formatted.
func (m *Model) RemainingDistance() string {
	progress, ok := m.HUD.Progress()
	if !ok {
		return ""
	}
	return m.Formatter.Format(progress.DistanceRemaining())
}
