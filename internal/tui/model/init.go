package model

import (
	"fmt"
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

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "tap banner"),
		),
		SwipeLeft: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "preview next step"),
		),
		SwipeRight: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "preview previous step"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "step up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "step down"),
		),
		Select: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "preview selected step"),
		),
		Recenter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recenter map"),
		),
		ShowSteps: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show steps"),
		),
		ExternalDisplay: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle external display"),
		),
		Reroute: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "simulate reroute"),
		),
		ProactiveReroute: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "find faster route"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster simulation"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower simulation"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy steps"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// InitializeModel builds the model, the HUD coordinator and the simulator from
// the loaded configuration.
func InitializeModel(cfg TUIConfig) (*Model, error) {
	route := cfg.Route
	if route == nil {
		route = navigation.DemoRoute()
	}
	if err := route.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route %q: %w", route.Name, err)
	}

	hud := cfg.Config
	theme := design.NewTheme(cfg.ColorMode)
	formatter := navigation.NewDistanceFormatter(navigation.Units(hud.Display.Units), hud.Display.Locale)

	opts := coordinator.DefaultOptions()
	opts.Theme = theme
	opts.Formatter = formatter
	opts.Clock = cfg.Clock
	opts.Scale = hud.Animation.EffectiveScale()
	opts.FrameInterval = hud.Animation.FrameInterval
	opts.StepsOpen = hud.Animation.StepsOpen
	opts.StepsClose = hud.Animation.StepsClose
	opts.AuxiliaryFade = hud.Animation.AuxiliaryFade
	if hud.Status.RerouteHideDelay > 0 {
		opts.RerouteHideDelay = hud.Status.RerouteHideDelay
	}
	if hud.Status.FasterRouteDuration > 0 {
		opts.FasterRouteDuration = hud.Status.FasterRouteDuration
	}
	opts.SimulationAlways = hud.Simulation.Mode == config.SimulationAlways
	opts.SimulationSpeed = hud.Simulation.SpeedMultiplier

	intent := navigation.SimulationPoorGPS
	if hud.Simulation.Mode == config.SimulationAlways {
		intent = navigation.SimulationManual
	}

	m := &Model{
		CurrentAppMode:   ModeInitializing,
		DebugMode:        cfg.DebugMode,
		ColorMode:        cfg.ColorMode,
		Config:           hud,
		Theme:            theme,
		Formatter:        formatter,
		HUD:              coordinator.New(opts),
		Simulator:        navigation.NewSimulator(route, hud.Simulation.SpeedMultiplier, navigation.WithIntent(intent)),
		Route:            route,
		Clock:            cfg.Clock,
		Simulation:       hud.Simulation.Mode != config.SimulationNever,
		RerouteDelay:     DefaultRerouteDelay,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       cfg.LogChannel,
	}
	m.Help.ShowAll = true
	m.HUD.Attach(m)
	return m, nil
}

// ListenForLogEntriesCmd waits for the next log entry on ch.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// SimulationTickCmd schedules the next simulator step.
func SimulationTickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = config.DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SimulationTickMsg{Time: t}
	})
}

// AutoRerouteCmd schedules the next periodic reroute, if configured.
func AutoRerouteCmd(every time.Duration) tea.Cmd {
	if every <= 0 {
		return nil
	}
	return tea.Tick(every, func(time.Time) tea.Msg {
		return AutoRerouteMsg{}
	})
}

// StartEvents begins the simulation and returns the first engine events.
func (m *Model) StartEvents() []navigation.Event {
	m.LastTick = m.Now()
	return m.Simulator.Begin()
}

// Init implements tea.Model and starts the log listener and the simulator.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	if m.Simulation {
		cmds = append(cmds,
			SimulationTickCmd(m.Config.Simulation.TickInterval),
			AutoRerouteCmd(m.Config.Simulation.RerouteEvery),
		)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
