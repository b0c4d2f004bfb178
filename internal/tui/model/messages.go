package model

import (
	"time"

	"navhud/pkg/logging"
)

// ---- Simulation messages ----

// SimulationTickMsg advances the simulator.
type SimulationTickMsg struct {
	Time time.Time
}

// RerouteDoneMsg completes a reroute started by the user or the auto-reroute timer.
type RerouteDoneMsg struct {
	Proactive bool
}

// AutoRerouteMsg triggers the periodic reroute configured by simulation.rerouteEvery.
type AutoRerouteMsg struct{}

// ---- Logging ----

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}
