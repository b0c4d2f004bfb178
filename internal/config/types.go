package config

import "time"

// SimulationMode mirrors when the navigation engine simulates movement.
type SimulationMode string

const (
	SimulationAlways    SimulationMode = "always"
	SimulationOnPoorGPS SimulationMode = "onPoorGPS"
	SimulationNever     SimulationMode = "never"
)

// Units selects the distance system used by the banner.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// HUDConfig is the top-level configuration structure for navhud.
type HUDConfig struct {
	Animation  AnimationConfig  `yaml:"animation"`
	Status     StatusConfig     `yaml:"status"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// AnimationConfig controls panel transition timing.
type AnimationConfig struct {
	// Enabled is a pointer so an overlay file can switch animations off explicitly.
	Enabled       *bool         `yaml:"enabled,omitempty"`
	Scale         float64       `yaml:"scale,omitempty"`
	StepsOpen     time.Duration `yaml:"stepsOpen,omitempty"`
	StepsClose    time.Duration `yaml:"stepsClose,omitempty"`
	AuxiliaryFade time.Duration `yaml:"auxiliaryFade,omitempty"`
	FrameInterval time.Duration `yaml:"frameInterval,omitempty"`
}

// IsEnabled reports whether transitions animate. Unset means enabled.
func (a AnimationConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// EffectiveScale returns the duration multiplier, 0 when animations are disabled.
func (a AnimationConfig) EffectiveScale() float64 {
	if !a.IsEnabled() {
		return 0
	}
	if a.Scale <= 0 {
		return 1
	}
	return a.Scale
}

// StatusConfig controls status panel timings.
type StatusConfig struct {
	RerouteHideDelay    time.Duration `yaml:"rerouteHideDelay,omitempty"`
	FasterRouteDuration time.Duration `yaml:"fasterRouteDuration,omitempty"`
}

// SimulationConfig controls the built-in navigation simulator.
type SimulationConfig struct {
	Mode            SimulationMode `yaml:"mode,omitempty"`
	SpeedMultiplier int            `yaml:"speedMultiplier,omitempty"`
	TickInterval    time.Duration  `yaml:"tickInterval,omitempty"`
	RerouteEvery    time.Duration  `yaml:"rerouteEvery,omitempty"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	ColorMode string `yaml:"colorMode,omitempty"`
	Units     Units  `yaml:"units,omitempty"`
	Locale    string `yaml:"locale,omitempty"`
}

// LoggingConfig controls the log filter level.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}
