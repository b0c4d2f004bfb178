package config

import "time"

// Default transition and status timings.
const (
	DefaultStepsOpen           = 350 * time.Millisecond
	DefaultStepsClose          = 350 * time.Millisecond
	DefaultAuxiliaryFade       = 200 * time.Millisecond
	DefaultFrameInterval       = 33 * time.Millisecond
	DefaultRerouteHideDelay    = 2 * time.Second
	DefaultFasterRouteDuration = 3 * time.Second
	DefaultTickInterval        = 200 * time.Millisecond
)

// GetDefaultConfig returns the configuration used when no files are present.
func GetDefaultConfig() HUDConfig {
	enabled := true
	return HUDConfig{
		Animation: AnimationConfig{
			Enabled:       &enabled,
			Scale:         1,
			StepsOpen:     DefaultStepsOpen,
			StepsClose:    DefaultStepsClose,
			AuxiliaryFade: DefaultAuxiliaryFade,
			FrameInterval: DefaultFrameInterval,
		},
		Status: StatusConfig{
			RerouteHideDelay:    DefaultRerouteHideDelay,
			FasterRouteDuration: DefaultFasterRouteDuration,
		},
		Simulation: SimulationConfig{
			Mode:            SimulationAlways,
			SpeedMultiplier: 1,
			TickInterval:    DefaultTickInterval,
		},
		Display: DisplayConfig{
			ColorMode: "auto",
			Units:     UnitsMetric,
			Locale:    "en-US",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
