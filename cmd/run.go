package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"navhud/internal/config"
	"navhud/internal/navigation"
	"navhud/internal/tui/controller"
	"navhud/internal/tui/design"
	"navhud/internal/tui/model"
	"navhud/pkg/logging"
)

var (
	runRouteFile    string
	runConfigFile   string
	runDebugTUI     bool
	runNoAnimations bool
	runSpeed        int
	runColorMode    string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the navigation HUD",
		Long: `Starts the interactive HUD on a route. Without --route the built-in
demo route is used.

Configuration is layered: defaults, then ~/.config/navhud/config.yaml, then
./.navhud/config.yaml. --config replaces the file lookup with one explicit file.
Flags override whatever was loaded.`,
		Args: cobra.NoArgs,
		RunE: runHUD,
	}

	cmd.Flags().StringVar(&runRouteFile, "route", "", "Route definition YAML file")
	cmd.Flags().StringVar(&runConfigFile, "config", "", "Configuration file (skips the default lookup)")
	cmd.Flags().BoolVar(&runDebugTUI, "debug-tui", false, "Enable TUI debug mode from startup (shows extra logs)")
	cmd.Flags().BoolVar(&runNoAnimations, "no-animations", false, "Apply panel transitions instantly")
	cmd.Flags().IntVar(&runSpeed, "speed", 1, "Simulation speed multiplier (1-16)")
	cmd.Flags().StringVar(&runColorMode, "color-mode", "", "Color mode: auto, dark, light or ascii")
	return cmd
}

func runHUD(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(runConfigFile)
	if err != nil {
		return err
	}
	applyRunFlags(cmd, &cfg)

	var route *navigation.Route
	if runRouteFile != "" {
		route, err = navigation.LoadRoute(runRouteFile)
		if err != nil {
			return err
		}
	}

	colorMode := design.ParseColorMode(cfg.Display.ColorMode)
	design.Initialize(colorMode)

	level := logging.ParseLevel(cfg.Logging.Level)
	if runDebugTUI {
		level = logging.LevelDebug
	}
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		DebugMode:  runDebugTUI,
		ColorMode:  colorMode,
		Config:     cfg,
		Route:      route,
		LogChannel: logChan,
	})
	if err != nil {
		return err
	}

	logging.Info("CLI", "Starting HUD (simulation %s, speed %d×)", cfg.Simulation.Mode, cfg.Simulation.SpeedMultiplier)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running navhud TUI: %w", err)
	}
	return nil
}

func loadRunConfig(path string) (config.HUDConfig, error) {
	if path != "" {
		return config.LoadConfigFile(path)
	}
	return config.LoadConfig()
}

// applyRunFlags overrides loaded configuration with flags set on the command line.
func applyRunFlags(cmd *cobra.Command, cfg *config.HUDConfig) {
	flags := cmd.Flags()
	if flags.Changed("no-animations") && runNoAnimations {
		disabled := false
		cfg.Animation.Enabled = &disabled
	}
	if flags.Changed("speed") {
		cfg.Simulation.SpeedMultiplier = runSpeed
	}
	if flags.Changed("color-mode") {
		cfg.Display.ColorMode = runColorMode
	}
	if cfg.Simulation.SpeedMultiplier < 1 || cfg.Simulation.SpeedMultiplier > 16 {
		fmt.Fprintf(os.Stderr, "Warning: speed %d is outside 1-16 and will be clamped\n", cfg.Simulation.SpeedMultiplier)
	}
}
