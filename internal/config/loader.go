package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/navhud"
	projectConfigDir = ".navhud"
	configFileName   = "config.yaml"
)

// LoadConfig loads the navhud configuration by layering default, user, and project settings.
func LoadConfig() (HUDConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return HUDConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return HUDConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	return config, nil
}

// LoadConfigFile layers a single explicit file over the defaults.
func LoadConfigFile(path string) (HUDConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return HUDConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a HUDConfig from a YAML file.
func loadConfigFromFile(filePath string) (HUDConfig, error) {
	var config HUDConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return HUDConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return HUDConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay HUDConfig) HUDConfig {
	merged := base

	if overlay.Animation.Enabled != nil {
		enabled := *overlay.Animation.Enabled
		merged.Animation.Enabled = &enabled
	}
	if overlay.Animation.Scale > 0 {
		merged.Animation.Scale = overlay.Animation.Scale
	}
	mergeDuration(&merged.Animation.StepsOpen, overlay.Animation.StepsOpen)
	mergeDuration(&merged.Animation.StepsClose, overlay.Animation.StepsClose)
	mergeDuration(&merged.Animation.AuxiliaryFade, overlay.Animation.AuxiliaryFade)
	mergeDuration(&merged.Animation.FrameInterval, overlay.Animation.FrameInterval)

	mergeDuration(&merged.Status.RerouteHideDelay, overlay.Status.RerouteHideDelay)
	mergeDuration(&merged.Status.FasterRouteDuration, overlay.Status.FasterRouteDuration)

	if overlay.Simulation.Mode != "" {
		merged.Simulation.Mode = overlay.Simulation.Mode
	}
	if overlay.Simulation.SpeedMultiplier > 0 {
		merged.Simulation.SpeedMultiplier = overlay.Simulation.SpeedMultiplier
	}
	mergeDuration(&merged.Simulation.TickInterval, overlay.Simulation.TickInterval)
	mergeDuration(&merged.Simulation.RerouteEvery, overlay.Simulation.RerouteEvery)

	if overlay.Display.ColorMode != "" {
		merged.Display.ColorMode = overlay.Display.ColorMode
	}
	if overlay.Display.Units != "" {
		merged.Display.Units = overlay.Display.Units
	}
	if overlay.Display.Locale != "" {
		merged.Display.Locale = overlay.Display.Locale
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

func mergeDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
