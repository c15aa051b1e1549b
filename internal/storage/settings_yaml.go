package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stopwatch/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	TickIntervalMillis int   `yaml:"tick_interval_ms"`
	WindowWidth        int   `yaml:"window_width"`
	WindowHeight       int   `yaml:"window_height"`
	TrayEnabled        *bool `yaml:"tray_enabled"`
}

// LoadSettings reads user preferences from the app's YAML file.
// If the file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to the app's YAML file.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettingsFile reads preferences from configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes preferences to configPath, creating its directory.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	trayEnabled := settings.TrayEnabled
	fileData := yamlSettings{
		TickIntervalMillis: int(settings.TickInterval / time.Millisecond),
		WindowWidth:        int(settings.WindowWidth),
		WindowHeight:       int(settings.WindowHeight),
		TrayEnabled:        &trayEnabled,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.WindowWidth > 0 {
		settings.WindowWidth = float32(fileData.WindowWidth)
	}
	if fileData.WindowHeight > 0 {
		settings.WindowHeight = float32(fileData.WindowHeight)
	}
	if fileData.TrayEnabled != nil {
		settings.TrayEnabled = *fileData.TrayEnabled
	}
}
