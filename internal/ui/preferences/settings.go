package preferences

import (
	"time"

	"stopwatch/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	TickInterval time.Duration

	WindowWidth  float32
	WindowHeight float32
	TrayEnabled  bool
}

// DefaultSettings returns default settings for the stopwatch.
func DefaultSettings() Settings {
	return Settings{
		TickInterval: model.DefaultTickInterval,
		WindowWidth:  320,
		WindowHeight: 420,
		TrayEnabled:  true,
	}
}

// StopwatchConfig converts settings to StopwatchConfig.
func (settings Settings) StopwatchConfig() model.StopwatchConfig {
	return model.StopwatchConfig{
		TickInterval: settings.TickInterval,
	}.Normalized()
}
