package model

import "time"

// DefaultTickInterval is the step added to the elapsed time on every tick.
const DefaultTickInterval = 10 * time.Millisecond

// StopwatchConfig contains runtime settings for the stopwatch core.
type StopwatchConfig struct {
	TickInterval time.Duration
}

// Normalized returns a copy with invalid values replaced by defaults.
func (config StopwatchConfig) Normalized() StopwatchConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	return config
}
