package stopwatch

import "stopwatch/internal/core/model"

// Stopwatch is the application context built once at startup.
type Stopwatch struct {
	Timer      *Timer
	History    *History
	Controller *Controller
}

// New creates a stopped stopwatch with an empty history.
func New(config model.StopwatchConfig, scheduler Scheduler) *Stopwatch {
	timer := NewTimer(config, scheduler)
	history := NewHistory()
	return &Stopwatch{
		Timer:      timer,
		History:    history,
		Controller: NewController(timer, history),
	}
}
