// Package stopwatch holds the timer and lap history state and the controller
// that drives them.
//
// Everything here runs on the event loop goroutine: mutating methods must be
// called from work posted to the loop.
package stopwatch

import (
	"time"

	"stopwatch/internal/core/model"
	"stopwatch/internal/core/reactor"
)

// Cancelable is a scheduled job that can be revoked.
type Cancelable = interface{ Cancel() }

// Scheduler runs a callback repeatedly until the returned task is cancelled.
type Scheduler interface {
	Every(interval time.Duration, run func()) Cancelable
}

// Timer tracks elapsed time and whether it is advancing.
type Timer struct {
	reactor.Observable

	scheduler Scheduler
	interval  time.Duration
	next      time.Duration
	elapsed   time.Duration
	running   bool
	task      Cancelable
}

// NewTimer creates a stopped timer at zero.
func NewTimer(config model.StopwatchConfig, scheduler Scheduler) *Timer {
	config = config.Normalized()
	return &Timer{
		scheduler: scheduler,
		interval:  config.TickInterval,
		next:      config.TickInterval,
	}
}

// Elapsed returns the accumulated time.
func (timer *Timer) Elapsed() time.Duration {
	return timer.elapsed
}

// Running reports whether the timer is ticking.
func (timer *Timer) Running() bool {
	return timer.running
}

// Interval returns the step of the current or next run.
func (timer *Timer) Interval() time.Duration {
	if timer.running {
		return timer.interval
	}
	return timer.next
}

// Start begins ticking. It does nothing if already running.
func (timer *Timer) Start() {
	if timer.running {
		return
	}
	timer.running = true
	timer.interval = timer.next
	interval := timer.interval
	timer.task = timer.scheduler.Every(interval, func() {
		timer.tick(interval)
	})
	timer.Notify()
}

// Stop halts ticking. It does nothing if not running.
func (timer *Timer) Stop() {
	if !timer.running {
		return
	}
	timer.running = false
	if timer.task != nil {
		timer.task.Cancel()
		timer.task = nil
	}
	timer.Notify()
}

// Reset zeroes the elapsed time. It does nothing while running.
func (timer *Timer) Reset() {
	if timer.running || timer.elapsed == 0 {
		return
	}
	timer.elapsed = 0
	timer.Notify()
}

// SetInterval changes the tick step used from the next Start on.
func (timer *Timer) SetInterval(interval time.Duration) {
	timer.next = model.StopwatchConfig{TickInterval: interval}.Normalized().TickInterval
}

func (timer *Timer) tick(interval time.Duration) {
	if !timer.running {
		return
	}
	timer.elapsed += interval
	timer.Notify()
}
