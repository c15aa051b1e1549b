// Package eventloop serializes all state mutation onto one goroutine.
package eventloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrClosed indicates the loop has stopped running.
var ErrClosed = errors.New("event loop closed")

const defaultQueueSize = 64

// Loop runs posted work one item at a time.
type Loop struct {
	clock   Clock
	queue   chan func()
	done    chan struct{}
	closing sync.Once
}

// New creates a loop. A nil clock means RealClock.
func New(clock Clock, queueSize int) *Loop {
	if clock == nil {
		clock = RealClock{}
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		clock: clock,
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Run executes posted work until ctx is cancelled. After Run returns the loop
// is closed and further posts are rejected.
func (loop *Loop) Run(ctx context.Context) error {
	defer loop.close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case work := <-loop.queue:
			work()
		}
	}
}

// Post enqueues work. It returns false if the loop is closed.
func (loop *Loop) Post(work func()) bool {
	select {
	case <-loop.done:
		return false
	default:
	}
	select {
	case loop.queue <- work:
		return true
	case <-loop.done:
		return false
	}
}

// Call enqueues work and waits until it has run.
func (loop *Loop) Call(ctx context.Context, work func()) error {
	finished := make(chan struct{})
	if !loop.Post(func() {
		defer close(finished)
		work()
	}) {
		return ErrClosed
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-loop.done:
		return ErrClosed
	}
}

// Drain runs queued work on the calling goroutine until the queue is empty
// and returns how many items ran. It must not be used while Run is active.
func (loop *Loop) Drain() int {
	ran := 0
	for {
		select {
		case work := <-loop.queue:
			work()
			ran++
		default:
			return ran
		}
	}
}

// Pending reports the number of queued items.
func (loop *Loop) Pending() int {
	return len(loop.queue)
}

// Cancelable is a scheduled job that can be revoked.
type Cancelable = interface{ Cancel() }

// Every posts run to the loop once per interval until the returned task is
// cancelled. The task is a *Task.
func (loop *Loop) Every(interval time.Duration, run func()) Cancelable {
	task := &Task{stopCh: make(chan struct{})}
	ticker := loop.clock.NewTicker(interval)

	fire := func() {
		if task.cancelled.Load() {
			return
		}
		run()
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-task.stopCh:
				return
			case <-loop.done:
				return
			case <-ticker.C():
			}
			select {
			case loop.queue <- fire:
			case <-task.stopCh:
				return
			case <-loop.done:
				return
			}
		}
	}()

	return task
}

func (loop *Loop) close() {
	loop.closing.Do(func() {
		close(loop.done)
	})
}

// Task is a repeating job scheduled with Every.
type Task struct {
	cancelled atomic.Bool
	stopCh    chan struct{}
	once      sync.Once
}

// Cancel revokes the task and stops its ticker. Firings already queued are
// discarded, so when called from the loop goroutine nothing runs after Cancel
// returns. Calling Cancel again is a no-op.
func (task *Task) Cancel() {
	task.once.Do(func() {
		task.cancelled.Store(true)
		close(task.stopCh)
	})
}

// Cancelled reports whether Cancel has been called.
func (task *Task) Cancelled() bool {
	return task.cancelled.Load()
}
