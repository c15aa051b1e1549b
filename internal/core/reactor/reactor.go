package reactor

import "sync"

// Reactor owns a set of watches and releases them together.
type Reactor struct {
	mu        sync.Mutex
	disposers []func()
	disposed  bool
}

// Dispose unsubscribes every watch. Calling it again is a no-op.
func (reactor *Reactor) Dispose() {
	reactor.mu.Lock()
	disposers := reactor.disposers
	reactor.disposers = nil
	reactor.disposed = true
	reactor.mu.Unlock()

	for _, dispose := range disposers {
		dispose()
	}
}

func (reactor *Reactor) track(dispose func()) {
	reactor.mu.Lock()
	if reactor.disposed {
		reactor.mu.Unlock()
		dispose()
		return
	}
	reactor.disposers = append(reactor.disposers, dispose)
	reactor.mu.Unlock()
}

// Watch renders read() immediately and again after every change of source
// that produces a different value.
func Watch[T comparable](reactor *Reactor, source Source, read func() T, render func(T)) {
	WatchFunc(reactor, source, read, func(previous, next T) bool {
		return previous == next
	}, render)
}

// WatchFunc is Watch for values that are not comparable with ==.
func WatchFunc[T any](reactor *Reactor, source Source, read func() T, equal func(previous, next T) bool, render func(T)) {
	last := read()
	render(last)

	unsubscribe := source.Subscribe(func() {
		next := read()
		if equal(last, next) {
			return
		}
		last = next
		render(next)
	})
	reactor.track(unsubscribe)
}
