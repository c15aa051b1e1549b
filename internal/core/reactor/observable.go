// Package reactor binds state changes to render functions.
package reactor

import "sync"

// Source is anything that can report changes to subscribers.
type Source interface {
	Subscribe(handler func()) (unsubscribe func())
}

// Observable broadcasts change notifications to its subscribers.
// The zero value is ready to use.
type Observable struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func()
	order       []int
}

// Subscribe registers a handler called after every change.
func (observable *Observable) Subscribe(handler func()) func() {
	observable.mu.Lock()
	defer observable.mu.Unlock()
	if observable.subscribers == nil {
		observable.subscribers = make(map[int]func())
	}
	id := observable.nextID
	observable.nextID++
	observable.subscribers[id] = handler
	observable.order = append(observable.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			observable.unsubscribe(id)
		})
	}
}

// Notify calls every subscriber in registration order.
func (observable *Observable) Notify() {
	observable.mu.Lock()
	handlers := make([]func(), 0, len(observable.order))
	for _, id := range observable.order {
		handlers = append(handlers, observable.subscribers[id])
	}
	observable.mu.Unlock()

	for _, handler := range handlers {
		handler()
	}
}

func (observable *Observable) unsubscribe(id int) {
	observable.mu.Lock()
	defer observable.mu.Unlock()
	delete(observable.subscribers, id)
	for index, current := range observable.order {
		if current == id {
			observable.order = append(observable.order[:index], observable.order[index+1:]...)
			return
		}
	}
}
